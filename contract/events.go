package contract

import "strconv"

// Event is the common structure for all emitted events: a type plus a
// flat set of key/value attributes, logged as JSON.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func emitEvent(eventType string, attributes map[string]string, chain SDKInterface) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitGameCreated emits an event when a new match is created.
func EmitGameCreated(gameId uint32, createdByAddress string, chain SDKInterface) {
	emitEvent("gameCreated", map[string]string{
		"id": UInt32ToString(gameId),
		"by": createdByAddress,
	}, chain)
}

// EmitGameJoined emits an event when player 2 takes the open seat.
func EmitGameJoined(gameId uint32, joinedByAddress string, chain SDKInterface) {
	emitEvent("gameJoined", map[string]string{
		"id":     UInt32ToString(gameId),
		"joined": joinedByAddress,
	}, chain)
}

// EmitBoardCommitted emits an event when a player commits their board.
func EmitBoardCommitted(gameId uint32, playerAddress string, chain SDKInterface) {
	emitEvent("boardCommitted", map[string]string{
		"id": UInt32ToString(gameId),
		"by": playerAddress,
	}, chain)
}

// EmitGameStarted emits an event once both boards are committed.
func EmitGameStarted(gameId uint32, chain SDKInterface) {
	emitEvent("gameStarted", map[string]string{
		"id": UInt32ToString(gameId),
	}, chain)
}

// EmitShotTaken emits an event when a shot is declared.
func EmitShotTaken(gameId uint32, shooterAddress string, x, y uint32, chain SDKInterface) {
	emitEvent("shotTaken", map[string]string{
		"id": UInt32ToString(gameId),
		"by": shooterAddress,
		"x":  UInt32ToString(x),
		"y":  UInt32ToString(y),
	}, chain)
}

// EmitShotReported emits an event when the defender settles a shot.
func EmitShotReported(gameId uint32, defenderAddress string, hit bool, chain SDKInterface) {
	emitEvent("shotReported", map[string]string{
		"id":  UInt32ToString(gameId),
		"by":  defenderAddress,
		"hit": strconv.FormatBool(hit),
	}, chain)
}

// EmitSonarUsed emits an event when a player spends their sonar.
func EmitSonarUsed(gameId uint32, playerAddress string, cx, cy uint32, chain SDKInterface) {
	emitEvent("sonarUsed", map[string]string{
		"id": UInt32ToString(gameId),
		"by": playerAddress,
		"cx": UInt32ToString(cx),
		"cy": UInt32ToString(cy),
	}, chain)
}

// EmitSonarReported emits an event when the defender settles a scan.
func EmitSonarReported(gameId uint32, defenderAddress string, count uint32, chain SDKInterface) {
	emitEvent("sonarReported", map[string]string{
		"id":    UInt32ToString(gameId),
		"by":    defenderAddress,
		"count": UInt32ToString(count),
	}, chain)
}

// EmitGameWon emits an event when a victory claim is accepted.
func EmitGameWon(gameId uint32, winnerAddress string, chain SDKInterface) {
	emitEvent("gameWon", map[string]string{
		"id":     UInt32ToString(gameId),
		"winner": winnerAddress,
	}, chain)
}
