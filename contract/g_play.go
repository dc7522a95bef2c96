package contract

// Shot round: take_shot declares a shot, report_result settles it.

type TakeShotArgs struct {
	GameId uint32 `json:"gameId"`
	Player string `json:"player"`
	X      uint32 `json:"x"`
	Y      uint32 `json:"y"`
}

// takeShotImpl records an outstanding shot for the side whose turn it
// is. The turn does not pass here; it toggles when the defender
// reports.
func takeShotImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[TakeShotArgs](*payload, "take shot args", chain)
	requireAuth(in.Player, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusInProgress, "game not in progress", chain)
	require(!g.AwaitingReport, "waiting for hit report", chain)
	require(!g.AwaitingSonar, "waiting for sonar report", chain)
	require(in.X < boardSide && in.Y < boardSide, "shot out of bounds", chain)
	require(in.Player == g.shooter(), "not your turn", chain)

	g.LastShotX = in.X
	g.LastShotY = in.Y
	g.AwaitingReport = true

	if g.Turn == 1 {
		g.P1TurnsTaken++
	} else {
		g.P2TurnsTaken++
	}

	saveGame(in.GameId, g, chain)

	EmitShotTaken(in.GameId, in.Player, in.X, in.Y, chain)
	return nil
}

type ReportResultArgs struct {
	GameId uint32 `json:"gameId"`
	Player string `json:"player"`
	Hit    bool   `json:"hit"`
}

// reportResultImpl settles the outstanding shot. Only the defender can
// answer, and under the current trust model their word is final. A ZK
// variant would verify a proof against the defender's board commitment
// right here, before the hit is counted.
func reportResultImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[ReportResultArgs](*payload, "report result args", chain)
	requireAuth(in.Player, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusInProgress, "game not in progress", chain)
	require(g.AwaitingReport, "no shot to report on", chain)
	require(in.Player == g.defender(), "wrong player reporting", chain)

	if in.Hit {
		if g.Turn == 1 {
			g.P1Hits++
		} else {
			g.P2Hits++
		}
	}

	g.AwaitingReport = false
	g.toggleTurn()

	saveGame(in.GameId, g, chain)

	EmitShotReported(in.GameId, in.Player, in.Hit, chain)
	return nil
}
