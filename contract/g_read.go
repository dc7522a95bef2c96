package contract

import "encoding/hex"

// Read API: unauthenticated snapshots of match state.

type GetGameArgs struct {
	GameId uint32 `json:"gameId"`
}

// gameView is the JSON wire form of a match record. Hashes are
// hex-encoded; an all-zero hash means that board is uncommitted.
type gameView struct {
	Player1         string `json:"player1"`
	Player2         string `json:"player2"`
	BoardHash1      string `json:"board_hash1"`
	BoardHash2      string `json:"board_hash2"`
	BoardsCommitted uint32 `json:"boards_committed"`
	Turn            uint32 `json:"turn"`
	P1Hits          uint32 `json:"p1_hits"`
	P2Hits          uint32 `json:"p2_hits"`
	Status          uint8  `json:"status"`
	SessionID       uint32 `json:"session_id"`
	AwaitingReport  bool   `json:"awaiting_report"`
	LastShotX       uint32 `json:"last_shot_x"`
	LastShotY       uint32 `json:"last_shot_y"`
	P1TurnsTaken    uint32 `json:"p1_turns_taken"`
	P2TurnsTaken    uint32 `json:"p2_turns_taken"`
	P1SonarUsed     bool   `json:"p1_sonar_used"`
	P2SonarUsed     bool   `json:"p2_sonar_used"`
	AwaitingSonar   bool   `json:"awaiting_sonar"`
	SonarCenterX    uint32 `json:"sonar_center_x"`
	SonarCenterY    uint32 `json:"sonar_center_y"`
	LastSonarCount  uint32 `json:"last_sonar_count"`
}

func viewOf(g *Game) gameView {
	return gameView{
		Player1:         g.Player1,
		Player2:         g.Player2,
		BoardHash1:      hex.EncodeToString(g.BoardHash1[:]),
		BoardHash2:      hex.EncodeToString(g.BoardHash2[:]),
		BoardsCommitted: g.BoardsCommitted,
		Turn:            g.Turn,
		P1Hits:          g.P1Hits,
		P2Hits:          g.P2Hits,
		Status:          uint8(g.Status),
		SessionID:       g.SessionID,
		AwaitingReport:  g.AwaitingReport,
		LastShotX:       g.LastShotX,
		LastShotY:       g.LastShotY,
		P1TurnsTaken:    g.P1TurnsTaken,
		P2TurnsTaken:    g.P2TurnsTaken,
		P1SonarUsed:     g.P1SonarUsed,
		P2SonarUsed:     g.P2SonarUsed,
		AwaitingSonar:   g.AwaitingSonar,
		SonarCenterX:    g.SonarCenterX,
		SonarCenterY:    g.SonarCenterY,
		LastSonarCount:  g.LastSonarCount,
	}
}

// getGameImpl returns the full match record as JSON.
func getGameImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[GetGameArgs](*payload, "get game args", chain)
	g := loadGame(in.GameId, chain)
	s := ToJSON(viewOf(g), "game view", chain)
	return &s
}

// gameCountImpl returns the total number of matches ever created.
func gameCountImpl(chain SDKInterface) *string {
	ret := UInt32ToString(getGameCount(chain))
	return &ret
}
