package contract

type ClaimVictoryArgs struct {
	GameId uint32 `json:"gameId"`
	Player string `json:"player"`
}

// claimVictoryImpl completes the match once the claimer has scored
// enough hits to account for every opposing ship cell. The record
// becomes terminal; no transition accepts a completed match.
func claimVictoryImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[ClaimVictoryArgs](*payload, "claim victory args", chain)
	requireAuth(in.Player, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusInProgress, "game not in progress", chain)

	var player1Won bool
	if in.Player == g.Player1 {
		require(g.P1Hits >= hitsToWin, "not enough hits to win", chain)
		player1Won = true
	} else if in.Player == g.Player2 {
		require(g.P2Hits >= hitsToWin, "not enough hits to win", chain)
		player1Won = false
	} else {
		chain.Abort("not a player")
	}

	g.Status = StatusCompleted

	notifyEndGame(g, player1Won, chain)

	saveGame(in.GameId, g, chain)

	EmitGameWon(in.GameId, in.Player, chain)
	return nil
}
