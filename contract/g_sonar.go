package contract

// Sonar round: a one-per-match 3x3 scan taken in place of a shot.
// use_sonar declares the scan, report_sonar settles it with the
// defender's cell count.

type UseSonarArgs struct {
	GameId  uint32 `json:"gameId"`
	Player  string `json:"player"`
	CenterX uint32 `json:"centerX"`
	CenterY uint32 `json:"centerY"`
}

// useSonarImpl consumes the caller's turn and their sonar privilege.
// Sonar only unlocks after the player has taken sonarMinTurns actions.
func useSonarImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[UseSonarArgs](*payload, "use sonar args", chain)
	requireAuth(in.Player, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusInProgress, "game not in progress", chain)
	require(!g.AwaitingReport, "waiting for hit report", chain)
	require(!g.AwaitingSonar, "waiting for sonar report", chain)
	require(in.CenterX < boardSide && in.CenterY < boardSide, "sonar out of bounds", chain)
	require(in.Player == g.shooter(), "not your turn", chain)

	if g.Turn == 1 {
		require(!g.P1SonarUsed, "sonar already used", chain)
		require(g.P1TurnsTaken >= sonarMinTurns, "sonar not available this turn", chain)
		g.P1SonarUsed = true
		g.P1TurnsTaken++
	} else {
		require(!g.P2SonarUsed, "sonar already used", chain)
		require(g.P2TurnsTaken >= sonarMinTurns, "sonar not available this turn", chain)
		g.P2SonarUsed = true
		g.P2TurnsTaken++
	}

	g.SonarCenterX = in.CenterX
	g.SonarCenterY = in.CenterY
	g.AwaitingSonar = true

	saveGame(in.GameId, g, chain)

	EmitSonarUsed(in.GameId, in.Player, in.CenterX, in.CenterY, chain)
	return nil
}

type ReportSonarArgs struct {
	GameId uint32 `json:"gameId"`
	Player string `json:"player"`
	Count  uint32 `json:"count"`
}

// reportSonarImpl settles the outstanding scan with the defender's
// count of ship cells inside the 3x3 window, then passes the turn.
// Like report_result, this is the trust-model seam a ZK proof would
// replace.
func reportSonarImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[ReportSonarArgs](*payload, "report sonar args", chain)
	requireAuth(in.Player, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusInProgress, "game not in progress", chain)
	require(g.AwaitingSonar, "no sonar to report on", chain)
	require(in.Count <= maxSonarCount, "invalid sonar count", chain)
	require(in.Player == g.defender(), "wrong player reporting", chain)

	g.LastSonarCount = in.Count
	g.AwaitingSonar = false
	g.toggleTurn()

	saveGame(in.GameId, g, chain)

	EmitSonarReported(in.GameId, in.Player, in.Count, chain)
	return nil
}

type SonarAvailableArgs struct {
	GameId uint32 `json:"gameId"`
	Player string `json:"player"`
}

// sonarAvailableImpl is the read-only gate check clients poll before
// offering the sonar action. Never aborts on gating conditions, only
// on a missing match.
func sonarAvailableImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[SonarAvailableArgs](*payload, "sonar available args", chain)

	g := loadGame(in.GameId, chain)

	available := false
	if g.Status == StatusInProgress && !g.AwaitingReport && !g.AwaitingSonar {
		if in.Player == g.Player1 && g.Turn == 1 && !g.P1SonarUsed {
			available = g.P1TurnsTaken >= sonarMinTurns
		} else if in.Player == g.Player2 && g.Turn == 2 && !g.P2SonarUsed {
			available = g.P2TurnsTaken >= sonarMinTurns
		}
	}

	ret := "false"
	if available {
		ret = "true"
	}
	return &ret
}
