package contract

// Setup-phase transitions: initialize, new_game, join_game, commit_board.

type InitializeArgs struct {
	Hub string `json:"hub"`
}

// initializeImpl sets the hub singleton and zeroes the match counter.
// Callable once. Running without a hub (initialize never invoked) is
// also supported; lifecycle notifications are then skipped.
func initializeImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[InitializeArgs](*payload, "initialize args", chain)
	require(in.Hub != "", "hub address is mandatory", chain)
	require(chain.StateGetObject(hubKey) == nil, "already initialized", chain)

	chain.StateSetObject(hubKey, in.Hub)
	setGameCount(0, chain)
	return nil
}

type NewGameArgs struct {
	Player1 string `json:"player1"`
}

// newGameImpl allocates the next match id and persists a fresh record
// in setup phase. Player2 is set to player1 as the open-seat sentinel
// until join_game fills it. Returns the match id.
func newGameImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[NewGameArgs](*payload, "new game args", chain)
	requireAuth(in.Player1, chain)

	count := getGameCount(chain) + 1

	g := &Game{
		Player1:   in.Player1,
		Player2:   in.Player1,
		Turn:      1,
		Status:    StatusCreated,
		SessionID: count,
	}

	saveGame(count, g, chain)
	setGameCount(count, chain)

	EmitGameCreated(count, in.Player1, chain)

	ret := UInt32ToString(count)
	return &ret
}

type JoinGameArgs struct {
	GameId  uint32 `json:"gameId"`
	Player2 string `json:"player2"`
}

// joinGameImpl fills the open player-2 seat. The match must still be in
// setup and the creator cannot take the second seat themselves.
func joinGameImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[JoinGameArgs](*payload, "join game args", chain)
	requireAuth(in.Player2, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusCreated, "game not in setup phase", chain)
	require(g.seatOpen(), "player 2 already joined", chain)
	require(in.Player2 != g.Player1, "cannot join your own game", chain)

	g.Player2 = in.Player2
	saveGame(in.GameId, g, chain)

	EmitGameJoined(in.GameId, in.Player2, chain)
	return nil
}

type CommitBoardArgs struct {
	GameId    uint32 `json:"gameId"`
	Player    string `json:"player"`
	BoardHash string `json:"boardHash"`
}

// commitBoardImpl records a player's board commitment. While the seat
// is open only player 1 may commit, and only to slot 1; the sentinel
// value never grants the second slot. When the second commitment lands
// the match starts and the hub is notified.
func commitBoardImpl(payload *string, chain SDKInterface) *string {
	in := FromJSON[CommitBoardArgs](*payload, "commit board args", chain)
	requireAuth(in.Player, chain)

	g := loadGame(in.GameId, chain)
	require(g.Status == StatusCreated, "game not in setup phase", chain)

	hash := parseBoardHash(in.BoardHash, chain)
	require(!hash.IsZero(), "invalid board hash", chain)

	if in.Player == g.Player1 {
		require(g.BoardHash1.IsZero(), "board already committed", chain)
		g.BoardHash1 = hash
	} else if !g.seatOpen() && in.Player == g.Player2 {
		require(g.BoardHash2.IsZero(), "board already committed", chain)
		g.BoardHash2 = hash
	} else {
		chain.Abort("not a player in this game")
	}

	g.BoardsCommitted++
	EmitBoardCommitted(in.GameId, in.Player, chain)

	if g.BoardsCommitted == 2 {
		g.Status = StatusInProgress
		notifyStartGame(g, chain)
		EmitGameStarted(in.GameId, chain)
	}

	saveGame(in.GameId, g, chain)
	return nil
}
