package contract

// ---------- Binary State Codec ----------

// codecVersion increments when the storage encoding changes, so stale
// on-chain records are detected instead of misread.
const codecVersion uint8 = 1

// Flag bits packed into a single byte alongside the fixed-width fields.
const (
	flagAwaitingReport = 1 << 0
	flagAwaitingSonar  = 1 << 1
	flagP1SonarUsed    = 1 << 2
	flagP2SonarUsed    = 1 << 3
)

// encodeGame serializes all match fields into a compact byte slice.
//
// Layout:
//
//	version | session_id | status | turn | flags | boards_committed |
//	last_shot x,y | sonar_center x,y | last_sonar_count |
//	p1_hits | p2_hits | p1_turns | p2_turns |
//	player1 | player2 | board_hash1 | board_hash2
//
// Coordinates and small counters fit in one byte; hits and turn
// counters are stored as u32 to match the record's field widths.
func encodeGame(g *Game, chain SDKInterface) []byte {
	out := make([]byte, 0, 32+len(g.Player1)+len(g.Player2)+2*len(g.BoardHash1))

	out = append(out, codecVersion)
	out = appendU32(out, g.SessionID)
	out = append(out, byte(g.Status))
	out = append(out, byte(g.Turn))

	var flags byte
	if g.AwaitingReport {
		flags |= flagAwaitingReport
	}
	if g.AwaitingSonar {
		flags |= flagAwaitingSonar
	}
	if g.P1SonarUsed {
		flags |= flagP1SonarUsed
	}
	if g.P2SonarUsed {
		flags |= flagP2SonarUsed
	}
	out = append(out, flags)

	out = append(out, byte(g.BoardsCommitted))
	out = append(out, byte(g.LastShotX), byte(g.LastShotY))
	out = append(out, byte(g.SonarCenterX), byte(g.SonarCenterY))
	out = append(out, byte(g.LastSonarCount))

	out = appendU32(out, g.P1Hits)
	out = appendU32(out, g.P2Hits)
	out = appendU32(out, g.P1TurnsTaken)
	out = appendU32(out, g.P2TurnsTaken)

	out = appendString16(out, g.Player1, chain)
	out = appendString16(out, g.Player2, chain)
	out = append(out, g.BoardHash1[:]...)
	out = append(out, g.BoardHash2[:]...)

	return out
}

// decodeGame reconstructs a *Game from its storage blob, ensuring no
// trailing bytes remain.
func decodeGame(b []byte, chain SDKInterface) *Game {
	r := &rd{b: b, chain: chain}
	require(r.u8() == codecVersion, "unsupported version", chain)

	g := &Game{}
	g.SessionID = r.u32()
	g.Status = GameStatus(r.u8())
	g.Turn = uint32(r.u8())

	flags := r.u8()
	g.AwaitingReport = flags&flagAwaitingReport != 0
	g.AwaitingSonar = flags&flagAwaitingSonar != 0
	g.P1SonarUsed = flags&flagP1SonarUsed != 0
	g.P2SonarUsed = flags&flagP2SonarUsed != 0

	g.BoardsCommitted = uint32(r.u8())
	g.LastShotX = uint32(r.u8())
	g.LastShotY = uint32(r.u8())
	g.SonarCenterX = uint32(r.u8())
	g.SonarCenterY = uint32(r.u8())
	g.LastSonarCount = uint32(r.u8())

	g.P1Hits = r.u32()
	g.P2Hits = r.u32()
	g.P1TurnsTaken = r.u32()
	g.P2TurnsTaken = r.u32()

	g.Player1 = r.str()
	g.Player2 = r.str()
	copy(g.BoardHash1[:], r.bytes(len(g.BoardHash1)))
	copy(g.BoardHash2[:], r.bytes(len(g.BoardHash2)))

	r.mustEnd()
	return g
}
