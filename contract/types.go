package contract

// ---------- Types & Constants ----------

// GameStatus indicates the coarse lifecycle phase of a match.
type GameStatus uint8

const (
	StatusCreated    GameStatus = 0 // setup: seat filling, boards uncommitted
	StatusInProgress GameStatus = 1 // both boards committed, shots being exchanged
	StatusCompleted  GameStatus = 2 // victory claimed, record is terminal
)

const (
	// boardSide bounds shot and sonar coordinates to 0..9.
	boardSide = 10

	// hitsToWin is the ship-cell total of the classic layout
	// (5+4+3+3+2). The engine holds no board, so this is policy,
	// not something derived from state.
	hitsToWin = 17

	// sonarMinTurns is how many actions a player must have taken
	// before their one sonar scan unlocks.
	sonarMinTurns = 3

	// maxSonarCount caps a defender's scan report at the cell count
	// of a full 3x3 window.
	maxSonarCount = 9
)

// BoardHash is an opaque 32-byte commitment to a secret board layout.
// The engine never interprets it; it only compares against the zero
// sentinel, which means "uncommitted".
type BoardHash [32]byte

func (h BoardHash) IsZero() bool {
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}

// Game contains the full per-match state, persisted via binary codec.
//
// During the open-seat phase Player2 equals Player1; join_game replaces
// it with the real opponent. Turn is 1 or 2 and names the side whose
// action (shot or sonar) is outstanding or due next.
type Game struct {
	Player1         string
	Player2         string
	BoardHash1      BoardHash
	BoardHash2      BoardHash
	BoardsCommitted uint32
	Turn            uint32
	P1Hits          uint32
	P2Hits          uint32
	Status          GameStatus
	SessionID       uint32
	AwaitingReport  bool
	LastShotX       uint32
	LastShotY       uint32
	P1TurnsTaken    uint32
	P2TurnsTaken    uint32
	P1SonarUsed     bool
	P2SonarUsed     bool
	AwaitingSonar   bool
	SonarCenterX    uint32
	SonarCenterY    uint32
	LastSonarCount  uint32
}

// shooter returns the player whose turn it is to act.
func (g *Game) shooter() string {
	if g.Turn == 1 {
		return g.Player1
	}
	return g.Player2
}

// defender returns the opponent of the shooter, the side that owes
// any outstanding hit or sonar report.
func (g *Game) defender() string {
	if g.Turn == 1 {
		return g.Player2
	}
	return g.Player1
}

func (g *Game) toggleTurn() {
	if g.Turn == 1 {
		g.Turn = 2
	} else {
		g.Turn = 1
	}
}

// seatOpen reports whether player 2 has not joined yet.
func (g *Game) seatOpen() bool { return g.Player2 == g.Player1 }
