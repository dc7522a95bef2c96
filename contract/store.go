package contract

// ---------- Store Facade ----------
//
// Two logical namespaces in the substrate's keyed state: singletons
// ("hub", "g_count") set once at initialization, and per-match records
// under "g_<id>". Records are created by new_game and never deleted;
// terminal matches stay queryable.

const (
	hubKey   = "hub"
	countKey = "g_count"
)

func gameKey(id uint32) string { return "g_" + UInt32ToString(id) }

// saveGame serializes the match record and writes it to chain state.
func saveGame(id uint32, g *Game, chain SDKInterface) {
	chain.StateSetObject(gameKey(id), string(encodeGame(g, chain)))
}

// loadGame retrieves a match by id. Aborts if no record exists.
func loadGame(id uint32, chain SDKInterface) *Game {
	ptr := chain.StateGetObject(gameKey(id))
	if ptr == nil || *ptr == "" {
		chain.Abort("game not found")
	}
	return decodeGame([]byte(*ptr), chain)
}

// getGameCount retrieves the global match counter. The counter doubles
// as the id of the most recent match; zero means none created yet.
func getGameCount(chain SDKInterface) uint32 {
	ptr := chain.StateGetObject(countKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, ok := parseU32(*ptr)
	if !ok {
		chain.Abort("corrupt game counter")
	}
	return n
}

func setGameCount(n uint32, chain SDKInterface) {
	chain.StateSetObject(countKey, UInt32ToString(n))
}

// hubAddress returns the configured hub contract, or nil when the
// contract runs without one.
func hubAddress(chain SDKInterface) *string {
	ptr := chain.StateGetObject(hubKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return ptr
}

func parseU32(s string) (uint32, bool) {
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
		if n > 0xFFFFFFFF {
			return 0, false
		}
	}
	return uint32(n), true
}
