package contract

import (
	"strings"

	"vsc_battleship/sdk"
)

// ---------- Hub Notifier ----------
//
// The hub is an external contract told when matches start and end. The
// engine knows nothing about it beyond two method names and their
// argument tuples; when no hub is configured the calls are skipped.
// Return values are discarded; lifecycle notification is
// fire-and-forget.

// notifyStartGame emits
//
//	start_game(game_contract, session_id, player1, player2, 0, 0)
//
// The trailing zero pair is a reserved stake/bet slot kept for
// hub-schema stability.
func notifyStartGame(g *Game, chain SDKInterface) {
	hub := hubAddress(chain)
	if hub == nil {
		return
	}

	payload := strings.Join([]string{
		string(chain.GetEnv().ContractId),
		UInt32ToString(g.SessionID),
		g.Player1,
		g.Player2,
		"0",
		"0",
	}, "|")

	chain.ContractCall(sdk.Address(*hub), "start_game", payload)
}

// notifyEndGame emits end_game(session_id, player1_won).
func notifyEndGame(g *Game, player1Won bool, chain SDKInterface) {
	hub := hubAddress(chain)
	if hub == nil {
		return
	}

	won := "false"
	if player1Won {
		won = "true"
	}
	payload := UInt32ToString(g.SessionID) + "|" + won

	chain.ContractCall(sdk.Address(*hub), "end_game", payload)
}
