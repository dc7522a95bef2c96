package contract

import (
	"testing"

	req "github.com/stretchr/testify/require"
)

func TestTakeShotAndReportHit(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)

	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":3,"y":4}`)
	g := mustGame(t, chain, id)
	req.True(t, g.AwaitingReport)
	req.Equal(t, uint32(3), g.LastShotX)
	req.Equal(t, uint32(4), g.LastShotY)
	req.Equal(t, uint32(1), g.P1TurnsTaken)
	req.Equal(t, uint32(1), g.Turn) // turn passes at report, not here

	call(chain, bob, "b_report", `{"gameId":`+id+`,"player":"`+bob+`","hit":true}`)
	g = mustGame(t, chain, id)
	req.False(t, g.AwaitingReport)
	req.Equal(t, uint32(1), g.P1Hits)
	req.Equal(t, uint32(2), g.Turn)
}

func TestTakeShotAndReportMiss(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)

	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":3,"y":4}`)
	call(chain, bob, "b_report", `{"gameId":`+id+`,"player":"`+bob+`","hit":true}`)

	call(chain, bob, "b_shot", `{"gameId":`+id+`,"player":"`+bob+`","x":5,"y":6}`)
	call(chain, alice, "b_report", `{"gameId":`+id+`,"player":"`+alice+`","hit":false}`)

	g := mustGame(t, chain, id)
	req.Equal(t, uint32(1), g.P1Hits)
	req.Equal(t, uint32(0), g.P2Hits)
	req.Equal(t, uint32(1), g.Turn)
}

func TestTakeShotWrongTurn(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)

	defer expectAbort(t, chain, "not your turn")
	call(chain, bob, "b_shot", `{"gameId":`+id+`,"player":"`+bob+`","x":0,"y":0}`)
}

func TestTakeShotDuringSetup(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := joinedMatch(chain)

	defer expectAbort(t, chain, "game not in progress")
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":0,"y":0}`)
}

func TestTakeShotBounds(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)

	// 0 and 9 are valid corners.
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":0,"y":9}`)
	call(chain, bob, "b_report", `{"gameId":`+id+`,"player":"`+bob+`","hit":false}`)
	call(chain, bob, "b_shot", `{"gameId":`+id+`,"player":"`+bob+`","x":9,"y":0}`)
	call(chain, alice, "b_report", `{"gameId":`+id+`,"player":"`+alice+`","hit":false}`)

	defer expectAbort(t, chain, "shot out of bounds")
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":10,"y":0}`)
}

func TestTakeShotYOutOfBounds(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)

	defer expectAbort(t, chain, "shot out of bounds")
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":0,"y":10}`)
}

func TestTakeShotWhileAwaitingReport(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":1,"y":1}`)

	defer expectAbort(t, chain, "waiting for hit report")
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":2,"y":2}`)
}

func TestReportWithoutShot(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)

	defer expectAbort(t, chain, "no shot to report on")
	call(chain, bob, "b_report", `{"gameId":`+id+`,"player":"`+bob+`","hit":true}`)
}

func TestReportByShooter(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":1,"y":1}`)

	defer expectAbort(t, chain, "wrong player reporting")
	call(chain, alice, "b_report", `{"gameId":`+id+`,"player":"`+alice+`","hit":true}`)
}

func TestReportUnauthorized(t *testing.T) {
	chain := NewFakeSDK(alice)
	id := startedMatch(chain)
	call(chain, alice, "b_shot", `{"gameId":`+id+`,"player":"`+alice+`","x":1,"y":1}`)

	// carol claims to be bob but is not the sender
	defer expectAbort(t, chain, "unauthorized")
	call(chain, carol, "b_report", `{"gameId":`+id+`,"player":"`+bob+`","hit":true}`)
}
