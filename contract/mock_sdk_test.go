package contract

import (
	"fmt"
	"strings"
	"testing"

	"vsc_battleship/sdk"
)

// FakeSDK is the in-memory chain used by the unit tests. Abort panics
// so a failing precondition stops the impl mid-flight, and expectAbort
// turns that panic back into an assertion.
type FakeSDK struct {
	state    map[string]string
	sender   sdk.Address
	aborted  bool
	abortMsg string
	logs     []string
	calls    []fakeContractCall
}

type fakeContractCall struct {
	to      sdk.Address
	method  string
	payload string
}

func NewFakeSDK(sender string) *FakeSDK {
	return &FakeSDK{
		state:  make(map[string]string),
		sender: sdk.Address(sender),
	}
}

func (f *FakeSDK) SetSender(sender string) { f.sender = sdk.Address(sender) }

func (f *FakeSDK) StateSetObject(key, value string) { f.state[key] = value }

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) Log(msg string) { f.logs = append(f.logs, msg) }

func (f *FakeSDK) GetEnv() SDKInterfaceEnv {
	env := SDKInterfaceEnv{
		Caller:     f.sender,
		ContractId: "devnet:battleship",
		TxId:       "tx-fake",
	}
	env.Sender.Address = f.sender
	return env
}

func (f *FakeSDK) ContractCall(to sdk.Address, method string, payload string) *string {
	f.calls = append(f.calls, fakeContractCall{to: to, method: method, payload: payload})
	return nil
}

// expectAbort checks, deferred, that the call under test aborted with
// the expected message.
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it was not")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}

// --- common fixtures ---

const (
	alice = "hive:alice"
	bob   = "hive:bob"
	carol = "hive:carol"
)

func hexHash(b byte) string {
	return strings.Repeat(fmt.Sprintf("%02x", b), 32)
}

// call dispatches an entrypoint as the given sender.
func call(chain *FakeSDK, sender, method, payload string) *string {
	chain.SetSender(sender)
	p := payload
	return Call(chain, method, &p)
}

// newMatch creates a match for alice and returns its id payload-ready.
func newMatch(chain *FakeSDK) string {
	id := call(chain, alice, "b_new", `{"player1":"`+alice+`"}`)
	return *id
}

// joinedMatch creates a match and has bob take the open seat.
func joinedMatch(chain *FakeSDK) string {
	id := newMatch(chain)
	call(chain, bob, "b_join", `{"gameId":`+id+`,"player2":"`+bob+`"}`)
	return id
}

// startedMatch runs create, join, and both commits so play can begin.
func startedMatch(chain *FakeSDK) string {
	id := joinedMatch(chain)
	call(chain, alice, "b_commit", `{"gameId":`+id+`,"player":"`+alice+`","boardHash":"`+hexHash(1)+`"}`)
	call(chain, bob, "b_commit", `{"gameId":`+id+`,"player":"`+bob+`","boardHash":"`+hexHash(2)+`"}`)
	return id
}

// playMissRounds runs n full rounds where both sides shoot and the
// defender reports a miss each time.
func playMissRounds(chain *FakeSDK, id string, n int) {
	for i := 0; i < n; i++ {
		call(chain, alice, "b_shot", fmt.Sprintf(`{"gameId":%s,"player":"%s","x":%d,"y":0}`, id, alice, i))
		call(chain, bob, "b_report", `{"gameId":`+id+`,"player":"`+bob+`","hit":false}`)
		call(chain, bob, "b_shot", fmt.Sprintf(`{"gameId":%s,"player":"%s","x":%d,"y":1}`, id, bob, i))
		call(chain, alice, "b_report", `{"gameId":`+id+`,"player":"`+alice+`","hit":false}`)
	}
}

// mustGame loads the record directly from state.
func mustGame(t *testing.T, chain *FakeSDK, id string) *Game {
	t.Helper()
	n, ok := parseU32(id)
	if !ok {
		t.Fatalf("bad game id %q", id)
	}
	return loadGame(n, chain)
}
