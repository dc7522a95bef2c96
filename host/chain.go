package host

import (
	"maps"
	"sync"

	"github.com/google/uuid"

	"vsc_battleship/contract"
	"vsc_battleship/sdk"
)

// Chain is an in-memory stand-in for the VSC substrate: a keyed state
// map plus the execution-context plumbing the contract expects. It
// linearizes invocations and makes each one transactional: on abort
// the state, logs, and hub calls are rolled back to the pre-invocation
// snapshot, so a failed operation leaves nothing behind.
type Chain struct {
	mu         sync.Mutex
	state      map[string]string
	contractID sdk.Address

	// current invocation context
	sender sdk.Address
	txID   string

	// captured side effects, useful to observers and tests
	Logs     []string
	HubCalls []HubCall
}

// HubCall records one outbound cross-contract call.
type HubCall struct {
	To      sdk.Address
	Method  string
	Payload string
}

// AbortError is the error form of a contract abort; Error() is exactly
// the abort message.
type AbortError struct {
	Msg string
}

func (e AbortError) Error() string { return e.Msg }

// abortSignal is what Abort panics with so Invoke can tell contract
// aborts apart from genuine bugs.
type abortSignal struct {
	msg string
}

func NewChain(contractID string) *Chain {
	return &Chain{
		state:      make(map[string]string),
		contractID: sdk.Address(contractID),
	}
}

// Invoke runs one entrypoint as the given sender. Contract aborts come
// back as AbortError; anything else panics through.
func (c *Chain) Invoke(sender, method, payload string) (result *string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sender = sdk.Address(sender)
	c.txID = uuid.NewString()

	snapshot := maps.Clone(c.state)
	logsLen := len(c.Logs)
	callsLen := len(c.HubCalls)

	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(abortSignal)
			if !ok {
				panic(r)
			}
			c.state = snapshot
			c.Logs = c.Logs[:logsLen]
			c.HubCalls = c.HubCalls[:callsLen]
			result = nil
			err = AbortError{Msg: ab.msg}
		}
	}()

	p := payload
	result = contract.Call(c, method, &p)
	return result, nil
}

// State returns the raw value under key, or nil. Read-only peek for
// tests and diagnostics; contract code goes through the SDK surface.
func (c *Chain) State(key string) *string {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.state[key]
	if !ok {
		return nil
	}
	return &v
}

// --- contract.SDKInterface ---

func (c *Chain) StateSetObject(key, value string) {
	c.state[key] = value
}

func (c *Chain) StateGetObject(key string) *string {
	v, ok := c.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (c *Chain) Abort(msg string) {
	panic(abortSignal{msg: msg})
}

func (c *Chain) Log(msg string) {
	c.Logs = append(c.Logs, msg)
}

func (c *Chain) GetEnv() contract.SDKInterfaceEnv {
	env := contract.SDKInterfaceEnv{
		Caller:     c.sender,
		ContractId: c.contractID,
		TxId:       c.txID,
	}
	env.Sender.Address = c.sender
	return env
}

func (c *Chain) ContractCall(to sdk.Address, method string, payload string) *string {
	c.HubCalls = append(c.HubCalls, HubCall{To: to, Method: method, Payload: payload})
	return nil
}
