package contract

import (
	"vsc_battleship/sdk"
)

// --- SDK interface abstraction ---

type SDKInterfaceEnv struct {
	Sender struct {
		Address sdk.Address
	}
	Caller     sdk.Address
	ContractId sdk.Address
	TxId       string
}

// SDKInterface is the slice of the host SDK this contract needs. Entry
// points pass it down so the whole engine can run against the real
// chain, the in-memory devnet host, or a test fake.
type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() SDKInterfaceEnv
	ContractCall(to sdk.Address, method string, payload string) *string
}

// RealSDK forwards to the host-linked sdk package. Only the wasm
// entrypoint shims construct it.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }

func (RealSDK) GetEnv() SDKInterfaceEnv {
	e := sdk.GetEnv()
	env := SDKInterfaceEnv{
		Caller:     e.Caller,
		ContractId: e.ContractId,
		TxId:       e.TxId,
	}
	env.Sender.Address = e.Sender.Address
	return env
}

func (RealSDK) ContractCall(to sdk.Address, method string, payload string) *string {
	return sdk.ContractCall(to, method, payload)
}
