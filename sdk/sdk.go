package sdk

// Host call surface of the VSC substrate. The bodies below are inert
// stubs so the module builds and tests on any platform; the VSC
// toolchain links the real host bindings when compiling the contract
// to wasm. Off-chain code never calls these directly: it talks to the
// contract through its SDKInterface abstraction instead.

func StateSetObject(key, value string) {}

func StateGetObject(key string) *string { return nil }

func Abort(msg string) {}

func Log(msg string) {}

func GetEnv() Env { return Env{} }

// ContractCall invokes a method on another contract and returns its
// result, or nil when the callee returns nothing.
func ContractCall(to Address, method string, payload string) *string { return nil }
