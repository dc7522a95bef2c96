package sdk

// Address identifies a principal on the chain, e.g. "hive:someone"
// or a deployed contract id.
type Address string

func (a Address) String() string { return string(a) }

// Env carries the per-invocation execution context provided by the host.
type Env struct {
	Sender struct {
		Address Address
	}
	Caller     Address
	ContractId Address
	TxId       string
}
