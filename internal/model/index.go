package model

// AddressTotals aggregates the value an address has received and spent.
type AddressTotals struct {
	Received uint64
	Spent    uint64
}

// HistoryEntry is a confirmed transaction touching one of the queried addresses.
type HistoryEntry struct {
	TxID        string
	BlockHeight uint64
	BlockHash   string
}

// AddressOutput is an unspent output paying to an address.
type AddressOutput struct {
	Address     string
	TxID        string
	Index       uint32
	Value       uint64
	BlockHeight uint64
}

// OutputValue is the value of a single transaction output, used to price spending inputs.
type OutputValue struct {
	TxID  string
	Index uint32
	Value uint64
}
