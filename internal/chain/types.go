// Package chain defines the records exchanged with the node-side data services.
package chain

import (
	"errors"
	"math"
)

// MaxHeight is the upper bound used for open-ended height ranges.
const MaxHeight uint64 = math.MaxUint32

// ErrNotFound reports a lookup key that the service has no entry for.
var ErrNotFound = errors.New("not found")

// SummaryOptions tunes an address summary lookup.
type SummaryOptions struct {
	// NoTxList skips collecting the transaction id list.
	NoTxList bool
}

// AddressSummaryRaw is the address index view of a single address.
type AddressSummaryRaw struct {
	Address       string
	TotalReceived int64
	TotalSpent    int64
	Balance       int64
	Appearances   int64
	TxIDs         []string
}

// HistoryOptions bounds an address history lookup by block height.
type HistoryOptions struct {
	Start        uint64
	End          uint64
	QueryMempool bool
}

// HistoryItem is a transaction touching one of the queried addresses.
type HistoryItem struct {
	Tx     *Transaction
	Height int64
}

// HistoryResult wraps the items returned by an address history lookup.
type HistoryResult struct {
	Items []HistoryItem
}

// UnspentRaw is an address index unspent output entry.
type UnspentRaw struct {
	Address       string
	TxID          string
	OutputIndex   uint32
	Satoshis      int64
	Height        uint64
	Confirmations int64
}

// BlockIndex is the chain index entry of a block.
type BlockIndex struct {
	Height int64
}
