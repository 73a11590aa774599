package model

// UnconfirmedHeight marks a transaction that is not part of a block yet.
const UnconfirmedHeight int64 = -1

// TransactionRecord carries a fully serialized transaction with its block position.
type TransactionRecord struct {
	BlockHeight int64  `json:"blockHeight"`
	BlockID     string `json:"blockId"`
	TxID        string `json:"txId"`
	TxHex       string `json:"txHex"`
}

// TransactionSummary describes a transaction without its serialization.
type TransactionSummary struct {
	TxID             string `json:"txId"`
	BlockID          string `json:"blockId"`
	BlockHeight      int64  `json:"blockHeight"`
	NInputs          int    `json:"nInputs"`
	NOutputs         int    `json:"nOutputs"`
	TotalInputValue  int64  `json:"totalInputValue"`
	TotalOutputValue int64  `json:"totalOutputValue"`
}
