package chain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Transaction is a decoded transaction together with its block position and the values
// of the outputs its inputs spend.
type Transaction struct {
	MsgTx       *wire.MsgTx
	BlockHash   string
	BlockHeight int64
	// InputValues holds one value per input, zero for coinbase inputs. It stays empty until
	// the inputs are priced.
	InputValues []int64
}

// TxID returns the transaction hash in its display form.
func (t *Transaction) TxID() string {
	return t.MsgTx.TxHash().String()
}

// Hex returns the full serialization, witness data included.
func (t *Transaction) Hex() (string, error) {
	var buf bytes.Buffer
	buf.Grow(t.MsgTx.SerializeSize())
	if err := t.MsgTx.Serialize(&buf); err != nil {
		return "", fmt.Errorf("serialize transaction %s: %w", t.TxID(), err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// InputCount returns the number of inputs.
func (t *Transaction) InputCount() int {
	return len(t.MsgTx.TxIn)
}

// OutputCount returns the number of outputs.
func (t *Transaction) OutputCount() int {
	return len(t.MsgTx.TxOut)
}

// TotalInputValue sums the values spent by the inputs.
func (t *Transaction) TotalInputValue() int64 {
	var total int64
	for _, v := range t.InputValues {
		total += v
	}
	return total
}

// TotalOutputValue sums the output values.
func (t *Transaction) TotalOutputValue() int64 {
	var total int64
	for _, out := range t.MsgTx.TxOut {
		total += out.Value
	}
	return total
}

// IsCoinbase reports whether tx is a coinbase transaction.
func IsCoinbase(tx *wire.MsgTx) bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prev := tx.TxIn[0].PreviousOutPoint
	return prev.Index == math.MaxUint32 && prev.Hash == (chainhash.Hash{})
}

// DecodeTransaction parses a serialized transaction.
func DecodeTransaction(raw []byte) (*wire.MsgTx, error) {
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return &tx, nil
}
