package cbi

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

func validateKeys(op, name string, keys []string) error {
	if len(keys) == 0 {
		return invalidArgument(op, "%s must be a non-empty list", name)
	}
	for i, key := range keys {
		if key == "" {
			return invalidArgument(op, "%s[%d] is empty", name, i)
		}
	}
	return nil
}

func projectAddressSummary(address string, raw *chain.AddressSummaryRaw) (model.AddressSummary, error) {
	if raw == nil {
		return model.AddressSummary{}, fmt.Errorf("address %s: summary is missing", address)
	}
	if raw.Balance < 0 || raw.TotalReceived < 0 || raw.Appearances < 0 {
		return model.AddressSummary{}, fmt.Errorf("address %s: summary has negative fields", address)
	}
	return model.AddressSummary{
		Address:       address,
		Balance:       raw.Balance,
		TotalReceived: raw.TotalReceived,
		TxCount:       raw.Appearances,
	}, nil
}

func checkTransaction(tx *chain.Transaction) error {
	if tx == nil || tx.MsgTx == nil {
		return errors.New("transaction is missing")
	}
	if tx.BlockHash == "" {
		return fmt.Errorf("transaction %s: block hash is missing", tx.TxID())
	}
	return nil
}

func projectTransactionRecord(tx *chain.Transaction, height int64) (model.TransactionRecord, error) {
	if err := checkTransaction(tx); err != nil {
		return model.TransactionRecord{}, err
	}
	txHex, err := tx.Hex()
	if err != nil {
		return model.TransactionRecord{}, err
	}
	return model.TransactionRecord{
		BlockHeight: height,
		BlockID:     tx.BlockHash,
		TxID:        tx.TxID(),
		TxHex:       txHex,
	}, nil
}

func projectTransactionSummary(tx *chain.Transaction) (model.TransactionSummary, error) {
	if err := checkTransaction(tx); err != nil {
		return model.TransactionSummary{}, err
	}
	if len(tx.InputValues) != tx.InputCount() {
		return model.TransactionSummary{}, fmt.Errorf("transaction %s: %d input values for %d inputs",
			tx.TxID(), len(tx.InputValues), tx.InputCount())
	}
	return model.TransactionSummary{
		TxID:             tx.TxID(),
		BlockID:          tx.BlockHash,
		BlockHeight:      tx.BlockHeight,
		NInputs:          tx.InputCount(),
		NOutputs:         tx.OutputCount(),
		TotalInputValue:  tx.TotalInputValue(),
		TotalOutputValue: tx.TotalOutputValue(),
	}, nil
}

func projectUnspent(raw chain.UnspentRaw) (model.UnspentOutput, error) {
	if raw.Address == "" || raw.TxID == "" {
		return model.UnspentOutput{}, errors.New("unspent output: address or txid is missing")
	}
	if raw.Satoshis < 0 || raw.Confirmations < 0 {
		return model.UnspentOutput{}, fmt.Errorf("unspent output %s:%d: negative fields", raw.TxID, raw.OutputIndex)
	}
	return model.UnspentOutput{
		Address:       raw.Address,
		TxID:          raw.TxID,
		Confirmations: raw.Confirmations,
		Value:         raw.Satoshis,
		Vout:          raw.OutputIndex,
	}, nil
}

func projectBlockRecord(block *wire.MsgBlock) (model.BlockRecord, error) {
	if block == nil {
		return model.BlockRecord{}, errors.New("block is missing")
	}
	blockHex, err := chain.BlockHex(block)
	if err != nil {
		return model.BlockRecord{}, err
	}
	return model.BlockRecord{
		BlockID:  block.BlockHash().String(),
		BlockHex: blockHex,
	}, nil
}

func projectBlockSummary(block *wire.MsgBlock, index *chain.BlockIndex) (model.BlockSummary, error) {
	if block == nil {
		return model.BlockSummary{}, errors.New("block is missing")
	}
	header := block.Header
	return model.BlockSummary{
		BlockID:        block.BlockHash().String(),
		PrevBlockID:    header.PrevBlock.String(),
		MerkleRootHash: header.MerkleRoot.String(),
		Nonce:          header.Nonce,
		Version:        header.Version,
		BlockHeight:    index.Height,
		BlockSize:      block.SerializeSize(),
		Timestamp:      header.Timestamp.Unix(),
		TxCount:        len(block.Transactions),
	}, nil
}
