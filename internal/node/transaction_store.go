package node

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"github.com/goodnatureofminers/commonblockchain/pkg/safe"
	"go.uber.org/zap"
)

// TransactionStore fetches transactions from the node and prices their inputs from ClickHouse.
type TransactionStore struct {
	rpc     NodeRPC
	outputs OutputLookup
	journal Journal
	coin    model.Coin
	network model.Network
	logger  *zap.Logger
	now     func() time.Time
}

// NewTransactionStore builds a TransactionStore. journal may be nil.
func NewTransactionStore(
	rpc NodeRPC,
	outputs OutputLookup,
	journal Journal,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) (*TransactionStore, error) {
	if rpc == nil {
		return nil, errors.New("node rpc is required")
	}
	if outputs == nil {
		return nil, errors.New("output lookup is required")
	}
	return &TransactionStore{
		rpc:     rpc,
		outputs: outputs,
		journal: journal,
		coin:    coin,
		network: network,
		logger:  logger.Named("transactionStore"),
		now:     time.Now,
	}, nil
}

// GetWithBlockInfo returns the transaction txid with its block hash and height. Input values
// are left empty; see InputValues.
// Unconfirmed transactions are reported as chain.ErrNotFound unless queryMempool is set.
func (s *TransactionStore) GetWithBlockInfo(ctx context.Context, txid string, queryMempool bool) (*chain.Transaction, error) {
	txHash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}

	res, err := s.rpc.GetRawTransactionVerbose(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}
	if res == nil {
		return nil, fmt.Errorf("get raw transaction %s: empty result", txid)
	}
	if res.BlockHash == "" && !queryMempool {
		return nil, fmt.Errorf("transaction %s is unconfirmed: %w", txid, chain.ErrNotFound)
	}

	raw, err := hex.DecodeString(res.Hex)
	if err != nil {
		return nil, fmt.Errorf("decode transaction %s hex: %w", txid, err)
	}
	msg, err := chain.DecodeTransaction(raw)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", txid, err)
	}

	tx := &chain.Transaction{
		MsgTx:       msg,
		BlockHash:   res.BlockHash,
		BlockHeight: model.UnconfirmedHeight,
	}
	if res.BlockHash != "" {
		if tx.BlockHeight, err = s.blockHeight(ctx, res.BlockHash); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", txid, err)
		}
	}

	s.logger.Debug("transaction resolved",
		zap.String("txid", txid),
		zap.Int64("height", tx.BlockHeight),
	)
	return tx, nil
}

func (s *TransactionStore) blockHeight(ctx context.Context, blockHash string) (int64, error) {
	hash, err := chainhash.NewHashFromStr(blockHash)
	if err != nil {
		return 0, fmt.Errorf("parse block hash %q: %w", blockHash, err)
	}
	header, err := s.rpc.GetBlockHeaderVerbose(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("get block header %s: %w", blockHash, err)
	}
	if header == nil {
		return 0, fmt.Errorf("get block header %s: empty result", blockHash)
	}
	return int64(header.Height), nil
}

// InputValues resolves the value spent by every input of msg from the stored outputs, zero
// for coinbase inputs. An input spending an unknown output is an error.
func (s *TransactionStore) InputValues(ctx context.Context, msg *wire.MsgTx) ([]int64, error) {
	if msg == nil {
		return nil, errors.New("transaction is missing")
	}
	values := make([]int64, len(msg.TxIn))
	if chain.IsCoinbase(msg) || len(msg.TxIn) == 0 {
		return values, nil
	}

	seen := make(map[string]struct{}, len(msg.TxIn))
	prevTxIDs := make([]string, 0, len(msg.TxIn))
	for _, in := range msg.TxIn {
		prev := in.PreviousOutPoint.Hash.String()
		if _, ok := seen[prev]; ok {
			continue
		}
		seen[prev] = struct{}{}
		prevTxIDs = append(prevTxIDs, prev)
	}

	outputs, err := s.outputs.TransactionOutputsLookupByTxIDs(ctx, prevTxIDs)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: lookup spent outputs: %w", msg.TxHash(), err)
	}

	var total btcutil.Amount
	for i, in := range msg.TxIn {
		prev := in.PreviousOutPoint
		value, ok := findOutput(outputs[prev.Hash.String()], prev.Index)
		if !ok {
			return nil, fmt.Errorf("transaction %s: input %d spends unknown output %s", msg.TxHash(), i, prev)
		}
		if values[i], err = safe.Int64(value); err != nil {
			return nil, fmt.Errorf("transaction %s: input %d value: %w", msg.TxHash(), i, err)
		}
		total += btcutil.Amount(values[i])
	}

	s.logger.Debug("inputs priced",
		zap.Stringer("txid", msg.TxHash()),
		zap.Int("inputs", len(values)),
		zap.Stringer("input_value", total),
	)
	return values, nil
}

func findOutput(outputs []model.OutputValue, index uint32) (uint64, bool) {
	for _, out := range outputs {
		if out.Index == index {
			return out.Value, true
		}
	}
	return 0, false
}

// Send submits a serialized transaction and returns its id. The mempool flag has no effect on
// submission. Journal failures are logged, never returned.
func (s *TransactionStore) Send(ctx context.Context, rawTx []byte, _ bool) (string, error) {
	msg, err := chain.DecodeTransaction(rawTx)
	if err != nil {
		return "", err
	}

	hash, err := s.rpc.SendRawTransaction(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("send raw transaction %s: %w", msg.TxHash(), err)
	}
	txid := hash.String()

	if s.journal != nil {
		size, err := safe.Uint32(len(rawTx))
		if err == nil {
			err = s.journal.Record(ctx, model.Broadcast{
				Coin:        s.coin,
				Network:     s.network,
				TxID:        txid,
				Size:        size,
				BroadcastAt: s.now().UTC(),
			})
		}
		if err != nil {
			s.logger.Warn("failed to journal broadcast", zap.String("txid", txid), zap.Error(err))
		}
	}

	s.logger.Info("transaction broadcast", zap.String("txid", txid), zap.Int("size", len(rawTx)))
	return txid, nil
}
