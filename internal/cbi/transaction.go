package cbi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"github.com/goodnatureofminers/commonblockchain/pkg/workerpool"
	"go.uber.org/zap"
)

// TransactionAggregator serves the transaction queries and submissions.
type TransactionAggregator struct {
	store   TransactionStore
	metrics Metrics
	workers int
	logger  *zap.Logger
}

// NewTransactionAggregator builds a TransactionAggregator.
func NewTransactionAggregator(store TransactionStore, metrics Metrics, workers int, logger *zap.Logger) (*TransactionAggregator, error) {
	if store == nil {
		return nil, errors.New("transaction store is required")
	}
	if metrics == nil {
		return nil, errors.New("aggregator metrics is required")
	}
	return &TransactionAggregator{
		store:   store,
		metrics: metrics,
		workers: workers,
		logger:  logger.Named("transaction"),
	}, nil
}

// Transactions returns the serialized transactions for txids, in txid order.
func (a *TransactionAggregator) Transactions(ctx context.Context, txids []string) (_ []model.TransactionRecord, err error) {
	const op = "getTransactions"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(txids), started)
	}()

	if err = validateKeys(op, "txids", txids); err != nil {
		return nil, err
	}

	records, err := workerpool.Map(ctx, a.workers, txids, func(ctx context.Context, txid string) (model.TransactionRecord, error) {
		tx, err := a.fetch(ctx, op, txid)
		if err != nil {
			return model.TransactionRecord{}, err
		}
		record, err := projectTransactionRecord(tx, tx.BlockHeight)
		if err != nil {
			return model.TransactionRecord{}, upstream(op, err)
		}
		return record, nil
	})
	if err != nil {
		return nil, a.fail(op, len(txids), err)
	}
	return records, nil
}

// Summaries returns input/output counts and totals for txids, in txid order. Inputs are
// priced through the store only on this path.
func (a *TransactionAggregator) Summaries(ctx context.Context, txids []string) (_ []model.TransactionSummary, err error) {
	const op = "getTransactionsSummary"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(txids), started)
	}()

	if err = validateKeys(op, "txids", txids); err != nil {
		return nil, err
	}

	summaries, err := workerpool.Map(ctx, a.workers, txids, func(ctx context.Context, txid string) (model.TransactionSummary, error) {
		tx, err := a.fetch(ctx, op, txid)
		if err != nil {
			return model.TransactionSummary{}, err
		}
		if err = checkTransaction(tx); err != nil {
			return model.TransactionSummary{}, upstream(op, err)
		}
		if tx.InputValues, err = a.store.InputValues(ctx, tx.MsgTx); err != nil {
			return model.TransactionSummary{}, upstream(op, fmt.Errorf("transaction %s input values: %w", txid, err))
		}
		summary, err := projectTransactionSummary(tx)
		if err != nil {
			return model.TransactionSummary{}, upstream(op, err)
		}
		return summary, nil
	})
	if err != nil {
		return nil, a.fail(op, len(txids), err)
	}
	return summaries, nil
}

// Unconfirmed is not supported: the gateway never reads the mempool.
func (a *TransactionAggregator) Unconfirmed(_ context.Context) ([]model.TransactionRecord, error) {
	const op = "getUnconfirmedTransactions"
	err := notImplemented(op)
	a.metrics.Observe(op, statusOf(err), 0, time.Now())
	return nil, err
}

// Propagate submits every raw transaction to the node and returns the submission results
// (transaction ids) in input order.
func (a *TransactionAggregator) Propagate(ctx context.Context, rawTxs [][]byte) (_ []string, err error) {
	const op = "propagateTransactions"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(rawTxs), started)
	}()

	if len(rawTxs) == 0 {
		return nil, invalidArgument(op, "rawTxs must be a non-empty list")
	}
	for i, raw := range rawTxs {
		if len(raw) == 0 {
			return nil, invalidArgument(op, "rawTxs[%d] is empty", i)
		}
	}

	results, err := workerpool.Map(ctx, a.workers, rawTxs, func(ctx context.Context, raw []byte) (string, error) {
		result, err := a.store.Send(ctx, raw, false)
		if err != nil {
			return "", upstream(op, fmt.Errorf("send transaction: %w", err))
		}
		return result, nil
	})
	if err != nil {
		return nil, a.fail(op, len(rawTxs), err)
	}
	a.logger.Info("transactions propagated", zap.Int("count", len(results)))
	return results, nil
}

func (a *TransactionAggregator) fetch(ctx context.Context, op, txid string) (*chain.Transaction, error) {
	tx, err := a.store.GetWithBlockInfo(ctx, txid, false)
	if err != nil {
		return nil, upstream(op, fmt.Errorf("transaction %s: %w", txid, err))
	}
	return tx, nil
}

func (a *TransactionAggregator) fail(op string, keys int, err error) error {
	err = upstream(op, err)
	a.logger.Debug("transaction batch failed", zap.String("operation", op), zap.Int("keys", keys), zap.Error(err))
	return err
}
