// Package cbi implements the common-blockchain batch query aggregators.
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

// AddressAggregator serves the address queries.
type AddressAggregator struct {
	index   AddressIndex
	metrics Metrics
	workers int
	logger  *zap.Logger
}

// NewAddressAggregator builds an AddressAggregator fanning out over at most workers goroutines.
func NewAddressAggregator(index AddressIndex, metrics Metrics, workers int, logger *zap.Logger) (*AddressAggregator, error) {
	if index == nil {
		return nil, errors.New("address index is required")
	}
	if metrics == nil {
		return nil, errors.New("aggregator metrics is required")
	}
	return &AddressAggregator{
		index:   index,
		metrics: metrics,
		workers: workers,
		logger:  logger.Named("address"),
	}, nil
}

// Summary returns one summary per address, in address order.
func (a *AddressAggregator) Summary(ctx context.Context, addresses []string) (_ []model.AddressSummary, err error) {
	const op = "getAddressesSummary"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(addresses), started)
	}()

	if err = validateKeys(op, "addresses", addresses); err != nil {
		return nil, err
	}

	summaries, err := workerpool.Map(ctx, a.workers, addresses, func(ctx context.Context, address string) (model.AddressSummary, error) {
		raw, err := a.index.Summary(ctx, address, chain.SummaryOptions{NoTxList: true})
		if err != nil {
			return model.AddressSummary{}, upstream(op, fmt.Errorf("address %s summary: %w", address, err))
		}
		summary, err := projectAddressSummary(address, raw)
		if err != nil {
			return model.AddressSummary{}, upstream(op, err)
		}
		return summary, nil
	})
	if err != nil {
		err = upstream(op, err)
		a.logger.Debug("address summary failed", zap.Int("addresses", len(addresses)), zap.Error(err))
		return nil, err
	}
	return summaries, nil
}

// Transactions returns every confirmed transaction touching the addresses at or above
// fromHeight. The result follows the history order of the address index, one record per
// transaction rather than per address.
func (a *AddressAggregator) Transactions(ctx context.Context, addresses []string, fromHeight uint64) (_ []model.TransactionRecord, err error) {
	const op = "getAddressesTransactions"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(addresses), started)
	}()

	if err = validateKeys(op, "addresses", addresses); err != nil {
		return nil, err
	}

	history, err := a.index.History(ctx, addresses, chain.HistoryOptions{
		Start:        fromHeight,
		End:          chain.MaxHeight,
		QueryMempool: false,
	})
	if err != nil {
		return nil, upstream(op, fmt.Errorf("address history: %w", err))
	}
	if history == nil {
		return nil, upstream(op, errors.New("address history: result is missing"))
	}

	records, err := workerpool.Map(ctx, a.workers, history.Items, func(_ context.Context, item chain.HistoryItem) (model.TransactionRecord, error) {
		record, err := projectTransactionRecord(item.Tx, item.Height)
		if err != nil {
			return model.TransactionRecord{}, upstream(op, err)
		}
		return record, nil
	})
	if err != nil {
		err = upstream(op, err)
		a.logger.Debug("address transactions failed", zap.Int("items", len(history.Items)), zap.Error(err))
		return nil, err
	}
	return records, nil
}

// Unspents returns the confirmed unspent outputs owned by the addresses.
func (a *AddressAggregator) Unspents(ctx context.Context, addresses []string) (_ []model.UnspentOutput, err error) {
	const op = "getAddressesUnspents"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(addresses), started)
	}()

	if err = validateKeys(op, "addresses", addresses); err != nil {
		return nil, err
	}

	unspents, err := a.index.UnspentOutputs(ctx, addresses, false)
	if err != nil {
		return nil, upstream(op, fmt.Errorf("unspent outputs: %w", err))
	}

	outputs, err := workerpool.Map(ctx, a.workers, unspents, func(_ context.Context, raw chain.UnspentRaw) (model.UnspentOutput, error) {
		output, err := projectUnspent(raw)
		if err != nil {
			return model.UnspentOutput{}, upstream(op, err)
		}
		return output, nil
	})
	if err != nil {
		err = upstream(op, err)
		a.logger.Debug("address unspents failed", zap.Int("outputs", len(unspents)), zap.Error(err))
		return nil, err
	}
	return outputs, nil
}
