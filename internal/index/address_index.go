// Package index serves address and block height lookups from the UTXO store.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"github.com/goodnatureofminers/commonblockchain/pkg/safe"
	"github.com/goodnatureofminers/commonblockchain/pkg/workerpool"
	"go.uber.org/zap"
)

// ErrMempoolUnsupported is returned for lookups that ask for unconfirmed data.
var ErrMempoolUnsupported = errors.New("mempool lookups are not supported")

// AddressIndex answers address queries from ClickHouse, hydrating history through the node.
type AddressIndex struct {
	repo    AddressRepository
	txs     TransactionSource
	workers int
	logger  *zap.Logger
}

func NewAddressIndex(repo AddressRepository, txs TransactionSource, workers int, logger *zap.Logger) (*AddressIndex, error) {
	if repo == nil {
		return nil, errors.New("address repository is required")
	}
	if txs == nil {
		return nil, errors.New("transaction source is required")
	}
	return &AddressIndex{
		repo:    repo,
		txs:     txs,
		workers: workers,
		logger:  logger.Named("addressIndex"),
	}, nil
}

// Summary returns the totals of address. The transaction id list is left empty when
// opts.NoTxList is set.
func (i *AddressIndex) Summary(ctx context.Context, address string, opts chain.SummaryOptions) (*chain.AddressSummaryRaw, error) {
	totals, err := i.repo.AddressTotals(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("address %s totals: %w", address, err)
	}
	if totals.Spent > totals.Received {
		return nil, fmt.Errorf("address %s spent %d of %d received", address, totals.Spent, totals.Received)
	}
	appearances, err := i.repo.AddressAppearances(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("address %s appearances: %w", address, err)
	}

	summary := &chain.AddressSummaryRaw{Address: address}
	if summary.TotalReceived, err = safe.Int64(totals.Received); err != nil {
		return nil, fmt.Errorf("address %s received: %w", address, err)
	}
	if summary.TotalSpent, err = safe.Int64(totals.Spent); err != nil {
		return nil, fmt.Errorf("address %s spent: %w", address, err)
	}
	summary.Balance = summary.TotalReceived - summary.TotalSpent
	if summary.Appearances, err = safe.Int64(appearances); err != nil {
		return nil, fmt.Errorf("address %s appearances: %w", address, err)
	}

	if opts.NoTxList {
		return summary, nil
	}
	entries, err := i.repo.AddressHistory(ctx, []string{address}, 0, chain.MaxHeight)
	if err != nil {
		return nil, fmt.Errorf("address %s history: %w", address, err)
	}
	summary.TxIDs = make([]string, 0, len(entries))
	for _, e := range entries {
		summary.TxIDs = append(summary.TxIDs, e.TxID)
	}
	return summary, nil
}

// History returns the confirmed transactions touching addresses between opts.Start and
// opts.End inclusive, in stored order.
func (i *AddressIndex) History(ctx context.Context, addresses []string, opts chain.HistoryOptions) (*chain.HistoryResult, error) {
	if opts.QueryMempool {
		return nil, fmt.Errorf("address history: %w", ErrMempoolUnsupported)
	}

	entries, err := i.repo.AddressHistory(ctx, addresses, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("address history: %w", err)
	}

	items, err := workerpool.Map(ctx, i.workers, entries, func(ctx context.Context, e model.HistoryEntry) (chain.HistoryItem, error) {
		height, err := safe.Int64(e.BlockHeight)
		if err != nil {
			return chain.HistoryItem{}, fmt.Errorf("transaction %s height: %w", e.TxID, err)
		}
		tx, err := i.txs.GetWithBlockInfo(ctx, e.TxID, false)
		if err != nil {
			return chain.HistoryItem{}, fmt.Errorf("hydrate transaction %s: %w", e.TxID, err)
		}
		return chain.HistoryItem{Tx: tx, Height: height}, nil
	})
	if err != nil {
		return nil, err
	}

	i.logger.Debug("address history resolved",
		zap.Int("addresses", len(addresses)),
		zap.Uint64("from", opts.Start),
		zap.Uint64("to", opts.End),
		zap.Int("items", len(items)),
	)
	return &chain.HistoryResult{Items: items}, nil
}

// UnspentOutputs returns the unspent outputs paying to addresses with their confirmation
// count against the stored tip.
func (i *AddressIndex) UnspentOutputs(ctx context.Context, addresses []string, queryMempool bool) ([]chain.UnspentRaw, error) {
	if queryMempool {
		return nil, fmt.Errorf("address unspents: %w", ErrMempoolUnsupported)
	}

	tip, err := i.repo.MaxBlockHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("address unspents tip: %w", err)
	}
	outputs, err := i.repo.AddressUnspents(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("address unspents: %w", err)
	}

	result := make([]chain.UnspentRaw, 0, len(outputs))
	for _, out := range outputs {
		satoshis, err := safe.Int64(out.Value)
		if err != nil {
			return nil, fmt.Errorf("output %s:%d value: %w", out.TxID, out.Index, err)
		}
		confirmations, err := safe.Int64(confirmationsAt(tip, out.BlockHeight))
		if err != nil {
			return nil, fmt.Errorf("output %s:%d confirmations: %w", out.TxID, out.Index, err)
		}
		result = append(result, chain.UnspentRaw{
			Address:       out.Address,
			TxID:          out.TxID,
			OutputIndex:   out.Index,
			Satoshis:      satoshis,
			Height:        out.BlockHeight,
			Confirmations: confirmations,
		})
	}
	return result, nil
}

// confirmationsAt counts the block holding the output as its first confirmation.
func confirmationsAt(tip, height uint64) uint64 {
	if height > tip {
		return 0
	}
	return tip - height + 1
}
