package cbi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"github.com/goodnatureofminers/commonblockchain/pkg/workerpool"
	"go.uber.org/zap"
)

// BlockAggregator serves the block queries.
type BlockAggregator struct {
	store   BlockStore
	index   ChainIndex
	metrics Metrics
	workers int
	logger  *zap.Logger
}

// NewBlockAggregator builds a BlockAggregator.
func NewBlockAggregator(store BlockStore, index ChainIndex, metrics Metrics, workers int, logger *zap.Logger) (*BlockAggregator, error) {
	if store == nil {
		return nil, errors.New("block store is required")
	}
	if index == nil {
		return nil, errors.New("chain index is required")
	}
	if metrics == nil {
		return nil, errors.New("aggregator metrics is required")
	}
	return &BlockAggregator{
		store:   store,
		index:   index,
		metrics: metrics,
		workers: workers,
		logger:  logger.Named("block"),
	}, nil
}

// Blocks returns the serialized blocks for hashes, in hash order.
func (a *BlockAggregator) Blocks(ctx context.Context, hashes []string) (_ []model.BlockRecord, err error) {
	const op = "getBlocks"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(hashes), started)
	}()

	if err = validateKeys(op, "hashes", hashes); err != nil {
		return nil, err
	}

	records, err := workerpool.Map(ctx, a.workers, hashes, func(ctx context.Context, hash string) (model.BlockRecord, error) {
		block, err := a.fetch(ctx, op, hash)
		if err != nil {
			return model.BlockRecord{}, err
		}
		record, err := projectBlockRecord(block)
		if err != nil {
			return model.BlockRecord{}, upstream(op, err)
		}
		return record, nil
	})
	if err != nil {
		return nil, a.fail(op, len(hashes), err)
	}
	return records, nil
}

// Summaries returns header level summaries for hashes, each combined with the height
// recorded in the chain index.
func (a *BlockAggregator) Summaries(ctx context.Context, hashes []string) (_ []model.BlockSummary, err error) {
	const op = "getBlocksSummary"
	started := time.Now()
	defer func() {
		a.metrics.Observe(op, statusOf(err), len(hashes), started)
	}()

	if err = validateKeys(op, "hashes", hashes); err != nil {
		return nil, err
	}

	summaries, err := workerpool.Map(ctx, a.workers, hashes, func(ctx context.Context, hash string) (model.BlockSummary, error) {
		block, err := a.fetch(ctx, op, hash)
		if err != nil {
			return model.BlockSummary{}, err
		}
		index, err := a.index.BlockIndex(ctx, hash)
		switch {
		case errors.Is(err, chain.ErrNotFound):
			return model.BlockSummary{}, notFound(op, fmt.Errorf("block %s height: %w", hash, err))
		case err != nil:
			return model.BlockSummary{}, upstream(op, fmt.Errorf("block %s height: %w", hash, err))
		case index == nil:
			return model.BlockSummary{}, notFound(op, fmt.Errorf("block %s height: no index entry", hash))
		}
		summary, err := projectBlockSummary(block, index)
		if err != nil {
			return model.BlockSummary{}, upstream(op, err)
		}
		return summary, nil
	})
	if err != nil {
		return nil, a.fail(op, len(hashes), err)
	}
	return summaries, nil
}

// Latest is not supported.
func (a *BlockAggregator) Latest(_ context.Context) ([]model.BlockRecord, error) {
	const op = "getLatestBlocks"
	err := notImplemented(op)
	a.metrics.Observe(op, statusOf(err), 0, time.Now())
	return nil, err
}

// Propagate is not supported; the block is never inspected.
func (a *BlockAggregator) Propagate(_ context.Context, _ []byte) (string, error) {
	const op = "propagateBlock"
	err := notImplemented(op)
	a.metrics.Observe(op, statusOf(err), 0, time.Now())
	return "", err
}

func (a *BlockAggregator) fetch(ctx context.Context, op, hash string) (*wire.MsgBlock, error) {
	block, err := a.store.GetBlock(ctx, hash, false)
	if err != nil {
		return nil, upstream(op, fmt.Errorf("block %s: %w", hash, err))
	}
	return block, nil
}

func (a *BlockAggregator) fail(op string, keys int, err error) error {
	err = upstream(op, err)
	a.logger.Debug("block batch failed", zap.String("operation", op), zap.Int("keys", keys), zap.Error(err))
	return err
}
