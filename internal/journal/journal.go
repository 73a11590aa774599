// Package journal persists accepted transaction broadcasts in batches.
package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"github.com/goodnatureofminers/commonblockchain/pkg/batcher"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Writer stores a batch of broadcasts.
type Writer interface {
	InsertBroadcasts(ctx context.Context, broadcasts []model.Broadcast) error
}

// Config tunes batching of journal writes.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// FlushRPS caps flushes per second; zero disables the limit.
	FlushRPS int
}

// Journal buffers broadcasts and writes them through Writer.
type Journal struct {
	batcher *batcher.Batcher[model.Broadcast]
	logger  *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	started bool
	stopped bool
}

func New(writer Writer, cfg Config, logger *zap.Logger) (*Journal, error) {
	if writer == nil {
		return nil, errors.New("journal writer is required")
	}
	if cfg.FlushInterval <= 0 {
		return nil, fmt.Errorf("journal flush interval must be positive, got %s", cfg.FlushInterval)
	}
	logger = logger.Named("journal")
	return &Journal{
		batcher: batcher.New(logger, writer.InsertBroadcasts, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS),
		logger:  logger,
	}, nil
}

// Start launches the flush loop. The loop outlives ctx and runs until Stop.
func (j *Journal) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopped {
		return errors.New("journal already stopped")
	}
	if j.started {
		return nil
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.batcher.Start(runCtx)
	j.cancel = cancel
	j.started = true
	j.logger.Info("journal started")
	return nil
}

// Stop flushes queued broadcasts and stops the loop. A stopped journal cannot be restarted.
func (j *Journal) Stop(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.started || j.stopped {
		return nil
	}
	j.batcher.Stop()
	j.cancel()
	j.stopped = true
	j.logger.Info("journal stopped")
	return nil
}

// Record queues broadcast for the next flush.
func (j *Journal) Record(ctx context.Context, broadcast model.Broadcast) error {
	if err := j.batcher.Add(ctx, broadcast); err != nil {
		return fmt.Errorf("journal broadcast %s: %w", broadcast.TxID, err)
	}
	return nil
}
