package cbi

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"go.uber.org/zap"
)

// Dependencies lists the host capabilities that must be available before the service is usable.
var Dependencies = []string{"address"}

// State is the coarse service lifecycle state.
type State int32

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Service exposes the aggregators as one flat method set and carries the lifecycle state.
type Service struct {
	addresses    *AddressAggregator
	transactions *TransactionAggregator
	blocks       *BlockAggregator
	logger       *zap.Logger

	mu    sync.Mutex
	state atomic.Int32
}

// NewService builds a stopped Service over the three aggregators.
func NewService(
	addresses *AddressAggregator,
	transactions *TransactionAggregator,
	blocks *BlockAggregator,
	logger *zap.Logger,
) (*Service, error) {
	if addresses == nil || transactions == nil || blocks == nil {
		return nil, errors.New("all aggregators are required")
	}
	return &Service{
		addresses:    addresses,
		transactions: transactions,
		blocks:       blocks,
		logger:       logger.Named("service"),
	}, nil
}

// Start moves the service to Running. Starting a running service is a no-op.
func (s *Service) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() == StateRunning {
		return nil
	}
	s.transition(StateStarting)
	s.transition(StateRunning)
	return nil
}

// Stop moves the service to Stopped. Stopping a stopped service is a no-op.
func (s *Service) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() == StateStopped {
		return nil
	}
	s.transition(StateStopping)
	s.transition(StateStopped)
	return nil
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	return State(s.state.Load())
}

func (s *Service) transition(next State) {
	prev := State(s.state.Swap(int32(next)))
	s.logger.Debug("state changed", zap.Stringer("from", prev), zap.Stringer("to", next))
}

// GetAddressesSummary returns balance and totals per address.
func (s *Service) GetAddressesSummary(ctx context.Context, addresses []string) ([]model.AddressSummary, error) {
	return s.addresses.Summary(ctx, addresses)
}

// GetAddressesTransactions returns the confirmed transactions of addresses from fromHeight on.
func (s *Service) GetAddressesTransactions(ctx context.Context, addresses []string, fromHeight uint64) ([]model.TransactionRecord, error) {
	return s.addresses.Transactions(ctx, addresses, fromHeight)
}

// GetAddressesUnspents returns the unspent outputs of addresses.
func (s *Service) GetAddressesUnspents(ctx context.Context, addresses []string) ([]model.UnspentOutput, error) {
	return s.addresses.Unspents(ctx, addresses)
}

// GetTransactions returns the serialized transactions for txids.
func (s *Service) GetTransactions(ctx context.Context, txids []string) ([]model.TransactionRecord, error) {
	return s.transactions.Transactions(ctx, txids)
}

// GetTransactionsSummary returns input/output counts and totals for txids.
func (s *Service) GetTransactionsSummary(ctx context.Context, txids []string) ([]model.TransactionSummary, error) {
	return s.transactions.Summaries(ctx, txids)
}

// GetUnconfirmedTransactions always fails with ErrNotImplemented.
func (s *Service) GetUnconfirmedTransactions(ctx context.Context) ([]model.TransactionRecord, error) {
	return s.transactions.Unconfirmed(ctx)
}

// PropagateTransactions submits raw transactions and returns their ids.
func (s *Service) PropagateTransactions(ctx context.Context, rawTxs [][]byte) ([]string, error) {
	return s.transactions.Propagate(ctx, rawTxs)
}

// GetBlocks returns the serialized blocks for hashes.
func (s *Service) GetBlocks(ctx context.Context, hashes []string) ([]model.BlockRecord, error) {
	return s.blocks.Blocks(ctx, hashes)
}

// GetBlocksSummary returns header fields and heights for hashes.
func (s *Service) GetBlocksSummary(ctx context.Context, hashes []string) ([]model.BlockSummary, error) {
	return s.blocks.Summaries(ctx, hashes)
}

// GetLatestBlocks always fails with ErrNotImplemented.
func (s *Service) GetLatestBlocks(ctx context.Context) ([]model.BlockRecord, error) {
	return s.blocks.Latest(ctx)
}

// PropagateBlock always fails with ErrNotImplemented.
func (s *Service) PropagateBlock(ctx context.Context, rawBlock []byte) (string, error) {
	return s.blocks.Propagate(ctx, rawBlock)
}
