package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/cbi"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StateReporter exposes the lifecycle state of the query service.
	StateReporter interface {
		State() cbi.State
	}
	// Service is the query surface served over JSON-RPC.
	Service interface {
		StateReporter
		GetAddressesSummary(ctx context.Context, addresses []string) ([]model.AddressSummary, error)
		GetAddressesTransactions(ctx context.Context, addresses []string, fromHeight uint64) ([]model.TransactionRecord, error)
		GetAddressesUnspents(ctx context.Context, addresses []string) ([]model.UnspentOutput, error)
		GetTransactions(ctx context.Context, txids []string) ([]model.TransactionRecord, error)
		GetTransactionsSummary(ctx context.Context, txids []string) ([]model.TransactionSummary, error)
		GetUnconfirmedTransactions(ctx context.Context) ([]model.TransactionRecord, error)
		PropagateTransactions(ctx context.Context, rawTxs [][]byte) ([]string, error)
		GetBlocks(ctx context.Context, hashes []string) ([]model.BlockRecord, error)
		GetBlocksSummary(ctx context.Context, hashes []string) ([]model.BlockSummary, error)
		GetLatestBlocks(ctx context.Context) ([]model.BlockRecord, error)
		PropagateBlock(ctx context.Context, rawBlock []byte) (string, error)
	}
	// HandlerMetrics records served JSON-RPC calls.
	HandlerMetrics interface {
		Observe(method string, code int, started time.Time)
	}
)
