package cbi

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/commonblockchain/internal/chain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AddressIndex resolves address statistics, history and unspent outputs.
	AddressIndex interface {
		Summary(ctx context.Context, address string, opts chain.SummaryOptions) (*chain.AddressSummaryRaw, error)
		History(ctx context.Context, addresses []string, opts chain.HistoryOptions) (*chain.HistoryResult, error)
		UnspentOutputs(ctx context.Context, addresses []string, queryMempool bool) ([]chain.UnspentRaw, error)
	}
	// TransactionStore fetches and submits transactions. InputValues prices the inputs of tx,
	// zero for coinbase inputs.
	TransactionStore interface {
		GetWithBlockInfo(ctx context.Context, txid string, queryMempool bool) (*chain.Transaction, error)
		InputValues(ctx context.Context, tx *wire.MsgTx) ([]int64, error)
		Send(ctx context.Context, rawTx []byte, queryMempool bool) (string, error)
	}
	// BlockStore fetches full blocks.
	BlockStore interface {
		GetBlock(ctx context.Context, hash string, queryMempool bool) (*wire.MsgBlock, error)
	}
	// ChainIndex maps block hashes to their chain position.
	ChainIndex interface {
		BlockIndex(ctx context.Context, hash string) (*chain.BlockIndex, error)
	}
	// Metrics records aggregator operation outcomes.
	Metrics interface {
		Observe(operation, status string, keys int, started time.Time)
	}
)
