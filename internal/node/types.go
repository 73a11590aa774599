package node

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawClient is the subset of *rpcclient.Client used by the gateway.
	RawClient interface {
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// NodeRPC is the rate limited, instrumented node client consumed by the stores.
	NodeRPC interface {
		GetBlock(ctx context.Context, blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockHeaderVerbose(ctx context.Context, blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		GetRawTransactionVerbose(ctx context.Context, txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		SendRawTransaction(ctx context.Context, tx *wire.MsgTx) (*chainhash.Hash, error)
	}
	// OutputLookup resolves the values of previously stored outputs.
	OutputLookup interface {
		TransactionOutputsLookupByTxIDs(ctx context.Context, txids []string) (map[string][]model.OutputValue, error)
	}
	// Journal records accepted broadcasts.
	Journal interface {
		Record(ctx context.Context, broadcast model.Broadcast) error
	}
)
