// Package node adapts the chain daemon RPC interface to the gateway stores.
package node

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/ratelimit"
)

// RPCClient wraps the node rpcclient with rate limiting and metrics instrumentation.
type RPCClient struct {
	client     RawClient
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client. A nil limiter disables rate limiting.
func NewRPCClient(client RawClient, limiter ratelimit.Limiter, rpcMetrics RPCMetrics) (*RPCClient, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RPCClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}, nil
}

// wait blocks on the limiter unless ctx is already done; rpcclient calls cannot be interrupted.
func (r *RPCClient) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.limiter.Take()
	return ctx.Err()
}

// GetBlock returns the full block for blockHash.
func (r *RPCClient) GetBlock(ctx context.Context, blockHash *chainhash.Hash) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block", err, started)
	}()
	if err = r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.GetBlock(blockHash)
}

// GetBlockHeaderVerbose returns the decoded header of blockHash, height included.
func (r *RPCClient) GetBlockHeaderVerbose(ctx context.Context, blockHash *chainhash.Hash) (res *btcjson.GetBlockHeaderVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header_verbose", err, started)
	}()
	if err = r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.GetBlockHeaderVerbose(blockHash)
}

// GetRawTransactionVerbose returns the raw transaction and its block position.
func (r *RPCClient) GetRawTransactionVerbose(ctx context.Context, txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	if err = r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.GetRawTransactionVerbose(txHash)
}

// SendRawTransaction submits tx, refusing absurd fees.
func (r *RPCClient) SendRawTransaction(ctx context.Context, tx *wire.MsgTx) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	if err = r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.SendRawTransaction(tx, false)
}
