package node

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// BlockStore fetches full blocks from the node.
type BlockStore struct {
	rpc NodeRPC
}

func NewBlockStore(rpc NodeRPC) (*BlockStore, error) {
	if rpc == nil {
		return nil, errors.New("node rpc is required")
	}
	return &BlockStore{rpc: rpc}, nil
}

// GetBlock returns the block with the given hash. Blocks never live in the mempool, so the
// flag is ignored.
func (s *BlockStore) GetBlock(ctx context.Context, hash string, _ bool) (*wire.MsgBlock, error) {
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	block, err := s.rpc.GetBlock(ctx, blockHash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, nil
}
