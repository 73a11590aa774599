package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/pkg/safe"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// HeightIndex resolves block hashes to heights, caching hits for ttl.
// Misses are never cached.
type HeightIndex struct {
	repo  HeightRepository
	cache *expirable.LRU[string, int64]
}

func NewHeightIndex(repo HeightRepository, size int, ttl time.Duration) (*HeightIndex, error) {
	if repo == nil {
		return nil, errors.New("height repository is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("height cache size must be positive, got %d", size)
	}
	return &HeightIndex{
		repo:  repo,
		cache: expirable.NewLRU[string, int64](size, nil, ttl),
	}, nil
}

// BlockIndex returns the chain position of hash or an error wrapping chain.ErrNotFound.
func (h *HeightIndex) BlockIndex(ctx context.Context, hash string) (*chain.BlockIndex, error) {
	if height, ok := h.cache.Get(hash); ok {
		return &chain.BlockIndex{Height: height}, nil
	}

	stored, err := h.repo.BlockHeightByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	height, err := safe.Int64(stored)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", hash, err)
	}
	h.cache.Add(hash, height)
	return &chain.BlockIndex{Height: height}, nil
}
