package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/chain"
)

// BlockHeightByHash returns the height of the stored block with the given hash.
// It fails with chain.ErrNotFound when no such block is stored.
func (r *Repository) BlockHeightByHash(ctx context.Context, hash string) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_height_by_hash", err, start)
	}()

	const query = `
SELECT height
FROM utxo_blocks
WHERE coin = ? AND network = ? AND hash = CAST(? AS FixedString(64))
ORDER BY height DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, hash)
	if err != nil {
		return 0, fmt.Errorf("query block height by hash: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate block height by hash: %w", err)
		}
		return 0, fmt.Errorf("block %s: %w", hash, chain.ErrNotFound)
	}

	var height uint64
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate block height by hash: %w", err)
	}

	return height, nil
}
