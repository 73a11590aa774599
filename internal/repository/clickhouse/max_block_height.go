package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// MaxBlockHeight returns the highest stored block height, the confirmation tip.
func (r *Repository) MaxBlockHeight(ctx context.Context) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	const query = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height
FROM utxo_blocks
WHERE coin = ? AND network = ?`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network)
	if err != nil {
		return 0, fmt.Errorf("query max block height: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, errors.New("max block height not found")
	}

	var height uint64
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, nil
}
