package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

// AddressHistory returns the confirmed transactions touching any of addresses within
// [fromHeight, toHeight], oldest first. Each transaction appears once.
func (r *Repository) AddressHistory(ctx context.Context, addresses []string, fromHeight, toHeight uint64) (_ []model.HistoryEntry, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_history", err, start)
	}()

	if len(addresses) == 0 || fromHeight > toHeight {
		return []model.HistoryEntry{}, nil
	}

	const query = `
SELECT
	h.txid,
	h.block_height,
	b.hash
FROM (
	SELECT txid, min(block_height) AS block_height
	FROM (
		SELECT txid, block_height
		FROM utxo_transaction_outputs
		WHERE coin = ? AND network = ? AND hasAny(addresses, ?) AND block_height BETWEEN ? AND ?
		UNION ALL
		SELECT txid, block_height
		FROM utxo_transaction_inputs
		WHERE coin = ? AND network = ? AND hasAny(addresses, ?) AND block_height BETWEEN ? AND ?
	)
	GROUP BY txid
) AS h
INNER JOIN (
	SELECT height, any(hash) AS hash
	FROM utxo_blocks
	WHERE coin = ? AND network = ? AND height BETWEEN ? AND ?
	GROUP BY height
) AS b ON b.height = h.block_height
ORDER BY h.block_height ASC, h.txid ASC`

	rows, err := r.conn.Query(ctx, query,
		r.coin, r.network, addresses, fromHeight, toHeight,
		r.coin, r.network, addresses, fromHeight, toHeight,
		r.coin, r.network, fromHeight, toHeight,
	)
	if err != nil {
		return nil, fmt.Errorf("query address history: %w", err)
	}
	defer closeRows(rows, &err)

	entries := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var entry model.HistoryEntry
		if err = rows.Scan(&entry.TxID, &entry.BlockHeight, &entry.BlockHash); err != nil {
			return nil, fmt.Errorf("scan address history: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address history: %w", err)
	}

	r.metrics.ObserveRows("address_history", len(entries))
	return entries, nil
}
