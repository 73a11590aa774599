package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

// InsertBroadcasts appends journal rows for transactions accepted by the node.
func (r *Repository) InsertBroadcasts(ctx context.Context, broadcasts []model.Broadcast) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_broadcasts", err, start)
	}()

	if len(broadcasts) == 0 {
		return nil
	}

	const query = `
INSERT INTO cbi_broadcasts (
	coin,
	network,
	txid,
	size,
	broadcast_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare broadcasts batch: %w", err)
	}

	for _, b := range broadcasts {
		if err = batch.Append(
			string(b.Coin),
			string(b.Network),
			b.TxID,
			b.Size,
			b.BroadcastAt,
		); err != nil {
			if abortErr := batch.Abort(); abortErr != nil {
				return fmt.Errorf("append broadcast: %w (abort: %v)", err, abortErr)
			}
			return fmt.Errorf("append broadcast: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert broadcasts: %w", err)
	}

	r.metrics.ObserveRows("insert_broadcasts", len(broadcasts))
	return nil
}
