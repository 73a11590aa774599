package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

// AddressTotals returns the confirmed value received and spent by address.
func (r *Repository) AddressTotals(ctx context.Context, address string) (_ model.AddressTotals, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_totals", err, start)
	}()

	const query = `
SELECT
	(
		SELECT coalesce(sum(value), toUInt64(0))
		FROM utxo_transaction_outputs
		WHERE coin = ? AND network = ? AND has(addresses, ?)
	) AS received,
	(
		SELECT coalesce(sum(value), toUInt64(0))
		FROM utxo_transaction_inputs
		WHERE coin = ? AND network = ? AND is_coinbase = 0 AND has(addresses, ?)
	) AS spent`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, address, r.coin, r.network, address)
	if err != nil {
		return model.AddressTotals{}, fmt.Errorf("query address totals: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.AddressTotals{}, fmt.Errorf("iterate address totals: %w", err)
		}
		return model.AddressTotals{}, errors.New("address totals not returned")
	}

	var totals model.AddressTotals
	if err = rows.Scan(&totals.Received, &totals.Spent); err != nil {
		return model.AddressTotals{}, fmt.Errorf("scan address totals: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.AddressTotals{}, fmt.Errorf("iterate address totals: %w", err)
	}

	return totals, nil
}
