package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// AddressAppearances counts the distinct confirmed transactions that pay to or spend from address.
func (r *Repository) AddressAppearances(ctx context.Context, address string) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_appearances", err, start)
	}()

	const query = `
SELECT uniqExact(txid) AS appearances
FROM (
	SELECT txid
	FROM utxo_transaction_outputs
	WHERE coin = ? AND network = ? AND has(addresses, ?)
	UNION ALL
	SELECT txid
	FROM utxo_transaction_inputs
	WHERE coin = ? AND network = ? AND has(addresses, ?)
)`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, address, r.coin, r.network, address)
	if err != nil {
		return 0, fmt.Errorf("query address appearances: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate address appearances: %w", err)
		}
		return 0, errors.New("address appearances not returned")
	}

	var appearances uint64
	if err = rows.Scan(&appearances); err != nil {
		return 0, fmt.Errorf("scan address appearances: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate address appearances: %w", err)
	}

	return appearances, nil
}
