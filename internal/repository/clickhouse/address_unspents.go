package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

// AddressUnspents returns the confirmed outputs paying to addresses that no stored input spends.
// An output paying to several of the queried addresses is reported once per address.
func (r *Repository) AddressUnspents(ctx context.Context, addresses []string) (_ []model.AddressOutput, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_unspents", err, start)
	}()

	if len(addresses) == 0 {
		return []model.AddressOutput{}, nil
	}

	const query = `
SELECT
	address,
	o.txid,
	o.output_index,
	o.value,
	o.block_height
FROM utxo_transaction_outputs AS o
ARRAY JOIN arrayIntersect(o.addresses, ?) AS address
WHERE o.coin = ? AND o.network = ? AND hasAny(o.addresses, ?)
	AND (o.txid, o.output_index) NOT IN (
		SELECT prev_txid, prev_vout
		FROM utxo_transaction_inputs
		WHERE coin = ? AND network = ? AND is_coinbase = 0 AND hasAny(addresses, ?)
	)
ORDER BY o.block_height ASC, o.txid ASC, o.output_index ASC, address ASC`

	rows, err := r.conn.Query(ctx, query,
		addresses,
		r.coin, r.network, addresses,
		r.coin, r.network, addresses,
	)
	if err != nil {
		return nil, fmt.Errorf("query address unspents: %w", err)
	}
	defer closeRows(rows, &err)

	outputs := make([]model.AddressOutput, 0)
	for rows.Next() {
		var output model.AddressOutput
		if err = rows.Scan(
			&output.Address,
			&output.TxID,
			&output.Index,
			&output.Value,
			&output.BlockHeight,
		); err != nil {
			return nil, fmt.Errorf("scan address unspent: %w", err)
		}
		outputs = append(outputs, output)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address unspents: %w", err)
	}

	r.metrics.ObserveRows("address_unspents", len(outputs))
	return outputs, nil
}
