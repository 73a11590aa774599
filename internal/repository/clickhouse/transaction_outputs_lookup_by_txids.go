package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

// TransactionOutputsLookupByTxIDs returns the output values of multiple transactions keyed by txid.
func (r *Repository) TransactionOutputsLookupByTxIDs(ctx context.Context, txids []string) (_ map[string][]model.OutputValue, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_outputs_lookup_by_txids", err, start)
	}()

	result := make(map[string][]model.OutputValue, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	txid,
	output_index,
	anyLast(value) AS value
FROM utxo_transaction_outputs_lookup
WHERE coin = ? AND network = ? AND txid IN ?
GROUP BY
	txid,
	output_index
ORDER BY output_index ASC
SETTINGS max_threads = 1`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, txids)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs by txids: %w", err)
	}
	defer closeRows(rows, &err)

	var count int
	for rows.Next() {
		var output model.OutputValue
		if err = rows.Scan(&output.TxID, &output.Index, &output.Value); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}
		result[output.TxID] = append(result[output.TxID], output)
		count++
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	r.metrics.ObserveRows("transaction_outputs_lookup_by_txids", count)
	return result, nil
}
