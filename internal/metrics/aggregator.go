// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commonblockchain"

var (
	aggregatorOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aggregator",
		Name:      "operations_total",
		Help:      "Count of batch query operations.",
	}, []string{"operation", "coin", "network", "status"})

	aggregatorOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "aggregator",
		Name:      "operation_duration_seconds",
		Help:      "Duration of batch query operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})

	aggregatorBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "aggregator",
		Name:      "batch_size",
		Help:      "Number of keys per batch query.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"operation", "coin", "network"})
)

// Aggregator tracks metrics for the batch query aggregators.
type Aggregator struct {
	coin    model.Coin
	network model.Network
}

// NewAggregator constructs an Aggregator collector.
func NewAggregator(coin model.Coin, network model.Network) *Aggregator {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Aggregator{coin: coin, network: network}
}

// Observe records the outcome, duration and key count of an operation.
func (m Aggregator) Observe(operation, status string, keys int, started time.Time) {
	aggregatorOperationsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	aggregatorOperationDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if keys > 0 {
		aggregatorBatchSize.WithLabelValues(operation, string(m.coin), string(m.network)).Observe(float64(keys))
	}
}
