package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcHandlerCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_handler",
		Name:      "calls_total",
		Help:      "Count of JSON-RPC calls by method and error code.",
	}, []string{"method", "code"})
	rpcHandlerCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_handler",
		Name:      "call_duration_seconds",
		Help:      "Duration of JSON-RPC calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// RPCHandler tracks metrics for the JSON-RPC endpoint.
type RPCHandler struct{}

func NewRPCHandler() *RPCHandler {
	return &RPCHandler{}
}

// Observe records a served call. Code 0 means success.
func (RPCHandler) Observe(method string, code int, started time.Time) {
	if method == "" {
		method = "unknown"
	}
	rpcHandlerCallsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	rpcHandlerCallDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}
