package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	erpCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_erp_calls_total",
			Help: "JSON-RPC calls issued to the ERP (per model, method and outcome)",
		},
		[]string{"model", "method", "outcome"},
	)

	erpCallSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_erp_call_seconds",
			Help:    "Round trip time of JSON-RPC calls to the ERP (per model and method)",
			Buckets: []float64{0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"model", "method"},
	)
)

const outcomeOK = "ok"

// recordCall records one finished call. Refused calls never reach the
// network and are only counted.
func recordCall(model, method, outcome string, duration time.Duration) {
	erpCallsTotal.WithLabelValues(model, method, outcome).Inc()

	if duration > 0 {
		erpCallSeconds.WithLabelValues(model, method).Observe(duration.Seconds())
	}
}
