package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoutingDurationSeconds tracks price routing latency.
	RoutingDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clobcore_pricing_routing_duration_seconds",
		Help:    "Duration of executable price computations",
		Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
	})

	// UnroutableQuotesTotal counts computations where no side was executable.
	UnroutableQuotesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clobcore_pricing_unroutable_quotes_total",
		Help: "Total number of computations with no executable price on either side",
	})
)
