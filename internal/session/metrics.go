package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DerivationsTotal tracks credential derivation attempts by result.
	DerivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clobcore_session_derivations_total",
			Help: "Total number of credential derivation attempts",
		},
		[]string{"result"},
	)

	// DerivationDurationSeconds tracks derivation round-trip latency.
	DerivationDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clobcore_session_derivation_duration_seconds",
		Help:    "Duration of successful credential derivations",
		Buckets: prometheus.DefBuckets,
	})
)
