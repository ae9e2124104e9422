package orders

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersBuiltTotal tracks order build attempts by result.
	OrdersBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clobcore_orders_built_total",
			Help: "Total number of order build attempts",
		},
		[]string{"result"},
	)

	// SubmissionsTotal tracks order submissions by result.
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clobcore_orders_submissions_total",
			Help: "Total number of order submissions",
		},
		[]string{"result"},
	)

	// SubmissionDurationSeconds tracks relay round-trip latency.
	SubmissionDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clobcore_orders_submission_duration_seconds",
		Help:    "Duration of successful order submissions",
		Buckets: prometheus.DefBuckets,
	})
)
