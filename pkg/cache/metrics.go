package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionCacheHitsTotal counts session cache hits.
	SessionCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clobcore_session_cache_hits_total",
		Help: "Total number of session cache hits",
	})

	// SessionCacheMissesTotal counts session cache misses.
	SessionCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clobcore_session_cache_misses_total",
		Help: "Total number of session cache misses",
	})
)
