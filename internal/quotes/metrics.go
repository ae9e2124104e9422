package quotes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookFetchesTotal tracks REST book fetches by result.
	BookFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clobcore_quotes_book_fetches_total",
			Help: "Total number of REST book fetches",
		},
		[]string{"result"},
	)

	// StreamMessagesTotal counts applied stream updates.
	StreamMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clobcore_quotes_stream_messages_total",
		Help: "Total number of book messages applied from the stream",
	})

	// StreamReconnectsTotal counts reconnect attempts.
	StreamReconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clobcore_quotes_stream_reconnects_total",
		Help: "Total number of stream reconnect attempts",
	})
)
