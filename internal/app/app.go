package app

import (
	"context"
	"sync"

	"github.com/outcomelabs/clobcore/internal/quotes"
	"github.com/outcomelabs/clobcore/pkg/config"
	"github.com/outcomelabs/clobcore/pkg/healthprobe"
	"github.com/outcomelabs/clobcore/pkg/httpserver"
	"go.uber.org/zap"
)

// App is the main application orchestrator for the quote service.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server
	stream        *quotes.Stream
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// Options holds application options.
type Options struct {
	// TokenIDs to subscribe to on the market data stream. When empty the
	// stream is not started and quotes are served from REST fetches only.
	TokenIDs []string
}

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) *App {
	if opts == nil {
		opts = &Options{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	healthChecker := healthprobe.New()

	restClient := quotes.NewClient(cfg.MarketDataBaseURL, logger)

	var stream *quotes.Stream
	if len(opts.TokenIDs) > 0 {
		stream = setupStream(cfg, logger, opts.TokenIDs)
	}

	quoteService := NewQuoteService(stream, restClient, logger)

	httpServer := httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: healthChecker,
		QuoteSource:   quoteService,
	})

	return &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthChecker,
		httpServer:    httpServer,
		stream:        stream,
		ctx:           ctx,
		cancel:        cancel,
	}
}

func setupStream(cfg *config.Config, logger *zap.Logger, tokenIDs []string) *quotes.Stream {
	return quotes.NewStream(quotes.StreamConfig{
		URL:                   cfg.MarketDataWSURL,
		DialTimeout:           cfg.StreamDialTimeout,
		PingInterval:          cfg.StreamPingInterval,
		ReconnectInitialDelay: cfg.StreamReconnectInitialDelay,
		ReconnectMaxDelay:     cfg.StreamReconnectMaxDelay,
		Logger:                logger,
	}, tokenIDs)
}
