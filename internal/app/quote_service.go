package app

import (
	"context"

	"github.com/outcomelabs/clobcore/internal/pricing"
	"github.com/outcomelabs/clobcore/pkg/types"
	"go.uber.org/zap"
)

// snapshotSource serves top-of-book prices from an in-memory stream state.
type snapshotSource interface {
	Snapshot(yesTokenID, noTokenID string) (types.MarketPrices, bool)
}

// priceFetcher fetches top-of-book prices over REST.
type priceFetcher interface {
	FetchMarketPrices(ctx context.Context, yesTokenID, noTokenID string) (types.MarketPrices, error)
}

// QuoteService resolves executable prices for a YES/NO token pair. It
// prefers the live stream snapshot and falls back to a REST fetch when the
// stream has no book for the pair yet.
type QuoteService struct {
	stream snapshotSource
	client priceFetcher
	logger *zap.Logger
}

// NewQuoteService creates a quote service. The stream may be nil, in which
// case every quote is served from the REST client.
func NewQuoteService(stream snapshotSource, client priceFetcher, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		stream: stream,
		client: client,
		logger: logger,
	}
}

// Quote returns the executable prices and odds for both directions of a
// binary market.
func (q *QuoteService) Quote(ctx context.Context, yesTokenID, noTokenID string) (types.ExecutablePrices, error) {
	mp, err := q.marketPrices(ctx, yesTokenID, noTokenID)
	if err != nil {
		return types.ExecutablePrices{}, err
	}

	return pricing.ComputeExecutablePrices(mp), nil
}

func (q *QuoteService) marketPrices(ctx context.Context, yesTokenID, noTokenID string) (types.MarketPrices, error) {
	if q.stream != nil {
		mp, ok := q.stream.Snapshot(yesTokenID, noTokenID)
		if ok {
			return mp, nil
		}

		q.logger.Debug("stream-snapshot-miss",
			zap.String("yes-token", yesTokenID),
			zap.String("no-token", noTokenID))
	}

	return q.client.FetchMarketPrices(ctx, yesTokenID, noTokenID)
}
