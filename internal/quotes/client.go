package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// Client fetches top-of-book quotes for outcome tokens from the market-data
// API and shapes them into the MarketPrices the price router consumes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a market-data client.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type bookLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

type bookResponse struct {
	Bids []bookLevel `json:"bids"`
	Asks []bookLevel `json:"asks"`
}

// FetchMarketPrices fetches both outcome books of a binary market. The YES
// book is required; a missing or empty NO book leaves its fields nil, which
// the router then synthesizes from the YES side.
func (c *Client) FetchMarketPrices(ctx context.Context, yesTokenID, noTokenID string) (types.MarketPrices, error) {
	var mp types.MarketPrices

	yesBid, yesAsk, err := c.fetchTopOfBook(ctx, yesTokenID)
	if err != nil {
		BookFetchesTotal.WithLabelValues("error").Inc()
		return mp, fmt.Errorf("fetch YES book: %w", err)
	}
	mp.BestBidYes = yesBid
	mp.BestAskYes = yesAsk

	if noTokenID != "" {
		noBid, noAsk, err := c.fetchTopOfBook(ctx, noTokenID)
		if err != nil {
			// The NO side is recoverable: the router derives it from YES.
			c.logger.Warn("no-book-unavailable",
				zap.String("token-id", noTokenID),
				zap.Error(err))
		} else {
			mp.BestBidNo = noBid
			mp.BestAskNo = noAsk
		}
	}

	BookFetchesTotal.WithLabelValues("ok").Inc()
	return mp, nil
}

// fetchTopOfBook returns the best bid and ask for a token, nil when that side
// of the book is empty.
func (c *Client) fetchTopOfBook(ctx context.Context, tokenID string) (bid, ask *float64, err error) {
	u := fmt.Sprintf("%s/book?token_id=%s", c.baseURL, url.QueryEscape(tokenID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var book bookResponse
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return nil, nil, fmt.Errorf("decode book: %w", err)
	}

	return bestLevels(book)
}

// bestLevels scans the books rather than trusting level ordering.
func bestLevels(book bookResponse) (bid, ask *float64, err error) {
	for _, level := range book.Bids {
		price, err := strconv.ParseFloat(level.Price, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parse bid price %q: %w", level.Price, err)
		}
		if bid == nil || price > *bid {
			p := price
			bid = &p
		}
	}

	for _, level := range book.Asks {
		price, err := strconv.ParseFloat(level.Price, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parse ask price %q: %w", level.Price, err)
		}
		if ask == nil || price < *ask {
			p := price
			ask = &p
		}
	}

	return bid, ask, nil
}
