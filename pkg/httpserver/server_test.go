package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/healthprobe"
	"github.com/outcomelabs/clobcore/pkg/types"
)

type stubQuoteSource struct {
	prices types.ExecutablePrices
	err    error
}

func (s *stubQuoteSource) Quote(ctx context.Context, yesTokenID, noTokenID string) (types.ExecutablePrices, error) {
	return s.prices, s.err
}

func TestHandleQuote(t *testing.T) {
	odds := 1 / 0.35
	source := &stubQuoteSource{
		prices: types.ExecutablePrices{
			PriceFor:     0.35,
			PriceAgainst: 0.67,
			OddsFor:      &odds,
		},
	}

	logger, _ := zap.NewDevelopment()
	handler := NewQuoteHandler(source, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/quote?yes=token-a&no=token-b", nil)
	rec := httptest.NewRecorder()

	handler.HandleQuote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if resp.YesTokenID != "token-a" || resp.NoTokenID != "token-b" {
		t.Errorf("unexpected token ids in response: %+v", resp)
	}
	if resp.Prices.PriceFor != 0.35 || resp.Prices.PriceAgainst != 0.67 {
		t.Errorf("unexpected prices: %+v", resp.Prices)
	}
	if resp.Prices.OddsFor == nil {
		t.Error("expected oddsFor in response")
	}
	if resp.Prices.OddsAgainst != nil {
		t.Error("expected absent oddsAgainst to stay absent in JSON")
	}
}

func TestHandleQuote_MissingYesParam(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	handler := NewQuoteHandler(&stubQuoteSource{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	rec := httptest.NewRecorder()

	handler.HandleQuote(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQuote_SourceError(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	handler := NewQuoteHandler(&stubQuoteSource{err: errors.New("book unavailable")}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/quote?yes=token-a", nil)
	rec := httptest.NewRecorder()

	handler.HandleQuote(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}

func TestServerRoutes(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	health := healthprobe.New()
	health.SetReady(true)

	srv := New(&Config{
		Port:          "0",
		Logger:        logger,
		HealthChecker: health,
		QuoteSource:   &stubQuoteSource{},
	})

	ts := httptest.NewServer(srv.server.Handler)
	defer ts.Close()

	for _, path := range []string{"/health", "/ready", "/metrics", "/api/quote?yes=token-a"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}
