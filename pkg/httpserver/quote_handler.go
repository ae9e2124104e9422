package httpserver

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// QuoteSource computes executable prices for a YES/NO outcome token pair.
// Prices are recomputed on every request, never cached here.
type QuoteSource interface {
	Quote(ctx context.Context, yesTokenID, noTokenID string) (types.ExecutablePrices, error)
}

// QuoteHandler serves GET /api/quote.
type QuoteHandler struct {
	source QuoteSource
	logger *zap.Logger
}

// NewQuoteHandler creates the handler.
func NewQuoteHandler(source QuoteSource, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{source: source, logger: logger}
}

type quoteResponse struct {
	YesTokenID string                 `json:"yesTokenId"`
	NoTokenID  string                 `json:"noTokenId,omitempty"`
	Prices     types.ExecutablePrices `json:"prices"`
}

// HandleQuote answers GET /api/quote?yes=<tokenId>&no=<tokenId>.
func (h *QuoteHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	yesTokenID := r.URL.Query().Get("yes")
	noTokenID := r.URL.Query().Get("no")

	if yesTokenID == "" {
		http.Error(w, "missing required query parameter: yes", http.StatusBadRequest)
		return
	}

	prices, err := h.source.Quote(r.Context(), yesTokenID, noTokenID)
	if err != nil {
		h.logger.Error("quote-failed",
			zap.String("yes-token-id", yesTokenID),
			zap.Error(err))
		http.Error(w, "quote unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(quoteResponse{
		YesTokenID: yesTokenID,
		NoTokenID:  noTokenID,
		Prices:     prices,
	}); err != nil {
		h.logger.Error("quote-encode-failed", zap.Error(err))
	}
}
