package orders

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// Submitter relays signed orders to the remote matching engine. It is a thin,
// fail-fast transport: balance, market-state and price checks are all
// relay-side, so nothing is validated locally before the POST.
type Submitter struct {
	relayBaseURL string
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewSubmitter creates a Submitter against the given relay base URL.
func NewSubmitter(relayBaseURL string, logger *zap.Logger) *Submitter {
	return &Submitter{
		relayBaseURL: strings.TrimRight(relayBaseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}

// SubmitParams couples a signed order with the session whose credentials
// authenticate it.
type SubmitParams struct {
	Session   *types.ClobSession
	OrderType types.OrderType
	Order     *types.SignedOrder
}

type submitRequest struct {
	Address     string             `json:"address"`
	OwnerAPIKey string             `json:"ownerApiKey"`
	OrderType   string             `json:"orderType"`
	Order       *types.SignedOrder `json:"order"`
}

// PostSignedOrder transmits the order and returns the relay's
// acknowledgement. Non-2xx responses surface as *types.SubmissionError with
// the relay's status and body preserved for diagnostics.
func (s *Submitter) PostSignedOrder(ctx context.Context, params SubmitParams) (*types.RelayAck, error) {
	start := time.Now()

	body, err := json.Marshal(submitRequest{
		Address:     params.Session.Address,
		OwnerAPIKey: params.Session.L2.Key,
		OrderType:   string(params.OrderType),
		Order:       params.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.relayBaseURL+orderPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		SubmissionsTotal.WithLabelValues("transport_error").Inc()
		return nil, &types.SubmissionError{Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.SubmissionError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		SubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, &types.SubmissionError{Status: resp.StatusCode, Body: string(raw)}
	}

	var ack types.RelayAck
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, &types.SubmissionError{Err: fmt.Errorf("parse acknowledgement: %w", err)}
	}

	SubmissionsTotal.WithLabelValues("ok").Inc()
	SubmissionDurationSeconds.Observe(time.Since(start).Seconds())

	s.logger.Info("order-submitted",
		zap.String("order-id", ack.OrderID),
		zap.String("status", ack.Status),
		zap.String("order-type", string(params.OrderType)))

	return &ack, nil
}
