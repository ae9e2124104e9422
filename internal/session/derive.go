package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/signer"
	"github.com/outcomelabs/clobcore/pkg/types"
)

const (
	authDomainName    = "ClobAuthDomain"
	authDomainVersion = "1"
	authChainID       = 137
	attestation       = "This message attests that I control the given wallet"
	derivePath        = "/pm-derive"
)

// Deriver exchanges a wallet-signed challenge for short-lived L2 trading
// credentials. It performs a single round-trip per call: no retry, and no
// persistence of the returned credentials (that is the caller's concern).
type Deriver struct {
	relayBaseURL string
	httpClient   *http.Client
	logger       *zap.Logger
}

// New creates a Deriver against the given relay base URL.
func New(relayBaseURL string, logger *zap.Logger) *Deriver {
	return &Deriver{
		relayBaseURL: strings.TrimRight(relayBaseURL, "/"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

type deriveRequest struct {
	Address   string `json:"address"`
	Timestamp string `json:"timestamp"`
	Nonce     int64  `json:"nonce"`
	Signature string `json:"signature"`
}

// challengeTypedData builds the fixed ClobAuth challenge the relay verifies.
func challengeTypedData(address string, timestamp int64, nonce int64) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"ClobAuth": []apitypes.Type{
				{Name: "address", Type: "address"},
				{Name: "timestamp", Type: "string"},
				{Name: "nonce", Type: "uint256"},
				{Name: "message", Type: "string"},
			},
		},
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    authDomainName,
			Version: authDomainVersion,
			ChainId: math.NewHexOrDecimal256(authChainID),
		},
		Message: apitypes.TypedDataMessage{
			"address":   address,
			"timestamp": fmt.Sprintf("%d", timestamp),
			"nonce":     fmt.Sprintf("%d", nonce),
			"message":   attestation,
		},
	}
}

// Derive turns the wallet's signing capability into a ClobSession. The wallet
// signs the fixed attestation challenge and the relay answers with an API
// key/passphrase pair bound to the address.
func (d *Deriver) Derive(ctx context.Context, wallet signer.TypedDataSigner) (*types.ClobSession, error) {
	start := time.Now()

	// Lower-cased address is the canonical form the relay compares against.
	address := strings.ToLower(wallet.Address().Hex())
	timestamp := time.Now().Unix()

	challenge := challengeTypedData(address, timestamp, 0)

	sig, err := wallet.SignTypedData(challenge)
	if err != nil {
		DerivationsTotal.WithLabelValues("signing_error").Inc()
		return nil, &types.SigningError{Op: "session challenge", Err: err}
	}

	body, err := json.Marshal(deriveRequest{
		Address:   address,
		Timestamp: fmt.Sprintf("%d", timestamp),
		Nonce:     0,
		Signature: hexutil.Encode(sig),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal derive request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.relayBaseURL+derivePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		DerivationsTotal.WithLabelValues("transport_error").Inc()
		return nil, &types.SessionError{Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.SessionError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		DerivationsTotal.WithLabelValues("rejected").Inc()
		return nil, &types.SessionError{Status: resp.StatusCode, Body: string(raw)}
	}

	var creds types.L2Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, &types.SessionError{Err: fmt.Errorf("parse credentials: %w", err)}
	}

	DerivationsTotal.WithLabelValues("ok").Inc()
	DerivationDurationSeconds.Observe(time.Since(start).Seconds())

	d.logger.Info("session-derived", zap.String("address", address))

	return &types.ClobSession{Address: address, L2: creds}, nil
}
