package quotes

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// topOfBook is the per-token state the stream maintains. Only the best
// levels are kept; this core has no use for full depth.
type topOfBook struct {
	bid *float64
	ask *float64
}

// bookMessage is a top-of-book update from the market-data stream.
type bookMessage struct {
	EventType string      `json:"event_type"`
	AssetID   string      `json:"asset_id"`
	Bids      []bookLevel `json:"bids"`
	Asks      []bookLevel `json:"asks"`
}

// StreamConfig holds stream configuration.
type StreamConfig struct {
	URL                   string
	DialTimeout           time.Duration
	PingInterval          time.Duration
	ReconnectInitialDelay time.Duration
	ReconnectMaxDelay     time.Duration
	Logger                *zap.Logger
}

// Stream keeps MarketPrices fresh by applying top-of-book updates from the
// market-data WebSocket. Market data remains an external collaborator: the
// stream shapes what it receives, it does not simulate a book.
type Stream struct {
	config    StreamConfig
	logger    *zap.Logger
	conn      *websocket.Conn
	mu        sync.RWMutex
	books     map[string]topOfBook
	tokenIDs  []string
	connected atomic.Bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewStream creates a stream subscribed to the given outcome token IDs.
func NewStream(cfg StreamConfig, tokenIDs []string) *Stream {
	return &Stream{
		config:   cfg,
		logger:   cfg.Logger,
		books:    make(map[string]topOfBook),
		tokenIDs: tokenIDs,
	}
}

// Start connects and begins applying updates. It returns after the first
// successful connection; reconnects happen in the background with
// exponential backoff.
func (s *Stream) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	if err := s.connect(ctx); err != nil {
		return fmt.Errorf("initial connection: %w", err)
	}

	s.wg.Add(1)
	go s.readLoop(ctx)

	if s.config.PingInterval > 0 {
		s.wg.Add(1)
		go s.pingLoop(ctx)
	}

	return nil
}

// pingLoop sends periodic PING frames to keep the connection alive.
func (s *Stream) pingLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.connected.Load() {
				continue
			}

			s.mu.RLock()
			conn := s.conn
			s.mu.RUnlock()

			if conn == nil {
				continue
			}

			err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(time.Second))
			if err != nil {
				s.logger.Warn("quote-stream-ping-error", zap.Error(err))
			}
		}
	}
}

func (s *Stream) connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: s.config.DialTimeout}

	conn, _, err := dialer.DialContext(ctx, s.config.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}

	sub := map[string]interface{}{
		"type":       "subscribe",
		"assets_ids": s.tokenIDs,
	}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		return fmt.Errorf("subscribe: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.connected.Store(true)

	s.logger.Info("quote-stream-connected",
		zap.String("url", s.config.URL),
		zap.Int("tokens", len(s.tokenIDs)))

	return nil
}

func (s *Stream) readLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		s.mu.RLock()
		conn := s.conn
		s.mu.RUnlock()

		_, raw, err := conn.ReadMessage()
		if err != nil {
			s.connected.Store(false)

			select {
			case <-ctx.Done():
				return
			default:
			}

			s.logger.Warn("quote-stream-read-failed", zap.Error(err))
			if !s.reconnect(ctx) {
				return
			}
			continue
		}

		var msg bookMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.logger.Debug("quote-stream-unparseable-message", zap.Error(err))
			continue
		}

		s.apply(&msg)
		StreamMessagesTotal.Inc()
	}
}

// reconnect retries with exponential backoff until it succeeds or the
// context is cancelled. Returns false on cancellation.
func (s *Stream) reconnect(ctx context.Context) bool {
	delay := s.config.ReconnectInitialDelay

	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}

		StreamReconnectsTotal.Inc()

		if err := s.connect(ctx); err != nil {
			s.logger.Warn("quote-stream-reconnect-failed",
				zap.Error(err),
				zap.Duration("next-delay", delay))

			delay *= 2
			if delay > s.config.ReconnectMaxDelay {
				delay = s.config.ReconnectMaxDelay
			}
			continue
		}

		return true
	}
}

// apply folds a book update into the per-token top-of-book state.
func (s *Stream) apply(msg *bookMessage) {
	if msg.EventType != "book" || msg.AssetID == "" {
		return
	}

	book := topOfBook{}
	for _, level := range msg.Bids {
		price, err := strconv.ParseFloat(level.Price, 64)
		if err != nil {
			continue
		}
		if book.bid == nil || price > *book.bid {
			p := price
			book.bid = &p
		}
	}
	for _, level := range msg.Asks {
		price, err := strconv.ParseFloat(level.Price, 64)
		if err != nil {
			continue
		}
		if book.ask == nil || price < *book.ask {
			p := price
			book.ask = &p
		}
	}

	s.mu.Lock()
	s.books[msg.AssetID] = book
	s.mu.Unlock()
}

// Snapshot assembles MarketPrices for a YES/NO token pair from the streamed
// state. ok is false when neither book has been seen yet.
func (s *Stream) Snapshot(yesTokenID, noTokenID string) (types.MarketPrices, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var mp types.MarketPrices

	yes, haveYes := s.books[yesTokenID]
	if haveYes {
		mp.BestBidYes = yes.bid
		mp.BestAskYes = yes.ask
	}

	no, haveNo := s.books[noTokenID]
	if haveNo {
		mp.BestBidNo = no.bid
		mp.BestAskNo = no.ask
	}

	return mp, haveYes || haveNo
}

// Connected reports whether the stream currently holds a live connection.
func (s *Stream) Connected() bool {
	return s.connected.Load()
}

// Close tears down the stream and waits for the read loop to exit.
func (s *Stream) Close() error {
	if s.cancel != nil {
		s.cancel()
	}

	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("quote-stream-closed")
	return nil
}
