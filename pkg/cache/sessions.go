package cache

import (
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// SessionCache caches derived trading sessions by wallet address for the
// lifetime of a wallet connection, sparing a challenge re-sign on every
// trade. Sessions still travel explicitly through call sites; the cache only
// answers "have we already derived one for this wallet".
type SessionCache struct {
	cache  *ristretto.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// SessionCacheConfig holds cache configuration.
type SessionCacheConfig struct {
	MaxSessions int64         // upper bound on cached wallets
	TTL         time.Duration // server-side credential expiry, approximated client-side
	Logger      *zap.Logger
}

// NewSessionCache creates a ristretto-backed session cache.
func NewSessionCache(cfg *SessionCacheConfig) (*SessionCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.MaxSessions * 10,
		MaxCost:     cfg.MaxSessions,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &SessionCache{
		cache:  cache,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}, nil
}

// Get returns the cached session for a wallet address, if any.
func (c *SessionCache) Get(address string) (*types.ClobSession, bool) {
	value, found := c.cache.Get(strings.ToLower(address))
	if !found {
		SessionCacheMissesTotal.Inc()
		return nil, false
	}

	sess, ok := value.(*types.ClobSession)
	if !ok {
		return nil, false
	}

	SessionCacheHitsTotal.Inc()
	c.logger.Debug("session-cache-hit", zap.String("address", sess.Address))

	return sess, true
}

// Put stores a derived session under its wallet address.
func (c *SessionCache) Put(sess *types.ClobSession) {
	c.cache.SetWithTTL(strings.ToLower(sess.Address), sess, 1, c.ttl)
	// Sets are buffered; wait so the session is visible to the next Get.
	c.cache.Wait()

	c.logger.Debug("session-cached",
		zap.String("address", sess.Address),
		zap.Duration("ttl", c.ttl))
}

// Forget drops a wallet's session, forcing re-derivation on next use.
func (c *SessionCache) Forget(address string) {
	c.cache.Del(strings.ToLower(address))
}

// Close releases the cache.
func (c *SessionCache) Close() {
	c.cache.Close()
}
