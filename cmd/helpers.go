package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/outcomelabs/clobcore/internal/session"
	"github.com/outcomelabs/clobcore/pkg/cache"
	"github.com/outcomelabs/clobcore/pkg/config"
	"github.com/outcomelabs/clobcore/pkg/signer"
	"github.com/outcomelabs/clobcore/pkg/types"
	"go.uber.org/zap"
)

// loadEnv loads a local .env file if one exists.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found\n")
	}
}

// bootstrap loads config plus logger for a command run.
func bootstrap() (*config.Config, *zap.Logger, error) {
	loadEnv()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	return cfg, logger, nil
}

// walletFromConfig builds the signing wallet from the configured private key.
func walletFromConfig(cfg *config.Config) (*signer.PrivateKeySigner, error) {
	key := strings.TrimSpace(cfg.PrivateKey)
	if key == "" {
		return nil, fmt.Errorf("missing WALLET_PRIVATE_KEY in environment")
	}

	wallet, err := signer.NewPrivateKeySigner(key)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return wallet, nil
}

// sessionFor returns a cached session for the wallet or derives a fresh one.
func sessionFor(
	ctx context.Context,
	sessions *cache.SessionCache,
	deriver *session.Deriver,
	wallet signer.TypedDataSigner,
) (*types.ClobSession, error) {
	address := wallet.Address().Hex()

	if sess, ok := sessions.Get(address); ok {
		return sess, nil
	}

	sess, err := deriver.Derive(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("derive session: %w", err)
	}

	sessions.Put(sess)

	return sess, nil
}

func newSessionCache(cfg *config.Config, logger *zap.Logger) (*cache.SessionCache, error) {
	return cache.NewSessionCache(&cache.SessionCacheConfig{
		MaxSessions: 16,
		TTL:         cfg.SessionCacheTTL,
		Logger:      logger,
	})
}

func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
