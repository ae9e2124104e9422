package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Relay (credential derivation + order intake)
	RelayBaseURL string

	// Market data
	MarketDataBaseURL string
	MarketDataWSURL   string

	// Chain
	ChainID int64

	// Wallet (CLI only; library callers inject their own signing capability)
	PrivateKey string

	// Trading
	OrderType     string // GTC, FOK or GTD
	DefaultExpiry time.Duration

	// Sessions
	SessionCacheTTL time.Duration

	// Stream
	StreamDialTimeout           time.Duration
	StreamPingInterval          time.Duration
	StreamReconnectInitialDelay time.Duration
	StreamReconnectMaxDelay     time.Duration

	// Journal
	JournalMode  string // "console" or "postgres"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		RelayBaseURL:      getEnvOrDefault("RELAY_BASE_URL", "https://clob.polymarket.com"),
		MarketDataBaseURL: getEnvOrDefault("MARKET_DATA_BASE_URL", "https://clob.polymarket.com"),
		MarketDataWSURL:   getEnvOrDefault("MARKET_DATA_WS_URL", "wss://ws-subscriptions-clob.polymarket.com/ws/market"),

		ChainID: getInt64OrDefault("CHAIN_ID", 137),

		PrivateKey: os.Getenv("WALLET_PRIVATE_KEY"),

		OrderType:     getEnvOrDefault("ORDER_TYPE", "GTC"),
		DefaultExpiry: getDurationOrDefault("ORDER_DEFAULT_EXPIRY", time.Hour),

		SessionCacheTTL: getDurationOrDefault("SESSION_CACHE_TTL", 12*time.Hour),

		StreamDialTimeout:           getDurationOrDefault("STREAM_DIAL_TIMEOUT", 10*time.Second),
		StreamPingInterval:          getDurationOrDefault("STREAM_PING_INTERVAL", 10*time.Second),
		StreamReconnectInitialDelay: getDurationOrDefault("STREAM_RECONNECT_INITIAL_DELAY", time.Second),
		StreamReconnectMaxDelay:     getDurationOrDefault("STREAM_RECONNECT_MAX_DELAY", 30*time.Second),

		JournalMode:  getEnvOrDefault("JOURNAL_MODE", "console"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "clobcore"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", ""),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "clobcore"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.RelayBaseURL == "" {
		return fmt.Errorf("RELAY_BASE_URL cannot be empty")
	}

	if c.MarketDataBaseURL == "" {
		return fmt.Errorf("MARKET_DATA_BASE_URL cannot be empty")
	}

	if c.ChainID <= 0 {
		return fmt.Errorf("CHAIN_ID must be positive, got %d", c.ChainID)
	}

	switch c.OrderType {
	case "GTC", "FOK", "GTD":
	default:
		return fmt.Errorf("ORDER_TYPE must be GTC, FOK or GTD, got %q", c.OrderType)
	}

	if c.JournalMode != "console" && c.JournalMode != "postgres" {
		return fmt.Errorf("JOURNAL_MODE must be 'console' or 'postgres', got %q", c.JournalMode)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
