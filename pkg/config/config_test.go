package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.ChainID != 137 {
		t.Errorf("expected default chain id 137, got %d", cfg.ChainID)
	}
	if cfg.OrderType != "GTC" {
		t.Errorf("expected default order type GTC, got %s", cfg.OrderType)
	}
	if cfg.JournalMode != "console" {
		t.Errorf("expected default journal mode console, got %s", cfg.JournalMode)
	}
	if cfg.DefaultExpiry != time.Hour {
		t.Errorf("expected default expiry 1h, got %s", cfg.DefaultExpiry)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("RELAY_BASE_URL", "https://relay.example.com")
	t.Setenv("CHAIN_ID", "80002")
	t.Setenv("ORDER_TYPE", "FOK")
	t.Setenv("SESSION_CACHE_TTL", "30m")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.RelayBaseURL != "https://relay.example.com" {
		t.Errorf("expected relay override, got %s", cfg.RelayBaseURL)
	}
	if cfg.ChainID != 80002 {
		t.Errorf("expected chain id 80002, got %d", cfg.ChainID)
	}
	if cfg.OrderType != "FOK" {
		t.Errorf("expected order type FOK, got %s", cfg.OrderType)
	}
	if cfg.SessionCacheTTL != 30*time.Minute {
		t.Errorf("expected session TTL 30m, got %s", cfg.SessionCacheTTL)
	}
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CHAIN_ID", "not-a-number")
	t.Setenv("ORDER_DEFAULT_EXPIRY", "not-a-duration")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ChainID != 137 {
		t.Errorf("expected fallback chain id 137, got %d", cfg.ChainID)
	}
	if cfg.DefaultExpiry != time.Hour {
		t.Errorf("expected fallback expiry 1h, got %s", cfg.DefaultExpiry)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.HTTPPort = "" }},
		{"empty relay url", func(c *Config) { c.RelayBaseURL = "" }},
		{"empty market data url", func(c *Config) { c.MarketDataBaseURL = "" }},
		{"zero chain id", func(c *Config) { c.ChainID = 0 }},
		{"bad order type", func(c *Config) { c.OrderType = "IOC" }},
		{"bad journal mode", func(c *Config) { c.JournalMode = "redis" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			tc.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	if _, err := NewLogger("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
