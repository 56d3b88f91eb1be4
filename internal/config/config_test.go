package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TARGET_URL", "BASE_URL", "USER_AGENT", "ACCEPT_LANGUAGE", "FETCH_TIMEOUT", "OUTPUT_DIR", "DATABASE_URL", "REDIS_URL", "CACHE_TTL", "METRICS_PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.BaseURL != "https://www.amazon.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.AcceptLanguage != "en-US,en;q=0.9" {
		t.Errorf("AcceptLanguage = %q", cfg.AcceptLanguage)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", cfg.FetchTimeout)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.UserAgent == "" {
		t.Error("UserAgent should have a default")
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Errorf("optional backends should stay disabled, got db=%q redis=%q", cfg.DatabaseURL, cfg.RedisURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://www.amazon.co.jp")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("CACHE_TTL", "bogus")
	t.Setenv("REDIS_URL", "localhost:6379")

	cfg := Load()
	if cfg.BaseURL != "https://www.amazon.co.jp" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v, want 3s", cfg.FetchTimeout)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("invalid CACHE_TTL should fall back to 1h, got %v", cfg.CacheTTL)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}
