package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
	}
	if cfg.StorageType != "local" {
		t.Errorf("StorageType = %q, want local", cfg.StorageType)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("AUTH_RATE_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9100" {
		t.Errorf("Port = %q, want 9100", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v, want 30m", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit != 5 {
		t.Errorf("AuthRateLimit = %d, want 5", cfg.AuthRateLimit)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("AUTH_RATE_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want the 1h default", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit != 30 {
		t.Errorf("AuthRateLimit = %d, want the default 30", cfg.AuthRateLimit)
	}
}
