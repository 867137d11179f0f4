package config

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	// Absence of DATABASE_URL is a valid, degraded configuration.
	t.Setenv("DATABASE_URL", "")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DB.URL != "" {
		t.Errorf("DB.URL = %q, want empty", cfg.DB.URL)
	}
	if cfg.DB.PoolMinSize != 1 {
		t.Errorf("PoolMinSize = %d, want 1", cfg.DB.PoolMinSize)
	}
	if cfg.DB.PoolMaxSize != 10 {
		t.Errorf("PoolMaxSize = %d, want 10", cfg.DB.PoolMaxSize)
	}
	if cfg.DB.CommandTimeout != 30*time.Second {
		t.Errorf("CommandTimeout = %s, want 30s", cfg.DB.CommandTimeout)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("HTTP.Port = %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.App.Name != "foreman" {
		t.Errorf("App.Name = %q, want foreman", cfg.App.Name)
	}
	if cfg.Swagger.Enabled {
		t.Error("Swagger.Enabled should default to false")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/service")
	t.Setenv("DB_POOL_MIN_SIZE", "5")
	t.Setenv("DB_POOL_MAX_SIZE", "15")
	t.Setenv("DB_COMMAND_TIMEOUT", "45s")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "2s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SWAGGER_ENABLED", "true")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DB.URL != "postgres://user:pass@db:5432/service" {
		t.Errorf("DB.URL = %q", cfg.DB.URL)
	}
	if cfg.DB.PoolMinSize != 5 || cfg.DB.PoolMaxSize != 15 {
		t.Errorf("pool sizes = %d/%d, want 5/15", cfg.DB.PoolMinSize, cfg.DB.PoolMaxSize)
	}
	if cfg.DB.CommandTimeout != 45*time.Second {
		t.Errorf("CommandTimeout = %s, want 45s", cfg.DB.CommandTimeout)
	}
	if cfg.DB.AcquireTimeout != 2*time.Second {
		t.Errorf("AcquireTimeout = %s, want 2s", cfg.DB.AcquireTimeout)
	}
	if cfg.HTTP.Port != "9000" {
		t.Errorf("HTTP.Port = %q, want 9000", cfg.HTTP.Port)
	}
	if !cfg.Swagger.Enabled {
		t.Error("Swagger.Enabled should be true")
	}
}

func TestNewRejectsMalformedValues(t *testing.T) {
	t.Setenv("DB_POOL_MAX_SIZE", "not-a-number")

	if _, err := New(); err == nil {
		t.Fatal("expected an error for a malformed integer")
	}
}
