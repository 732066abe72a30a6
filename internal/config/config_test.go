package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Fatalf("backend url = %q", cfg.BackendURL)
	}
	if cfg.APIPort != 8000 {
		t.Fatalf("api port = %d", cfg.APIPort)
	}
	if !cfg.RateLimitEnabled {
		t.Fatalf("rate limiting should default on")
	}
	if cfg.RateLimitWindow != 60*time.Second {
		t.Fatalf("rate limit window = %v", cfg.RateLimitWindow)
	}
	if cfg.IsProduction() {
		t.Fatalf("default environment must not be production")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_API_URL", "http://backend:9000/api/")
	t.Setenv("API_PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://dash.example.com, https://admin.example.com")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://backend:9000/api" {
		t.Fatalf("trailing slash must be trimmed: %q", cfg.BackendURL)
	}
	if cfg.APIPort != 8081 {
		t.Fatalf("api port = %d", cfg.APIPort)
	}
	if !cfg.IsProduction() {
		t.Fatalf("environment not picked up")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://admin.example.com" {
		t.Fatalf("cors origins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.RateLimitEnabled {
		t.Fatalf("rate limiting should be disabled")
	}
}
