package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.HTTP.Host)
	}
	if cfg.HTTP.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.HTTP.Port)
	}
	if cfg.HTTP.Addr() != "0.0.0.0:5000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:5000", cfg.HTTP.Addr())
	}
	if cfg.HTTP.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.App.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.App.Environment)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 1 || cfg.HTTP.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", cfg.HTTP.CORSAllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STATUS_ENV", "development")
	t.Setenv("STATUS_HTTP_HOST", "127.0.0.1")
	t.Setenv("STATUS_HTTP_PORT", "8080")
	t.Setenv("STATUS_HTTP_WRITE_TIMEOUT", "30s")
	t.Setenv("STATUS_HTTP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STATUS_METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.App.Environment)
	}
	if cfg.HTTP.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", cfg.HTTP.Addr())
	}
	if cfg.HTTP.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want 30s", cfg.HTTP.WriteTimeout)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins = %v, want 2 entries", cfg.HTTP.CORSAllowedOrigins)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric port", "STATUS_HTTP_PORT", "http"},
		{"port out of range", "STATUS_HTTP_PORT", "70000"},
		{"zero port", "STATUS_HTTP_PORT", "0"},
		{"bad duration", "STATUS_HTTP_READ_TIMEOUT", "soon"},
		{"zero shutdown timeout", "STATUS_HTTP_SHUTDOWN_TIMEOUT", "0s"},
		{"relative metrics path", "STATUS_METRICS_PATH", "metrics"},
		{"metrics on root", "STATUS_METRICS_PATH", "/"},
		{"metrics under api", "STATUS_METRICS_PATH", "/api/v1/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q expected error", tt.key, tt.val)
			}
		})
	}
}

func TestHTTPConfigAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 5000, "0.0.0.0:5000"},
		{"", 5000, ":5000"},
		{"::1", 5000, "[::1]:5000"},
		{"::", 8080, "[::]:8080"},
	}
	for _, tt := range tests {
		cfg := HTTPConfig{Host: tt.host, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() for host %q = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestValidateSkipsMetricsPathWhenDisabled(t *testing.T) {
	cfg := &Config{
		HTTP:    HTTPConfig{Port: 5000, ShutdownTimeout: time.Second},
		Metrics: MetricsConfig{Enabled: false, Path: "/"},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
