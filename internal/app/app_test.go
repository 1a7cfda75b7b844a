package app

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/bengobox/status-service/internal/config"
	"go.uber.org/zap"
)

func testConfig(port int) *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "test", ServiceName: "status-service"},
		HTTP: config.HTTPConfig{
			Host:              "127.0.0.1",
			Port:              port,
			ReadTimeout:       time.Second,
			ReadHeaderTimeout: time.Second,
			WriteTimeout:      time.Second,
			IdleTimeout:       time.Second,
			ShutdownTimeout:   time.Second,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestServeAndShutdown(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := New(testConfig(0), zap.NewNop(), WithClock(func() time.Time { return at }))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- a.Serve(ln) }()

	baseURL := "http://" + ln.Addr().String()

	resp, err := http.Get(baseURL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "API is running!" {
		t.Errorf("GET / = %d %q", resp.StatusCode, body)
	}

	resp, err = http.Get(baseURL + "/api/v1/status")
	if err != nil {
		t.Fatalf("GET /api/v1/status: %v", err)
	}
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	resp.Body.Close()
	if payload["timestamp"] != "2024-01-01T00:00:00" {
		t.Errorf("timestamp = %q, want 2024-01-01T00:00:00", payload["timestamp"])
	}

	resp, err = http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /metrics = %d, want 200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig(0)
	cfg.Metrics.Enabled = false
	a := New(cfg, zap.NewNop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = a.Serve(ln) }()
	defer a.Shutdown(context.Background()) //nolint:errcheck

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /metrics = %d, want 404", resp.StatusCode)
	}
}

func TestRunPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	a := New(testConfig(port), zap.NewNop())

	if err := a.Run(); err == nil {
		t.Fatal("expected Run to fail on an occupied port")
	}
}
