package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/bengobox/status-service/internal/config"
	"github.com/bengobox/status-service/internal/logger"
	"github.com/bengobox/status-service/internal/probe"
	"go.uber.org/zap"
)

const probeTimeout = 3 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck // best effort

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	target := probe.LocalURL(cfg.HTTP.Host, cfg.HTTP.Port)
	if err := probe.Check(ctx, &http.Client{Timeout: probeTimeout}, target); err != nil {
		zapLogger.Error("health check failed", zap.String("target", target), logger.ZapError(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}
}
