package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bengobox/status-service/internal/app"
	"github.com/bengobox/status-service/internal/config"
	"github.com/bengobox/status-service/internal/logger"
	"go.uber.org/zap"
)

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

	application := app.New(cfg, zapLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLogger.Fatal("server encountered error", logger.ZapError(err))
		}
		return
	case sig := <-sigCh:
		zapLogger.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", logger.ZapError(err))
	}
}
