package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New initialises a zap logger tuned for the provided environment.
func New(env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if IsDevelopment(env) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build()
}

// IsDevelopment reports whether env selects the console encoder.
func IsDevelopment(env string) bool {
	return env == "development" || env == "local"
}

// ZapError is a helper to avoid importing zap in every package.
func ZapError(err error) zap.Field {
	return zap.Error(err)
}
