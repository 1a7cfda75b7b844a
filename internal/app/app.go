package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bengobox/status-service/internal/config"
	"github.com/bengobox/status-service/internal/httpapi"
	"github.com/bengobox/status-service/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/status-service/internal/httpapi/middleware"
	"github.com/bengobox/status-service/internal/status"
	"go.uber.org/zap"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// Option customises App construction.
type Option func(*options)

type options struct {
	clock status.Clock
}

// WithClock overrides the clock used for status timestamps.
func WithClock(clock status.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *App {
	o := options{clock: status.SystemClock}
	for _, opt := range opts {
		opt(&o)
	}

	deps := httpapi.RouterDeps{
		Logger:             logger,
		Routes:             httpapi.Routes(handlers.NewStatusHandler(o.clock)),
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		HandlerTimeout:     cfg.HTTP.WriteTimeout,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = httpmiddleware.NewMetrics()
		deps.MetricsPath = cfg.Metrics.Path
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           httpapi.NewRouter(deps),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger),
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run binds the configured address and serves until Shutdown. A graceful
// shutdown is not reported as an error.
func (a *App) Run() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err)
	}
	return a.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (a *App) Serve(ln net.Listener) error {
	a.logger.Info("starting HTTP server",
		zap.String("service", a.cfg.App.ServiceName),
		zap.String("addr", ln.Addr().String()),
	)
	if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	a.logger.Info("HTTP server stopped")
	return nil
}
