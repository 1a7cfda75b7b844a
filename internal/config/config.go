package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings.
type Config struct {
	App     AppConfig     `envPrefix:"STATUS_"`
	HTTP    HTTPConfig    `envPrefix:"STATUS_HTTP_"`
	Metrics MetricsConfig `envPrefix:"STATUS_METRICS_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"production"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"status-service"`
}

type HTTPConfig struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	Port               int           `env:"PORT" envDefault:"5000"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH" envDefault:"/metrics"`
}

// Addr returns the listen address in host:port form.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("STATUS_HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("STATUS_HTTP_SHUTDOWN_TIMEOUT must be positive")
	}

	if c.Metrics.Enabled {
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("STATUS_METRICS_PATH must start with /, got %q", c.Metrics.Path)
		}
		if c.Metrics.Path == "/" || strings.HasPrefix(c.Metrics.Path, "/api/") {
			return fmt.Errorf("STATUS_METRICS_PATH %q collides with application routes", c.Metrics.Path)
		}
	}

	return nil
}
