package app

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/database"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	gateway     database.Gateway
	logger      *slog.Logger
	serviceOpts []cardservice.Option
}

func (c *appConfig) applyDefaults() {
	if c.logger == nil {
		c.logger = slog.Default()
	}
}

// WithGateway uses gw instead of opening the configured backend
func WithGateway(gw database.Gateway) Option {
	return func(cfg *appConfig) {
		cfg.gateway = gw
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithServiceOptions forwards options to the card service
func WithServiceOptions(opts ...cardservice.Option) Option {
	return func(cfg *appConfig) {
		cfg.serviceOpts = append(cfg.serviceOpts, opts...)
	}
}
