package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Persistence gateway selected by the storage section
	gateway database.Gateway

	// Event system for live updates
	Events *events.Broker

	// Service layer (business logic)
	CardService cardservice.Service

	cfg appConfig
}

// New opens the configured gateway, hydrates the board and returns the
// application container. The caller must Close it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := appConfig{}
	for _, opt := range opts {
		opt(&ac)
	}
	ac.applyDefaults()

	gw := ac.gateway
	if gw == nil {
		var err error
		gw, err = database.Open(ctx, cfg.GatewayOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	broker := events.NewBroker()

	svcOpts := append([]cardservice.Option{
		cardservice.WithEventPublisher(broker),
		cardservice.WithLogger(ac.logger),
	}, ac.serviceOpts...)

	svc, err := cardservice.NewService(ctx, gw, cfg.Lists(), svcOpts...)
	if err != nil {
		_ = broker.Close()
		_ = gw.Close()
		return nil, err
	}

	ac.logger.Debug("application started",
		"backend", cfg.Storage.Backend,
		"lists", len(cfg.Board.Lists))

	return &App{
		Config:      cfg,
		gateway:     gw,
		Events:      broker,
		CardService: svc,
		cfg:         ac,
	}, nil
}

// Close logs the session counters and releases the broker and the gateway
func (a *App) Close() error {
	m := a.CardService.Metrics()
	a.cfg.logger.Info("session finished",
		"cards_created", m.CardsCreated,
		"cards_updated", m.CardsUpdated,
		"cards_moved", m.CardsMoved,
		"cards_deleted", m.CardsDeleted,
		"wip_rejections", m.WipRejections,
		"saves", m.Saves,
		"persist_failures", m.PersistFailures,
		"dropped_events", a.Events.Dropped(),
		"uptime", m.Uptime)

	return errors.Join(a.Events.Close(), a.gateway.Close())
}
