package card

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Option is a functional option for configuring the service
type Option func(*serviceConfig)

type serviceConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
	newID       func() types.CardID
}

func defaultConfig() serviceConfig {
	return serviceConfig{
		logger: slog.Default(),
		now:    time.Now,
		newID:  NewCardID,
	}
}

// NewCardID returns a fresh "card-<uuid>" identifier
func NewCardID() types.CardID {
	return types.CardID("card-" + uuid.NewString())
}

// WithEventPublisher sets where change notifications go
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *serviceConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock overrides the time source used for comment timestamps
func WithClock(now func() time.Time) Option {
	return func(cfg *serviceConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithIDGenerator overrides how new card ids are minted
func WithIDGenerator(gen func() types.CardID) Option {
	return func(cfg *serviceConfig) {
		if gen != nil {
			cfg.newID = gen
		}
	}
}
