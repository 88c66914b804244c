package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// DefaultKey is the slot the board is stored under
const DefaultKey = "kanbanBoardCards"

// Gateway persists the whole board under a single key.
// Implementations must round-trip a snapshot losslessly.
type Gateway interface {
	// Load returns the last saved snapshot; ok is false if nothing was ever saved
	Load(ctx context.Context) (snap models.Snapshot, ok bool, err error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, snap models.Snapshot) error

	// Close releases the underlying connection
	Close() error
}

// Supported backend names
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrUnknownBackend indicates an unsupported storage backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Options selects and configures a backend
type Options struct {
	Backend   string
	Path      string // sqlite file
	RedisAddr string
	Key       string
}

// Open builds the gateway for opts.Backend
func Open(ctx context.Context, opts Options) (Gateway, error) {
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}

	switch opts.Backend {
	case BackendSQLite, "":
		path := opts.Path
		if path == "" {
			p, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		db, err := InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteGateway(db, key), nil

	case BackendRedis:
		gw, err := DialRedis(ctx, opts.RedisAddr, key)
		if err != nil {
			return nil, err
		}
		return gw, nil

	case BackendMemory:
		return NewMemoryGateway(), nil

	default:
		return nil, fmt.Errorf("%q: %w", opts.Backend, ErrUnknownBackend)
	}
}
