package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// SQLiteGateway stores the board as one row of board_state
type SQLiteGateway struct {
	db  *sql.DB
	key string
}

// NewSQLiteGateway wraps an initialized database (see InitDB)
func NewSQLiteGateway(db *sql.DB, key string) *SQLiteGateway {
	return &SQLiteGateway{db: db, key: key}
}

// Load implements Gateway
func (g *SQLiteGateway) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var value string
	err := g.db.QueryRowContext(ctx, "SELECT value FROM board_state WHERE key = ?", g.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read board: %w", err)
	}

	snap, err := Decode([]byte(value))
	if err != nil {
		return nil, false, err
	}
	return snap, true, nil
}

// Save implements Gateway
func (g *SQLiteGateway) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	_, err = g.db.ExecContext(ctx, `
		INSERT INTO board_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, g.key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	slog.Debug("board saved", "backend", BackendSQLite, "key", g.key, "bytes", len(data))
	return nil
}

// Close implements Gateway
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
