package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/tablero/internal/models"
)

// RedisGateway stores the board as a single redis string
type RedisGateway struct {
	client *redis.Client
	key    string
}

// NewRedisGateway wraps an existing client
func NewRedisGateway(client *redis.Client, key string) *RedisGateway {
	return &RedisGateway{client: client, key: key}
}

// DialRedis connects to addr and verifies the connection
func DialRedis(ctx context.Context, addr, key string) (*RedisGateway, error) {
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewRedisGateway(client, key), nil
}

// Load implements Gateway
func (g *RedisGateway) Load(ctx context.Context) (models.Snapshot, bool, error) {
	data, err := g.client.Get(ctx, g.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read board: %w", err)
	}

	snap, err := Decode(data)
	if err != nil {
		return nil, false, err
	}
	return snap, true, nil
}

// Save implements Gateway
func (g *RedisGateway) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := g.client.Set(ctx, g.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	slog.Debug("board saved", "backend", BackendRedis, "key", g.key, "bytes", len(data))
	return nil
}

// Close implements Gateway
func (g *RedisGateway) Close() error {
	return g.client.Close()
}
