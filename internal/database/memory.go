package database

import (
	"context"
	"sync"

	"github.com/thenoetrevino/tablero/internal/models"
)

// MemoryGateway keeps the encoded board in process memory.
// It encodes on Save so it exercises the same codec as the durable backends.
type MemoryGateway struct {
	mu   sync.Mutex
	data []byte

	// FailSave, when set, is returned by every Save; used to simulate a full medium
	FailSave error
	saves    int
}

// NewMemoryGateway returns an empty gateway
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Load implements Gateway
func (g *MemoryGateway) Load(_ context.Context) (models.Snapshot, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.data == nil {
		return nil, false, nil
	}
	snap, err := Decode(g.data)
	if err != nil {
		return nil, false, err
	}
	return snap, true, nil
}

// Save implements Gateway
func (g *MemoryGateway) Save(_ context.Context, snap models.Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailSave != nil {
		return g.FailSave
	}
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	g.data = data
	g.saves++
	return nil
}

// Saves returns how many successful saves happened
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

// Close implements Gateway
func (g *MemoryGateway) Close() error {
	return nil
}
