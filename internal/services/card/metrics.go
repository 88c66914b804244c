package card

import (
	"sync/atomic"
	"time"
)

// Metrics tracks service activity using atomic operations
type Metrics struct {
	CardsCreated    atomic.Int64
	CardsUpdated    atomic.Int64
	CardsMoved      atomic.Int64
	CardsDeleted    atomic.Int64
	WipRejections   atomic.Int64
	Saves           atomic.Int64
	PersistFailures atomic.Int64
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	CardsCreated    int64         `json:"cards_created"`
	CardsUpdated    int64         `json:"cards_updated"`
	CardsMoved      int64         `json:"cards_moved"`
	CardsDeleted    int64         `json:"cards_deleted"`
	WipRejections   int64         `json:"wip_rejections"`
	Saves           int64         `json:"saves"`
	PersistFailures int64         `json:"persist_failures"`
	Uptime          time.Duration `json:"uptime"`
}

// Snapshot returns the current values
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		CardsCreated:    m.CardsCreated.Load(),
		CardsUpdated:    m.CardsUpdated.Load(),
		CardsMoved:      m.CardsMoved.Load(),
		CardsDeleted:    m.CardsDeleted.Load(),
		WipRejections:   m.WipRejections.Load(),
		Saves:           m.Saves.Load(),
		PersistFailures: m.PersistFailures.Load(),
		Uptime:          time.Since(m.StartTime),
	}
}
