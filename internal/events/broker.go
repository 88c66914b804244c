package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// listenerBuffer is how many undelivered events a listener may lag behind
const listenerBuffer = 64

// Broker fans events out to in-process listeners.
// A slow listener loses events instead of stalling the publisher.
type Broker struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	closed    bool
	done      chan struct{}
	seq       atomic.Int64
	dropped   atomic.Int64
}

// NewBroker creates an open broker with no listeners
func NewBroker() *Broker {
	return &Broker{
		listeners: make(map[int]chan Event),
		done:      make(chan struct{}),
	}
}

// SendEvent implements EventPublisher
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	event.SequenceID = b.seq.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
			slog.Debug("event dropped for slow listener",
				"listener", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	return nil
}

// Listen implements EventPublisher
func (b *Broker) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, listenerBuffer)
	b.listeners[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return ch, nil
}

// Dropped returns how many deliveries were skipped because a listener was full
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Close implements EventPublisher
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
	}
	return nil
}

func (b *Broker) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
