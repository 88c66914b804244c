package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
)

// WaitForEvent waits for the next event on ch
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("no event received within %v", timeout)
		return events.Event{}
	}
}

// WaitForNoEvent fails if an event arrives within timeout
func WaitForNoEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %s for %s", ev.Type, ev.CardID)
	case <-time.After(timeout):
	}
}

// DrainEvents returns every event already buffered on ch
func DrainEvents(ch <-chan events.Event) []events.Event {
	var out []events.Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}
