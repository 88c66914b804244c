package events

import "log/slog"

// Publish sends event if a publisher is configured.
// Delivery failures are logged, never returned: a missed notification must
// not fail the board operation that produced it.
func Publish(pub EventPublisher, event Event) {
	if pub == nil {
		return
	}

	if err := pub.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"card_id", event.CardID,
			"error", err)
	}
}
