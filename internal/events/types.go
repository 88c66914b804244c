package events

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCardCreated   EventType = "card_created"
	EventCardUpdated   EventType = "card_updated"
	EventCardMoved     EventType = "card_moved"
	EventCardDeleted   EventType = "card_deleted"
	EventBoardReset    EventType = "board_reset"
	EventPersistFailed EventType = "persist_failed"
)

// Event is a board change notification
type Event struct {
	Type       EventType
	CardID     types.CardID
	FromList   types.ListID // set for moves and deletes
	ToList     types.ListID // set for creates and moves
	Err        string       // set for persist_failed
	Timestamp  time.Time
	SequenceID int64 // monotonically increasing per broker
}
