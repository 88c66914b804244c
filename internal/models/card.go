package models

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Card represents a single task on the board.
// JSON tags define the persisted layout and must stay stable.
type Card struct {
	ID          types.CardID `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Assigned    string       `json:"assigned"`
	Priority    string       `json:"priority"`
	Comments    []Comment    `json:"comments"`
}

// Comment is one entry of a card's append-only history
type Comment struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"comment"`
}

// CardFields holds the user-editable subset of a card
type CardFields struct {
	Title       string
	Description string
	Assigned    string
	Priority    string
}

// Fields returns the editable fields of the card
func (c Card) Fields() CardFields {
	return CardFields{
		Title:       c.Title,
		Description: c.Description,
		Assigned:    c.Assigned,
		Priority:    c.Priority,
	}
}

// Apply overwrites the card's editable fields
func (c *Card) Apply(f CardFields) {
	c.Title = f.Title
	c.Description = f.Description
	c.Assigned = f.Assigned
	c.Priority = f.Priority
}

// Clone returns a deep copy so callers can never alias the comment log
func (c Card) Clone() Card {
	out := c
	out.Comments = make([]Comment, len(c.Comments))
	copy(out.Comments, c.Comments)
	return out
}

// Normalize trims the title and returns a copy ready for validation
func (f CardFields) Normalize() CardFields {
	f.Title = strings.TrimSpace(f.Title)
	return f
}

// Validate checks the required fields
func (f CardFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return NewValidationError("title", "cannot be empty")
	}
	return nil
}

// MaxTitleLength caps what the board prompt accepts, in characters.
// Stored titles have no upper bound.
const MaxTitleLength = 255

// Well-known priority labels. Priority is a free label, these are only
// the values the sample board and the pickers offer.
const (
	PriorityLow      = "Baja"
	PriorityMedium   = "Media"
	PriorityHigh     = "Alta"
	PriorityCritical = "Crítica"
)

// KnownPriorities lists the suggested priority labels from lowest to highest
var KnownPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
