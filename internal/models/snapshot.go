package models

import "github.com/thenoetrevino/tablero/internal/types"

// Snapshot is a detached copy of every list's card sequence.
// It is the unit of persistence and the read model handed to presentation.
type Snapshot map[types.ListID][]Card

// Clone deep-copies the snapshot
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for listID, cards := range s {
		copied := make([]Card, len(cards))
		for i, c := range cards {
			copied[i] = c.Clone()
		}
		out[listID] = copied
	}
	return out
}

// CardCount returns the total number of cards across all lists
func (s Snapshot) CardCount() int {
	n := 0
	for _, cards := range s {
		n += len(cards)
	}
	return n
}

// Find returns the card and the list holding it
func (s Snapshot) Find(id types.CardID) (Card, types.ListID, bool) {
	for listID, cards := range s {
		for _, c := range cards {
			if c.ID == id {
				return c, listID, true
			}
		}
	}
	return Card{}, "", false
}
