// Package wip decides whether a list may take one more card.
package wip

import (
	"strconv"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Board is the read-only view the policy needs
type Board interface {
	// Limit returns the list's WIP limit (0 = unbounded) and whether the list exists
	Limit(listID types.ListID) (int, bool)
	// Count returns the number of cards currently in the list
	Count(listID types.ListID) int
}

// CanAccept reports whether listID can take a card coming from currentListID.
//
// Reordering inside the same list is never gated. For a cross-list move the
// destination's count must be strictly below its limit; the mover is not
// counted. A list already over its limit keeps its cards but accepts nothing new.
func CanAccept(b Board, listID types.ListID, _ types.CardID, currentListID types.ListID) bool {
	limit, ok := b.Limit(listID)
	if !ok {
		return false
	}
	if limit <= 0 {
		return true
	}
	if currentListID == listID {
		return true
	}
	return b.Count(listID) < limit
}

// Usage renders a list's fill level for headers: "2/3", or "∞" when unbounded
func Usage(count, limit int) string {
	if limit <= 0 {
		return "∞"
	}
	return strconv.Itoa(count) + "/" + strconv.Itoa(limit)
}

// Exceeded reports whether a list holds more cards than its limit allows
func Exceeded(count, limit int) bool {
	return limit > 0 && count > limit
}
