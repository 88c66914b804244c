package models

import "github.com/thenoetrevino/tablero/internal/types"

// List is a configured board list.
// WIPLimit of 0 means unbounded.
type List struct {
	ID       types.ListID
	Name     string
	WIPLimit int
}

// Bounded reports whether the list enforces a WIP ceiling
func (l List) Bounded() bool {
	return l.WIPLimit > 0
}

// ListSummary is a read model for rendering a list header
type ListSummary struct {
	List
	Count    int
	Usage    string // "2/3" or "∞"
	Exceeded bool   // more cards than the limit allows
}
