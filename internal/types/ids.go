package types

// ID types give semantic meaning to the strings flowing through the board.
// Both are persisted verbatim, so they stay plain strings underneath.

// ListID identifies one of the configured board lists (e.g. "backlog", "wip")
type ListID string

// CardID identifies a card for its whole lifetime
type CardID string

// String returns the raw identifier
func (id ListID) String() string {
	return string(id)
}

// String returns the raw identifier
func (id CardID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset
func (id ListID) IsZero() bool {
	return id == ""
}

// IsZero reports whether the identifier is unset
func (id CardID) IsZero() bool {
	return id == ""
}
