// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// TestNow is the instant every fixture clock reports
var TestNow = time.Date(2024, time.July, 1, 14, 0, 0, 0, time.UTC)

// FixedClock returns a clock frozen at TestNow
func FixedClock() func() time.Time {
	return func() time.Time { return TestNow }
}

// SequentialIDs returns a generator yielding new-1, new-2, ...
func SequentialIDs() func() types.CardID {
	n := 0
	return func() types.CardID {
		n++
		return types.CardID(fmt.Sprintf("new-%d", n))
	}
}

// TestLists is the default board with a WIP limit of 1 on "wip"
func TestLists() []models.List {
	return []models.List{
		{ID: "backlog", Name: "Backlog"},
		{ID: "wip", Name: "In Progress", WIPLimit: 1},
		{ID: "review", Name: "Review", WIPLimit: 2},
		{ID: "done", Name: "Done"},
	}
}
