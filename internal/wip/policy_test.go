package wip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/types"
)

type fakeBoard struct {
	limits map[types.ListID]int
	counts map[types.ListID]int
}

func (b fakeBoard) Limit(id types.ListID) (int, bool) {
	l, ok := b.limits[id]
	return l, ok
}

func (b fakeBoard) Count(id types.ListID) int {
	return b.counts[id]
}

func TestCanAccept(t *testing.T) {
	board := fakeBoard{
		limits: map[types.ListID]int{"backlog": 0, "wip": 2, "review": 1},
		counts: map[types.ListID]int{"backlog": 10, "wip": 1, "review": 3},
	}

	tests := []struct {
		name    string
		to      types.ListID
		from    types.ListID
		allowed bool
	}{
		{"unbounded always accepts", "backlog", "wip", true},
		{"below limit accepts", "wip", "backlog", true},
		{"over limit rejects cross-list", "review", "wip", false},
		{"over limit still allows reorder", "review", "review", true},
		{"unknown list rejects", "archive", "backlog", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanAccept(board, tt.to, "card-1", tt.from))
		})
	}
}

func TestCanAccept_AtLimitRejects(t *testing.T) {
	board := fakeBoard{
		limits: map[types.ListID]int{"wip": 1, "backlog": 0},
		counts: map[types.ListID]int{"wip": 1, "backlog": 1},
	}
	assert.False(t, CanAccept(board, "wip", "card-2", "backlog"))
	assert.True(t, CanAccept(board, "wip", "card-1", "wip"))

	board.counts["wip"] = 0
	assert.True(t, CanAccept(board, "wip", "card-2", "backlog"))
}

func TestUsage(t *testing.T) {
	assert.Equal(t, "∞", Usage(4, 0))
	assert.Equal(t, "2/3", Usage(2, 3))
	assert.Equal(t, "5/3", Usage(5, 3))
}

func TestExceeded(t *testing.T) {
	assert.False(t, Exceeded(3, 3))
	assert.True(t, Exceeded(4, 3))
	assert.False(t, Exceeded(100, 0))
}
