package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func testLists() []models.List {
	return []models.List{
		{ID: "backlog", Name: "Backlog"},
		{ID: "wip", Name: "In Progress", WIPLimit: 2},
		{ID: "done", Name: "Done"},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(testLists())
	require.NoError(t, err)
	return s
}

func ids(cards []models.Card) []types.CardID {
	out := make([]types.CardID, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoLists)

	_, err = New([]models.List{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)

	_, err = New([]models.List{{ID: ""}})
	assert.ErrorIs(t, err, ErrUnknownList)

	_, err = New([]models.List{{ID: "a", WIPLimit: -1}})
	assert.Error(t, err)
}

func TestAppendAndLocate(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append("backlog", models.Card{ID: "card-1", Title: "one"}))
	require.NoError(t, s.Append("backlog", models.Card{ID: "card-2", Title: "two"}))

	listID, pos, ok := s.Locate("card-2")
	assert.True(t, ok)
	assert.Equal(t, types.ListID("backlog"), listID)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, s.Count("backlog"))
	assert.Equal(t, 2, s.Len())

	card, _, ok := s.Card("card-1")
	require.True(t, ok)
	assert.NotNil(t, card.Comments, "appended cards always carry a comment log")
	assert.NoError(t, s.Check())
}

func TestAppend_Rejects(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append("backlog", models.Card{ID: "card-1"}))

	assert.ErrorIs(t, s.Append("done", models.Card{ID: "card-1"}), ErrDuplicateCard)
	assert.ErrorIs(t, s.Append("archive", models.Card{ID: "card-2"}), ErrUnknownList)
	assert.Equal(t, 1, s.Len())
	assert.NoError(t, s.Check())
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append("wip", models.Card{ID: "card-1"}))
	require.NoError(t, s.Append("wip", models.Card{ID: "card-2"}))
	require.NoError(t, s.Append("wip", models.Card{ID: "card-3"}))

	card, listID, ok := s.Remove("card-2")
	assert.True(t, ok)
	assert.Equal(t, types.CardID("card-2"), card.ID)
	assert.Equal(t, types.ListID("wip"), listID)
	assert.Equal(t, []types.CardID{"card-1", "card-3"}, ids(s.Cards("wip")))

	_, _, ok = s.Remove("card-2")
	assert.False(t, ok)
	assert.NoError(t, s.Check())
}

func TestMoveTo(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append("backlog", models.Card{ID: "card-1"}))
	require.NoError(t, s.Append("backlog", models.Card{ID: "card-2"}))
	require.NoError(t, s.Append("done", models.Card{ID: "card-3"}))

	require.NoError(t, s.MoveTo("card-1", "done"))
	assert.Equal(t, []types.CardID{"card-2"}, ids(s.Cards("backlog")))
	assert.Equal(t, []types.CardID{"card-3", "card-1"}, ids(s.Cards("done")))

	// same list keeps position
	require.NoError(t, s.MoveTo("card-3", "done"))
	assert.Equal(t, []types.CardID{"card-3", "card-1"}, ids(s.Cards("done")))

	assert.ErrorIs(t, s.MoveTo("card-9", "done"), models.ErrNotFound)
	assert.ErrorIs(t, s.MoveTo("card-2", "archive"), ErrUnknownList)
	assert.NoError(t, s.Check())
}

func TestReorder(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []types.CardID{"a", "b", "c", "d"} {
		require.NoError(t, s.Append("backlog", models.Card{ID: id}))
	}

	require.NoError(t, s.Reorder("d", 0))
	assert.Equal(t, []types.CardID{"d", "a", "b", "c"}, ids(s.Cards("backlog")))

	require.NoError(t, s.Reorder("d", 99))
	assert.Equal(t, []types.CardID{"a", "b", "c", "d"}, ids(s.Cards("backlog")))

	require.NoError(t, s.Reorder("a", 2))
	assert.Equal(t, []types.CardID{"b", "c", "a", "d"}, ids(s.Cards("backlog")))

	require.NoError(t, s.Reorder("b", -5))
	assert.Equal(t, []types.CardID{"b", "c", "a", "d"}, ids(s.Cards("backlog")))

	assert.ErrorIs(t, s.Reorder("zz", 0), models.ErrNotFound)
	assert.NoError(t, s.Check())
}

func TestUpdate_KeepsID(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append("backlog", models.Card{ID: "card-1", Title: "old"}))

	ok := s.Update("card-1", func(c *models.Card) {
		c.Title = "new"
		c.ID = "hijacked"
	})
	require.True(t, ok)

	card, _, ok := s.Card("card-1")
	require.True(t, ok)
	assert.Equal(t, "new", card.Title)
	assert.False(t, s.Update("missing", func(*models.Card) {}))
	assert.NoError(t, s.Check())
}

func TestSnapshot_IsDetached(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append("backlog", models.Card{
		ID:       "card-1",
		Comments: []models.Comment{{Timestamp: "t", Text: "x"}},
	}))

	snap := s.Snapshot()
	assert.Len(t, snap, 3, "every configured list is present")
	assert.Empty(t, snap["done"])

	snap["backlog"][0].Title = "mutated"
	snap["backlog"][0].Comments[0].Text = "mutated"

	card, _, _ := s.Card("card-1")
	assert.Empty(t, card.Title)
	assert.Equal(t, "x", card.Comments[0].Text)
}

func TestLoad(t *testing.T) {
	s := newTestStore(t)
	snap := models.Snapshot{
		"backlog": {{ID: "card-1"}, {ID: "card-2"}},
		"done":    {{ID: "card-3"}},
		"review":  {{ID: "card-4"}},
	}

	rehomed, err := s.Load(snap)
	require.NoError(t, err)
	assert.Equal(t, []types.CardID{"card-4"}, rehomed)
	assert.Equal(t, []types.CardID{"card-1", "card-2", "card-4"}, ids(s.Cards("backlog")))
	assert.Equal(t, 4, s.Len())
	assert.NoError(t, s.Check())
}

func TestLoad_DuplicateLeavesStoreUntouched(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append("wip", models.Card{ID: "keep"}))

	_, err := s.Load(models.Snapshot{
		"backlog": {{ID: "card-1"}},
		"done":    {{ID: "card-1"}},
	})
	assert.ErrorIs(t, err, ErrDuplicateCard)
	assert.Equal(t, []types.CardID{"keep"}, ids(s.Cards("wip")))
	assert.NoError(t, s.Check())
}
