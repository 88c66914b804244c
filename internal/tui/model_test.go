package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// setupModel returns a model over the seeded board:
// backlog [card-1 card-2], wip(1) [card-3], review(2) [], done [card-4]
func setupModel(t *testing.T) Model {
	t.Helper()

	cfg := config.Default()
	cfg.Board.Lists = nil
	for _, l := range testutil.TestLists() {
		cfg.Board.Lists = append(cfg.Board.Lists, config.ListConfig{
			ID: l.ID.String(), Name: l.Name, WIPLimit: l.WIPLimit,
		})
	}

	a, err := app.New(context.Background(), cfg,
		app.WithGateway(database.NewMemoryGateway()),
		app.WithServiceOptions(
			cardservice.WithClock(testutil.FixedClock()),
			cardservice.WithIDGenerator(testutil.SequentialIDs()),
		))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return New(t.Context(), a, cfg)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key in order and returns the resulting model
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func latest(m Model) string {
	n, _ := m.NotificationState.Latest()
	return n.Message
}

func TestNew_LoadsBoard(t *testing.T) {
	m := setupModel(t)

	require.Len(t, m.lists, 4)
	assert.Equal(t, "card-1", m.getCurrentCard().ID.String())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestNavigation(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "j")
	assert.Equal(t, "card-2", m.getCurrentCard().ID.String())

	m = press(t, m, "j")
	assert.Equal(t, 1, m.UiState.SelectedCard(), "cursor stays on the last card")

	m = press(t, m, "l")
	assert.Equal(t, 1, m.UiState.SelectedList())
	assert.Equal(t, "card-3", m.getCurrentCard().ID.String())

	m = press(t, m, "h", "h")
	assert.Equal(t, 0, m.UiState.SelectedList())
	assert.Equal(t, "Already at the first list", latest(m))
}

func TestMoveCard_IntoFullList(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "L")

	assert.Equal(t, "In Progress is at its WIP limit (1/1)", latest(m))
	snap := m.App.CardService.Snapshot()
	assert.Len(t, snap["backlog"], 2)
	assert.Len(t, snap["wip"], 1)
	assert.Equal(t, "card-1", m.getCurrentCard().ID.String())
}

func TestMoveCard_FollowsCard(t *testing.T) {
	m := setupModel(t)

	// card-3 from wip to review
	m = press(t, m, "l", "L")

	assert.Equal(t, 2, m.UiState.SelectedList())
	assert.Equal(t, "card-3", m.getCurrentCard().ID.String())
	snap := m.App.CardService.Snapshot()
	assert.Empty(t, snap["wip"])
	require.Len(t, snap["review"], 1)
	last := snap["review"][0].Comments[len(snap["review"][0].Comments)-1]
	assert.Equal(t, `Moved to "Review".`, last.Text)

	// wip now has room for card-1
	m = press(t, m, "h", "h", "L")
	assert.Equal(t, 1, m.UiState.SelectedList())
	assert.Equal(t, "card-1", m.getCurrentCard().ID.String())
}

func TestReorderCard(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "J")

	cards := m.App.CardService.Snapshot()["backlog"]
	assert.Equal(t, "card-2", cards[0].ID.String())
	assert.Equal(t, "card-1", cards[1].ID.String())
	assert.Equal(t, "card-1", m.getCurrentCard().ID.String())

	m = press(t, m, "J")
	assert.Equal(t, 1, m.UiState.SelectedCard(), "already last")
}

func TestAddCard(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "l", "a")
	require.Equal(t, state.AddCardMode, m.UiState.Mode())

	m = typeText(t, m, "Hotfix")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "new-1", m.getCurrentCard().ID.String())

	// creation is not gated, the list now shows as exceeded
	wip := m.lists[1]
	assert.Equal(t, "2/1", wip.Usage)
	assert.True(t, wip.Exceeded)
}

func TestAddCard_EmptyTitleRejected(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Contains(t, latest(m), "title")
	assert.Equal(t, 4, m.App.CardService.Snapshot().CardCount())
}

func TestAddCard_Cancel(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "Draft")
	m = press(t, m, "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 4, m.App.CardService.Snapshot().CardCount())
}

func TestCommentCard(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "l", "e")
	require.Equal(t, state.CommentMode, m.UiState.Mode())
	m = typeText(t, m, "Deployed")
	m = press(t, m, "enter")

	card := m.getCurrentCard()
	require.Len(t, card.Comments, 2)
	assert.Equal(t, "Deployed", card.Comments[1].Text)
	assert.Equal(t, "Desarrollar módulo de autenticación de usuarios", card.Title)
}

func TestDeleteCard(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "d")
	require.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View(), "Delete")

	m = press(t, m, "n")
	assert.Equal(t, 4, m.App.CardService.Snapshot().CardCount())

	m = press(t, m, "d", "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 3, m.App.CardService.Snapshot().CardCount())
	assert.Equal(t, "card-2", m.getCurrentCard().ID.String())
}

func TestDeleteCard_EmptyList(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "l", "l", "d")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "No card selected", latest(m))
}

func TestViewCard(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "l", "l", "l", "enter")
	require.Equal(t, state.ViewCardMode, m.UiState.Mode())

	view := m.View()
	assert.Contains(t, view, "Revisión final de propuesta comercial")
	assert.Contains(t, view, "[7/1/2024, 2:00:00 PM]")

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestHelp(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "?")
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View(), "move card to previous / next list")

	m = press(t, m, "?")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m := setupModel(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEvent_RefreshesBoard(t *testing.T) {
	m := setupModel(t)

	// a change made outside the model
	require.NoError(t, m.App.CardService.DeleteCard(t.Context(), "card-1"))

	updated, cmd := m.Update(eventMsg(events.Event{Type: events.EventCardDeleted, CardID: "card-1"}))
	m = updated.(Model)

	assert.NotNil(t, cmd, "keeps listening")
	assert.Equal(t, "card-2", m.getCurrentCard().ID.String())
}

func TestEvent_PersistFailed(t *testing.T) {
	m := setupModel(t)

	updated, _ := m.Update(eventMsg(events.Event{Type: events.EventPersistFailed, Err: "disk full"}))
	m = updated.(Model)

	assert.Equal(t, "Board not saved: disk full", latest(m))
	assert.Contains(t, m.View(), "Board not saved: disk full")
}

func TestView_Board(t *testing.T) {
	m := setupModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Backlog")
	assert.Contains(t, view, "Done")
	assert.Contains(t, view, "1/1")
	assert.Contains(t, view, "No cards")
}

func TestCustomKeyMappings(t *testing.T) {
	m := setupModel(t)
	m.Config.KeyMappings.NextCard = "n"

	m = press(t, m, "n")
	assert.Equal(t, "card-2", m.getCurrentCard().ID.String())
}
