package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddCard:
		return m.handleAddCard()
	case km.EditCard:
		return m.handleEditCard()
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.ViewCard:
		return m.handleViewCard()
	case km.PrevList, "left":
		return m.handleNavigateLeft()
	case km.NextList, "right":
		return m.handleNavigateRight()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	case km.NextCard, "down":
		return m.handleNavigateDown()
	case km.MoveCardLeft:
		return m.handleMoveCard(-1)
	case km.MoveCardRight:
		return m.handleMoveCard(1)
	case km.MoveCardUp:
		return m.handleReorderCard(-1)
	case km.MoveCardDown:
		return m.handleReorderCard(1)
	}

	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedList() > 0 {
		m.UiState.SetSelectedList(m.UiState.SelectedList() - 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedList())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first list")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedList() < len(m.lists)-1 {
		m.UiState.SetSelectedList(m.UiState.SelectedList() + 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedList())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last list")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedCard() > 0 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() - 1)
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedCard() < len(m.getCurrentCards())-1 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
	}
	return m, nil
}

// handleMoveCard moves the selected card to the neighbouring list, checking
// the destination's WIP limit first so a full list never flickers
func (m Model) handleMoveCard(delta int) (tea.Model, tea.Cmd) {
	card := m.getCurrentCard()
	if card == nil {
		return m, nil
	}

	target := m.UiState.SelectedList() + delta
	if target < 0 || target >= len(m.lists) {
		return m, nil
	}
	dest := m.lists[target]

	svc := m.App.CardService
	if !svc.CanAccept(card.ID, dest.ID) {
		m.NotificationState.Add(state.LevelError,
			fmt.Sprintf("%s is at its WIP limit (%s)", dest.Name, dest.Usage))
		return m, nil
	}

	moved, err := svc.MoveCard(m.ctx, card.ID, dest.ID)
	if err != nil {
		m.notifyError("Failed to move card", err)
		return m, nil
	}

	m.refresh()
	m.selectCard(moved.ID.String())
	return m, nil
}

func (m Model) handleReorderCard(delta int) (tea.Model, tea.Cmd) {
	card := m.getCurrentCard()
	if card == nil {
		return m, nil
	}

	index := m.UiState.SelectedCard() + delta
	if index < 0 || index >= len(m.getCurrentCards()) {
		return m, nil
	}

	if err := m.App.CardService.ReorderCard(m.ctx, card.ID, index); err != nil {
		m.notifyError("Failed to reorder card", err)
		return m, nil
	}

	m.refresh()
	m.UiState.SetSelectedCard(index)
	return m, nil
}

func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	if m.getCurrentList() == nil {
		m.NotificationState.Add(state.LevelError, "Cannot add card: the board has no lists")
		return m, nil
	}
	return m.startInput(state.AddCardMode, "Card title")
}

func (m Model) handleEditCard() (tea.Model, tea.Cmd) {
	if m.getCurrentCard() == nil {
		m.NotificationState.Add(state.LevelInfo, "No card selected")
		return m, nil
	}
	return m.startInput(state.CommentMode, "Comment")
}

func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	if m.getCurrentCard() == nil {
		m.NotificationState.Add(state.LevelInfo, "No card selected")
		return m, nil
	}
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

func (m Model) handleViewCard() (tea.Model, tea.Cmd) {
	if m.getCurrentCard() == nil {
		return m, nil
	}
	m.UiState.SetMode(state.ViewCardMode)
	return m, nil
}

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.Confirm, "Y":
		m.UiState.SetMode(state.NormalMode)
		card := m.getCurrentCard()
		if card == nil {
			return m, nil
		}
		if err := m.App.CardService.DeleteCard(m.ctx, card.ID); err != nil {
			m.notifyError("Failed to delete card", err)
			return m, nil
		}
		m.refresh()
		m.NotificationState.Add(state.LevelInfo, "Card deleted")
	case km.Cancel, "n", "N":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// notifyError shows a rejected action in the status bar and logs the unexpected ones
func (m Model) notifyError(prefix string, err error) {
	var wipErr *models.WipLimitExceededError
	switch {
	case errors.As(err, &wipErr):
		m.NotificationState.Add(state.LevelError,
			fmt.Sprintf("%s is at its WIP limit (%d/%d)", m.listName(wipErr.ListID.String()), wipErr.Count, wipErr.Limit))
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrNotFound):
		m.NotificationState.Add(state.LevelError, err.Error())
	default:
		slog.Error(prefix, "error", err)
		m.NotificationState.Add(state.LevelError, prefix)
	}
}

func (m Model) listName(id string) string {
	for _, l := range m.lists {
		if l.ID.String() == id {
			return l.Name
		}
	}
	return id
}
