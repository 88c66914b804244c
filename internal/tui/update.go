package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedList())
		return m, nil

	case eventMsg:
		return m.handleEvent(events.Event(msg))
	}

	if m.isInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.AddCardMode, state.CommentMode:
		return m.handleInputMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.ViewCardMode, state.HelpMode:
		return m.handleOverlay(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleEvent re-reads the board after any change, including ones made
// outside this model
func (m Model) handleEvent(event events.Event) (tea.Model, tea.Cmd) {
	m.refresh()
	if event.Type == events.EventPersistFailed {
		m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("Board not saved: %s", event.Err))
	}
	return m, m.listenForEvents()
}

func (m Model) isInputMode() bool {
	mode := m.UiState.Mode()
	return mode == state.AddCardMode || mode == state.CommentMode
}

// handleOverlay closes the help and card views
func (m Model) handleOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case km.Cancel, km.Quit, km.ViewCard, km.ShowHelp:
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
