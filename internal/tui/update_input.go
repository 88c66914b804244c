package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/tablero/internal/models"
	cardservice "github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// startInput focuses an empty prompt for mode
func (m Model) startInput(mode state.Mode, placeholder string) (tea.Model, tea.Cmd) {
	m.input.Reset()
	m.input.Placeholder = placeholder
	cmd := m.input.Focus()
	m.UiState.SetMode(mode)
	return m, cmd
}

func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		mode := m.UiState.Mode()
		value := strings.TrimSpace(m.input.Value())
		m.closeInput()
		if mode == state.AddCardMode {
			return m.submitCard(value)
		}
		return m.submitComment(value)
	case m.Config.KeyMappings.Cancel, "ctrl+c":
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.UiState.SetMode(state.NormalMode)
}

// submitCard creates a card at the end of the selected list.
// Creation is not WIP-gated; a full list just shows as exceeded.
func (m Model) submitCard(title string) (tea.Model, tea.Cmd) {
	list := m.getCurrentList()
	if list == nil {
		return m, nil
	}

	card, err := m.App.CardService.CreateCard(m.ctx, cardservice.CreateCardRequest{
		ListID: list.ID,
		Fields: models.CardFields{Title: title},
	})
	if err != nil {
		m.notifyError("Failed to create card", err)
		return m, nil
	}

	m.refresh()
	m.selectCard(card.ID.String())
	m.NotificationState.Add(state.LevelInfo, "Card created")
	return m, nil
}

// submitComment appends a comment to the selected card, keeping its fields
func (m Model) submitComment(text string) (tea.Model, tea.Cmd) {
	card := m.getCurrentCard()
	if card == nil {
		return m, nil
	}
	if text == "" {
		m.NotificationState.Add(state.LevelInfo, "Empty comment discarded")
		return m, nil
	}

	if _, err := m.App.CardService.EditCard(m.ctx, cardservice.EditCardRequest{
		CardID:  card.ID,
		Fields:  card.Fields(),
		Comment: text,
	}); err != nil {
		m.notifyError("Failed to add comment", err)
		return m, nil
	}

	m.refresh()
	m.NotificationState.Add(state.LevelInfo, "Comment added")
	return m, nil
}
