// Package tui implements the interactive board.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState

	// board data as last read from the card service
	lists    []models.ListSummary
	snapshot models.Snapshot

	input     textinput.Model
	eventChan <-chan events.Event
}

// eventMsg carries one board event into Update
type eventMsg events.Event

// New builds the model over an opened application
func New(ctx context.Context, application *app.App, cfg *config.Config) Model {
	input := textinput.New()
	input.CharLimit = models.MaxTitleLength
	input.Width = state.ListWidth * 2

	m := Model{
		ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		input:             input,
	}

	ch, err := application.Events.Listen(ctx)
	if err != nil {
		slog.Warn("board events unavailable", "error", err)
	} else {
		m.eventChan = ch
	}

	m.refresh()
	return m
}

// Init starts listening for board events
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// listenForEvents waits for the next event; it yields nil once the broker closes
func (m Model) listenForEvents() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch := m.eventChan
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(event)
	}
}

// refresh re-reads the board and keeps the selection in range
func (m *Model) refresh() {
	svc := m.App.CardService
	m.lists = svc.Lists()
	m.snapshot = svc.Snapshot()
	m.UiState.ClampSelection(len(m.lists), len(m.getCurrentCards()))
}

// getCurrentList returns the selected list, or nil when the board has none
func (m Model) getCurrentList() *models.ListSummary {
	idx := m.UiState.SelectedList()
	if idx < 0 || idx >= len(m.lists) {
		return nil
	}
	return &m.lists[idx]
}

// getCurrentCards returns the cards of the selected list
func (m Model) getCurrentCards() []models.Card {
	list := m.getCurrentList()
	if list == nil {
		return nil
	}
	return m.snapshot[list.ID]
}

// getCurrentCard returns the selected card, or nil when the list is empty
func (m Model) getCurrentCard() *models.Card {
	cards := m.getCurrentCards()
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(cards) {
		return nil
	}
	return &cards[idx]
}

// selectCard moves the cursor onto cardID wherever it now lives
func (m *Model) selectCard(cardID string) {
	for li, l := range m.lists {
		for ci, c := range m.snapshot[l.ID] {
			if c.ID.String() == cardID {
				m.UiState.SetSelectedList(li)
				m.UiState.SetSelectedCard(ci)
				m.UiState.EnsureSelectionVisible(li)
				return
			}
		}
	}
}
