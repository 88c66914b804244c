package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

const (
	defaultWidth  = 120
	defaultHeight = 30
)

// View renders the current mode
func (m Model) View() string {
	width, height := m.size()

	var body string
	switch m.UiState.Mode() {
	case state.ViewCardMode:
		body = m.viewCard(width)
	case state.HelpMode:
		body = m.viewHelp()
	default:
		body = m.viewBoard(height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter(width))
}

func (m Model) size() (int, int) {
	width, height := m.UiState.Width(), m.UiState.Height()
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	return width, height
}

// viewBoard renders the visible lists side by side
func (m Model) viewBoard(height int) string {
	if len(m.lists) == 0 {
		return components.SubtleStyle.Render("No lists configured")
	}

	contentHeight := max(height-2, 5)
	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(m.lists))

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		l := m.lists[i]
		selected := -1
		focused := i == m.UiState.SelectedList()
		if focused {
			selected = m.UiState.SelectedCard()
		}
		rendered = append(rendered, components.RenderList(components.ListProps{
			Summary:     l,
			Cards:       m.snapshot[l.ID],
			Focused:     focused,
			SelectedIdx: selected,
			Width:       state.ListWidth - 2,
			Height:      contentHeight,
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// viewCard renders the selected card with its markdown description and comments
func (m Model) viewCard(width int) string {
	card := m.getCurrentCard()
	if card == nil {
		return ""
	}
	inner := max(min(width, 100)-4, 20)

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(card.Title))
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("%s · %s", card.ID, m.getCurrentList().Name)))
	b.WriteString("\n\n")
	if card.Assigned != "" {
		b.WriteString(label.Render("Assigned: ") + card.Assigned + "\n")
	}
	if card.Priority != "" {
		b.WriteString(label.Render("Priority: ") + card.Priority + "\n")
	}
	b.WriteString("\n")
	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: card.Description,
		Width:       inner,
	}))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Comments"))
	b.WriteString("\n")
	b.WriteString(components.RenderComments(card.Comments, inner))

	return components.FocusedListStyle.Width(inner + 2).Render(b.String())
}

func (m Model) viewHelp() string {
	km := m.Config.KeyMappings
	rows := [][2]string{
		{km.PrevList + "/" + km.NextList, "previous / next list"},
		{km.PrevCard + "/" + km.NextCard, "previous / next card"},
		{km.MoveCardLeft + "/" + km.MoveCardRight, "move card to previous / next list"},
		{km.MoveCardUp + "/" + km.MoveCardDown, "move card up / down"},
		{km.AddCard, "add card"},
		{km.EditCard, "comment on card"},
		{km.DeleteCard, "delete card"},
		{km.ViewCard, "view card"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Width(10).Foreground(lipgloss.Color(theme.Highlight))
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(keyStyle.Render(r[0]) + " " + r[1] + "\n")
	}
	return components.ListStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// viewFooter renders the prompt of the active mode, or the status bar
func (m Model) viewFooter(width int) string {
	switch m.UiState.Mode() {
	case state.AddCardMode:
		return "New card in " + m.getCurrentList().Name + ": " + m.input.View()
	case state.CommentMode:
		return "Comment: " + m.input.View()
	case state.DeleteConfirmMode:
		if card := m.getCurrentCard(); card != nil {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).
				Render(fmt.Sprintf("Delete %q? (%s/n)", card.Title, m.Config.KeyMappings.Confirm))
		}
	}

	props := components.StatusBarProps{Width: width}
	if n, ok := m.NotificationState.Latest(); ok {
		props.Message = n.Message
		switch n.Level {
		case state.LevelWarning:
			props.Severity = components.SeverityWarning
		case state.LevelError:
			props.Severity = components.SeverityError
		default:
			props.Severity = components.SeverityInfo
		}
	}
	return components.RenderStatusBar(props)
}
