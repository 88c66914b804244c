package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// FormatComment renders a comment as "[timestamp] text"
func FormatComment(c models.Comment) string {
	return fmt.Sprintf("[%s] %s", c.Timestamp, c.Text)
}

// RenderComments renders a card's comment history, oldest first
//
//	[7/1/2024, 2:05:09 PM] Tarea inicial.
//	[7/2/2024, 9:12:44 AM] Moved to "Review".
func RenderComments(comments []models.Comment, width int) string {
	if len(comments) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No comments")
	}

	contentWidth := max(width-2, 20)
	stampStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		stamp := "[" + c.Timestamp + "] "
		wrapped := wordwrap.String(stamp+c.Text, contentWidth)
		body := strings.TrimPrefix(wrapped, stamp)
		lines = append(lines, stampStyle.Render(stamp)+textStyle.Render(body))
	}
	return strings.Join(lines, "\n")
}
