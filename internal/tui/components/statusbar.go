package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Severity of a status bar message
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width    int
	Message  string
	Severity Severity
}

// RenderStatusBar renders the current message on the left and the help hint on the right
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Tablero"
	if props.Message != "" {
		leftText = props.Message
	}
	rightText := "press ? for help"

	color := theme.Subtle
	if props.Message != "" {
		switch props.Severity {
		case SeverityWarning:
			color = theme.WarningFg
		case SeverityError:
			color = theme.ErrorFg
		default:
			color = theme.InfoFg
		}
	}

	leftRendered := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(leftText)
	rightRendered := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(rightText)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
