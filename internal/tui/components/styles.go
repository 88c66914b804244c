// Package components provides reusable UI components and styles.
// Call InitStyles() after theme.Init to pick up a configured scheme.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ListStyle frames an unfocused board list
	ListStyle lipgloss.Style

	// FocusedListStyle frames the list holding the cursor
	FocusedListStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// SelectedCardStyle highlights the card under the cursor
	SelectedCardStyle lipgloss.Style

	// TitleStyle renders list headers
	TitleStyle lipgloss.Style

	// ExceededStyle renders the usage of a list over its WIP limit
	ExceededStyle lipgloss.Style

	// SubtleStyle renders secondary text
	SubtleStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds every style from the current theme colors
func InitStyles() {
	ListStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ListBorder)).
		Padding(0, 1)

	FocusedListStyle = ListStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	ExceededStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.WipExceeded))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
