package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ListProps describes one board list to render
type ListProps struct {
	Summary     models.ListSummary
	Cards       []models.Card
	Focused     bool
	SelectedIdx int // -1 when the cursor is elsewhere
	Width       int
	Height      int // 0 for auto
}

// RenderList renders a list header with its WIP usage followed by its cards
//
// Layout:
//
//	{List Name} {count/limit}
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	▼ (if more cards below)
func RenderList(props ListProps) string {
	usage := SubtleStyle.Render(props.Summary.Usage)
	if props.Summary.Exceeded {
		usage = ExceededStyle.Render(props.Summary.Usage + " !")
	}
	header := TitleStyle.Render(props.Summary.Name) + " " + usage

	inner := max(props.Width-4, 10)

	var body []string
	if len(props.Cards) == 0 {
		body = append(body, SubtleStyle.Italic(true).Render("No cards"))
	} else {
		start, end := visibleRange(len(props.Cards), props.SelectedIdx, props.Height)
		if start > 0 {
			body = append(body, SubtleStyle.Render("▲"))
		}
		for i := start; i < end; i++ {
			body = append(body, RenderCard(props.Cards[i], i == props.SelectedIdx, inner))
		}
		if end < len(props.Cards) {
			body = append(body, SubtleStyle.Render(fmt.Sprintf("▼ %d more", len(props.Cards)-end)))
		}
	}

	style := ListStyle
	if props.Focused {
		style = FocusedListStyle
	}
	content := header + "\n" + strings.Join(body, "\n")
	return style.Width(props.Width).Render(content)
}

// RenderCard renders a card's title, assignee and priority
func RenderCard(card models.Card, selected bool, width int) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}

	title := lipgloss.NewStyle().Bold(true).Render(card.Title)
	var meta []string
	if card.Assigned != "" {
		meta = append(meta, card.Assigned)
	}
	if card.Priority != "" {
		meta = append(meta, card.Priority)
	}

	content := title
	if len(meta) > 0 {
		content += "\n" + SubtleStyle.Render(strings.Join(meta, " · "))
	}
	return style.Width(width).Render(content)
}

// cardHeight is the rendered height of one card including its border
const cardHeight = 4

// visibleRange returns the window of cards that fits height, keeping selected visible
func visibleRange(total, selected, height int) (int, int) {
	if height <= 0 {
		return 0, total
	}
	fit := max((height-3)/cardHeight, 1)
	if total <= fit {
		return 0, total
	}

	start := 0
	if selected >= fit {
		start = selected - fit + 1
	}
	return start, min(start+fit, total)
}
