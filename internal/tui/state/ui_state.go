// Package state holds the TUI's view state. Board data itself lives in the
// card service; the model re-reads it after every change.
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddCardMode                   // Typing the title of a new card
	CommentMode                   // Typing a comment for the selected card
	DeleteConfirmMode             // Confirming card deletion
	ViewCardMode                  // Full card detail with description and comments
	HelpMode                      // Displaying help screen
)

// ListWidth is the rendered width of one board list including its border
const ListWidth = 34

// UIState manages the user interface state.
// This includes navigation (list/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedList is the index of the currently selected list
	selectedList int

	// selectedCard is the index of the selected card within the selected list
	selectedCard int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible list
	viewportOffset int

	// viewportSize is the number of lists that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // recalculated when width is set
	}
}

// SelectedList returns the index of the currently selected list.
func (s *UIState) SelectedList() int {
	return s.selectedList
}

// SetSelectedList updates the selected list index.
func (s *UIState) SetSelectedList(index int) {
	s.selectedList = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for lists once the status bar is drawn,
// never less than 5.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible list.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of lists that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many lists fit in the terminal width,
// with at least one always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, s.width/ListWidth)
}

// EnsureSelectionVisible adjusts the viewport so the selected list is on screen.
func (s *UIState) EnsureSelectionVisible(selectedList int) {
	if selectedList < s.viewportOffset {
		s.viewportOffset = selectedList
	}
	if selectedList >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedList - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside a board of listsLen lists whose
// selected list holds cardsLen cards.
func (s *UIState) ClampSelection(listsLen, cardsLen int) {
	if listsLen == 0 {
		s.selectedList, s.selectedCard, s.viewportOffset = 0, 0, 0
		return
	}
	s.selectedList = min(max(s.selectedList, 0), listsLen-1)
	s.selectedCard = min(max(s.selectedCard, 0), max(cardsLen-1, 0))
	if s.viewportOffset+s.viewportSize > listsLen {
		s.viewportOffset = max(0, listsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedList)
}
