package state

import "github.com/thenoetrevino/quoteboard/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	DragMode               // A card has been picked up
	HelpMode               // Displaying help screen
	JumpMode               // Jump-to-page form with huh
)

// UIState manages the user interface state.
// This includes column and card selection, per-column scroll offsets,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard tracks the selected card index for each column
	selectedCard map[models.Status]int

	// scrollOffsets tracks the vertical scroll offset in rows of cells
	scrollOffsets map[models.Status]int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedCard:  make(map[models.Status]int),
		scrollOffsets: make(map[models.Status]int),
		mode:          NormalMode,
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index, clamped to [0, n).
func (s *UIState) SetSelectedColumn(index, n int) {
	if n <= 0 {
		s.selectedColumn = 0
		return
	}
	s.selectedColumn = min(max(index, 0), n-1)
}

// SelectedCard returns the selected card index within column st.
func (s *UIState) SelectedCard(st models.Status) int {
	return s.selectedCard[st]
}

// SetSelectedCard updates the selected card index, clamped to [0, n).
func (s *UIState) SetSelectedCard(st models.Status, index, n int) {
	if n <= 0 {
		s.selectedCard[st] = 0
		return
	}
	s.selectedCard[st] = min(max(index, 0), n-1)
}

// ScrollOffset returns the scroll offset of column st.
func (s *UIState) ScrollOffset(st models.Status) int {
	return s.scrollOffsets[st]
}

// SetScrollOffset updates the scroll offset of column st.
func (s *UIState) SetScrollOffset(st models.Status, offset int) {
	s.scrollOffsets[st] = max(offset, 0)
}

// ResetColumn clears selection and scrolling after a page change.
func (s *UIState) ResetColumn(st models.Status) {
	s.selectedCard[st] = 0
	s.scrollOffsets[st] = 0
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
