// Package state holds the TUI's navigation and mode state.
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode   Mode = iota // Default navigation mode
	DraggingMode             // An item has been picked up; the cursor chooses the drop target
	DetailMode               // Item detail pane
	HelpMode                 // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case DraggingMode:
		return "dragging"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/row selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedRow is the cursor row within the selected column. While dragging,
	// a row equal to the column length is the column's empty drop slot.
	selectedRow int

	width  int
	height int
	mode   Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{viewportSize: 1}
}

func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) SelectedRow() int    { return s.selectedRow }
func (s *UIState) Width() int          { return s.width }
func (s *UIState) Height() int         { return s.height }
func (s *UIState) Mode() Mode          { return s.mode }
func (s *UIState) ViewportOffset() int { return s.viewportOffset }
func (s *UIState) ViewportSize() int   { return s.viewportSize }

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// SetWindowSize records the terminal size and recomputes how many columns fit.
func (s *UIState) SetWindowSize(width, height, columnWidth int) {
	s.width = width
	s.height = height
	if columnWidth <= 0 {
		columnWidth = 1
	}
	s.viewportSize = max(width/columnWidth, 1)
}

// Select moves the cursor to column/row, clamped to the board shape.
// lengths holds the item count of every column; slot allows the row just
// past the last item (the column's drop slot).
func (s *UIState) Select(column, row int, lengths []int, slot bool) {
	if len(lengths) == 0 {
		s.selectedColumn, s.selectedRow, s.viewportOffset = 0, 0, 0
		return
	}
	column = min(max(column, 0), len(lengths)-1)

	maxRow := lengths[column] - 1
	if slot {
		maxRow = lengths[column]
	}
	row = min(max(row, 0), max(maxRow, 0))

	s.selectedColumn = column
	s.selectedRow = row
	s.ensureColumnVisible()
}

// MoveColumn shifts the cursor by delta columns, keeping the row where possible.
func (s *UIState) MoveColumn(delta int, lengths []int, slot bool) {
	s.Select(s.selectedColumn+delta, s.selectedRow, lengths, slot)
}

// MoveRow shifts the cursor by delta rows within the current column.
func (s *UIState) MoveRow(delta int, lengths []int, slot bool) {
	s.Select(s.selectedColumn, s.selectedRow+delta, lengths, slot)
}

// ensureColumnVisible scrolls the viewport so the selected column is on screen
func (s *UIState) ensureColumnVisible() {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
	s.viewportOffset = max(s.viewportOffset, 0)
}
