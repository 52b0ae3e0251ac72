// Package tui implements the interactive board: keyboard navigation,
// a pick-up/drop drag gesture and workflow notification banners.
package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/mission/internal/config"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/session"
	"github.com/thenoetrevino/mission/internal/tui/components"
	"github.com/thenoetrevino/mission/internal/tui/state"
	"github.com/thenoetrevino/mission/internal/types"
)

// Model represents the application state for the TUI
type Model struct {
	session *session.Session
	config  *config.Config
	keys    keyMap
	UiState *state.UIState
	logger  *slog.Logger
	now     func() time.Time

	// carrying is the id of the picked-up item while in DraggingMode
	carrying types.ItemID

	// lastOutcome is shown in the status bar after a drop
	lastOutcome string
}

// Option configures a Model
type Option func(*Model)

// WithClock replaces time.Now (tests)
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLogger sets the logger used for TUI events
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// New creates the TUI model over a session
func New(sess *session.Session, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		session: sess,
		config:  cfg,
		keys:    newKeyMap(cfg.KeyMappings),
		UiState: state.NewUIState(),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.scheduleNotificationTick()
}

// columns returns a snapshot of the board
func (m Model) columns() []*models.Column {
	return m.session.Columns()
}

// lengths returns the item count of every column, in board order
func (m Model) lengths() []int {
	cols := m.columns()
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = len(c.Items)
	}
	return out
}

// currentColumn returns the column under the cursor, or nil on an empty board
func (m Model) currentColumn() *models.Column {
	cols := m.columns()
	if len(cols) == 0 {
		return nil
	}
	idx := min(m.UiState.SelectedColumn(), len(cols)-1)
	return cols[idx]
}

// currentItem returns the item under the cursor, or nil on an empty column or the drop slot
func (m Model) currentItem() *models.Item {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	row := m.UiState.SelectedRow()
	if row < 0 || row >= len(col.Items) {
		return nil
	}
	return col.Items[row]
}

// dropTarget is the id the carried item would be dropped on: the item under
// the cursor, or the column itself when the cursor is on its drop slot.
func (m Model) dropTarget() string {
	if item := m.currentItem(); item != nil {
		return string(item.ID)
	}
	if col := m.currentColumn(); col != nil {
		return string(col.ID)
	}
	return ""
}

// focusItem moves the cursor onto itemID wherever it now lives
func (m Model) focusItem(itemID types.ItemID) {
	cols := m.columns()
	for ci, col := range cols {
		if row := col.IndexOf(itemID); row >= 0 {
			m.UiState.Select(ci, row, m.lengths(), false)
			return
		}
	}
	m.UiState.Select(m.UiState.SelectedColumn(), m.UiState.SelectedRow(), m.lengths(), false)
}
