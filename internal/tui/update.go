package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/mission/internal/drag"
	"github.com/thenoetrevino/mission/internal/notify"
	"github.com/thenoetrevino/mission/internal/tui/components"
	"github.com/thenoetrevino/mission/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWindowSize(msg.Width, msg.Height, components.ColumnWidth)
		m.UiState.Select(m.UiState.SelectedColumn(), m.UiState.SelectedRow(), m.lengths(), m.UiState.Mode() == state.DraggingMode)
		return m, nil

	case notificationTickMsg:
		// Prune expired banners, then wait for the next one
		m.session.Notifications().Active(m.now())
		return m, m.scheduleNotificationTick()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press by mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.UiState.Mode() {
	case state.DraggingMode:
		return m.handleDraggingMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// ============================================================================
// NORMAL MODE
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case m.navigate(msg, false):
		return m, nil
	case key.Matches(msg, m.keys.Pickup):
		return m.pickUp()
	case key.Matches(msg, m.keys.ViewItem):
		if m.currentItem() != nil {
			m.UiState.SetMode(state.DetailMode)
		}
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.dismissNewest()
		return m, nil
	case key.Matches(msg, m.keys.ResetBoard):
		return m.resetBoard()
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	}
	return m, nil
}

// navigate moves the cursor if msg is a navigation key. slot allows the
// column's drop slot (dragging only).
func (m Model) navigate(msg tea.KeyPressMsg, slot bool) bool {
	lengths := m.lengths()
	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		m.UiState.MoveColumn(-1, lengths, slot)
	case key.Matches(msg, m.keys.NextColumn):
		m.UiState.MoveColumn(1, lengths, slot)
	case key.Matches(msg, m.keys.PrevItem):
		m.UiState.MoveRow(-1, lengths, slot)
	case key.Matches(msg, m.keys.NextItem):
		m.UiState.MoveRow(1, lengths, slot)
	default:
		return false
	}
	return true
}

// pickUp starts a drag on the focused item
func (m Model) pickUp() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}
	m.session.Controller().OnDragStart(item.ID)
	m.carrying = item.ID
	m.lastOutcome = ""
	m.UiState.SetMode(state.DraggingMode)
	m.logger.Debug("picked up item", "item_id", item.ID)
	return m, nil
}

// ============================================================================
// DRAGGING MODE
// ============================================================================

func (m Model) handleDraggingMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.navigate(msg, true):
		return m, nil
	case key.Matches(msg, m.keys.Drop):
		return m.drop(m.dropTarget())
	case key.Matches(msg, m.keys.Cancel):
		return m.drop("")
	case key.Matches(msg, m.keys.Quit):
		m.drop("")
		return m.quit()
	}
	return m, nil
}

// drop ends the drag on target; an empty target cancels
func (m Model) drop(target string) (tea.Model, tea.Cmd) {
	itemID := m.carrying
	res := m.session.Controller().OnDragEnd(itemID, target)

	m.carrying = ""
	m.UiState.SetMode(state.NormalMode)
	m.lastOutcome = describeOutcome(res)
	m.focusItem(itemID)

	m.logger.Debug("dropped item", "item_id", itemID, "target", target, "outcome", res.Outcome)
	return m, m.scheduleNotificationTick()
}

func describeOutcome(res drag.Result) string {
	switch res.Outcome {
	case drag.OutcomeReordered:
		return "reordered"
	case drag.OutcomeTransferred:
		return fmt.Sprintf("moved to %s", res.Move.To)
	case drag.OutcomeCancelled:
		return "drag cancelled"
	case drag.OutcomeUnchanged:
		return "no change"
	case drag.OutcomeUnresolved:
		return "nothing to drop on"
	default:
		return ""
	}
}

// ============================================================================
// DETAIL / HELP MODES
// ============================================================================

func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ViewItem), key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.UiState.SetMode(state.NormalMode)
	case key.Matches(msg, m.keys.Dismiss):
		m.dismissNewest()
	}
	return m, nil
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// ACTIONS
// ============================================================================

// dismissNewest removes the most recent visible notification
func (m Model) dismissNewest() {
	active := m.session.Notifications().Active(m.now())
	if len(active) == 0 {
		return
	}
	m.session.Notifications().Dismiss(active[len(active)-1].ID)
}

func (m Model) resetBoard() (tea.Model, tea.Cmd) {
	if err := m.session.Reset(context.Background()); err != nil {
		m.logger.Warn("failed to reset board", "error", err)
		m.session.Notifications().Add(notify.LevelError, "Reset Failed", err.Error())
		return m, m.scheduleNotificationTick()
	}
	m.lastOutcome = "board reset"
	m.UiState.Select(0, 0, m.lengths(), false)
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
