package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/tui/components"
	"github.com/thenoetrevino/mission/internal/tui/state"
)

// statusBarHeight is the line reserved under the board
const statusBarHeight = 1

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}

	switch m.UiState.Mode() {
	case state.DetailMode:
		if modal := m.detailLayer(); modal != nil {
			layers = append(layers, modal)
		}
	case state.HelpMode:
		layers = append(layers, m.helpLayer())
	}

	layers = append(layers, m.notificationLayers()...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBoard renders the visible columns side by side with the status bar
func (m Model) viewBoard() string {
	cols := m.columns()
	if len(cols) == 0 {
		return "No columns"
	}

	height := m.UiState.Height() - statusBarHeight
	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(cols))
	dragging := m.UiState.Mode() == state.DraggingMode
	now := m.now()

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		focused := i == m.UiState.SelectedColumn()
		row := -1
		if focused {
			row = m.UiState.SelectedRow()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:      cols[i],
			Focused:     focused,
			SelectedRow: row,
			Dragging:    dragging,
			Carrying:    m.carrying,
			Height:      height,
			Now:         now,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinVertical(lipgloss.Left, board, m.viewStatusBar())
}

func (m Model) viewStatusBar() string {
	mode := m.lastOutcome
	hint := ""
	if m.UiState.Mode() == state.DraggingMode {
		title := string(m.carrying)
		if item := m.session.Controller().ActiveItem(); item != nil {
			title = item.Title
		}
		mode = "dragging: " + title
		hint = strings.Join([]string{
			m.keys.Drop.Help().Key + " drop",
			m.keys.Cancel.Help().Key + " cancel",
		}, " · ")
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Summary: components.BoardSummary(m.session.Store().TotalItems(), m.session.Store().Len()),
		Mode:    mode,
		Hint:    hint,
	})
}

// detailLayer renders the focused item's detail pane centered over the board
func (m Model) detailLayer() *lipgloss.Layer {
	item := m.currentItem()
	col := m.currentColumn()
	if item == nil || col == nil {
		return nil
	}
	width := min(max(m.UiState.Width()*2/3, 40), m.UiState.Width())
	pane := components.RenderDetail(components.DetailProps{
		Item:   item,
		Column: col,
		Width:  width,
		Now:    m.now(),
	})
	return centered(pane, m.UiState.Width(), m.UiState.Height())
}

// notificationLayers stacks active banners in the top-right corner
func (m Model) notificationLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	row := 0
	for _, n := range m.session.Notifications().Active(m.now()) {
		banner := components.RenderNotification(n)
		h := lipgloss.Height(banner)
		if row+h >= m.UiState.Height() {
			// Don't render notifications that would go off screen
			break
		}
		col := max(m.UiState.Width()-lipgloss.Width(banner)-1, 0)
		layers = append(layers, lipgloss.NewLayer(banner).X(col).Y(row))
		row += h + 1
	}
	return layers
}

func centered(content string, width, height int) *lipgloss.Layer {
	x := max((width-lipgloss.Width(content))/2, 0)
	y := max((height-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
