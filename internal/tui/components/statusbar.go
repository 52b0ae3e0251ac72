package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/tui/theme"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width int
	// Summary is the board size, see BoardSummary
	Summary string
	// Mode is shown on the left, e.g. "dragging: Fix login"
	Mode string
	Hint string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Mission Control"
	if props.Summary != "" {
		leftText += " · " + props.Summary
	}
	if props.Mode != "" {
		leftText += " · " + props.Mode
	}
	rightText := props.Hint
	if rightText == "" {
		rightText = "press ? for help"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}

// BoardSummary describes the size of the board
func BoardSummary(items, columns int) string {
	return fmt.Sprintf("%d items across %d columns", items, columns)
}
