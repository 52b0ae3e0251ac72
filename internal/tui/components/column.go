package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/tui/theme"
	"github.com/thenoetrevino/mission/internal/types"
)

// tailwindColors maps the board's stored column colors to terminal colors
var tailwindColors = map[string]string{
	"bg-gray-500":    "#6B7280",
	"bg-blue-500":    "#3B82F6",
	"bg-purple-500":  "#A855F7",
	"bg-pink-500":    "#EC4899",
	"bg-green-500":   "#22C55E",
	"bg-emerald-500": "#10B981",
	"bg-yellow-500":  "#EAB308",
	"bg-red-500":     "#EF4444",
}

// ColumnColor returns the terminal color for a stored column color.
// Hex values pass through; unknown values fall back to the subtle theme color.
func ColumnColor(stored string) string {
	if strings.HasPrefix(stored, "#") {
		return stored
	}
	if hex, ok := tailwindColors[stored]; ok {
		return hex
	}
	return theme.Subtle
}

// ColumnProps holds everything RenderColumn needs
type ColumnProps struct {
	Column *models.Column
	// Focused is true when the cursor is in this column
	Focused bool
	// SelectedRow is the cursor row; len(Items) means the drop slot
	SelectedRow int
	// Dragging is true while an item is picked up
	Dragging bool
	// Carrying is the id of the item being dragged
	Carrying types.ItemID
	// Height is the total box height (0 for auto)
	Height int
	Now    time.Time
}

// RenderColumn renders a complete column with its header and cards
//
// Layout:
//
//	● {Title} ({count}) ⚡
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	[ drop here ] (while dragging)
//	▼ (if more cards below)
func RenderColumn(p ColumnProps) string {
	col := p.Column
	content := renderColumnHeader(col) + "\n"

	showSlot := p.Dragging && p.Focused
	rows := len(col.Items)
	if showSlot {
		rows++
	}

	if rows == 0 {
		content += lipgloss.NewStyle().Padding(1, 0).Render(SubtleStyle.Render("No items"))
	} else {
		// Header, top indicator and bottom indicator, plus border and padding
		const columnOverhead = 5
		maxVisible := rows
		if p.Height > 0 {
			maxVisible = max((p.Height-columnOverhead)/CardHeight, 1)
		}

		offset := 0
		if p.Focused && p.SelectedRow >= maxVisible {
			offset = p.SelectedRow - maxVisible + 1
		}
		end := min(offset+maxVisible, rows)

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		for row := offset; row < end; row++ {
			if row == len(col.Items) {
				content += renderSlot(p.SelectedRow == row) + "\n"
				continue
			}
			content += RenderCard(col.Items[row], cardState(p, row), p.Now) + "\n"
		}

		if end < rows {
			content += IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if p.Focused {
		border := theme.SelectedBorder
		if p.Dragging {
			border = theme.DropBorder
		}
		style = style.BorderForeground(lipgloss.Color(border))
	}
	if p.Height > 0 {
		// Subtract 2 for top and bottom borders
		style = style.Height(p.Height - 2)
	}
	return style.Render(strings.TrimRight(content, "\n"))
}

func renderColumnHeader(col *models.Column) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(ColumnColor(col.Color))).Render("●")
	header := dot + " " + TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Items)))
	if col.HasWorkflow() {
		header += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.WarningFg)).Render("⚡")
	}
	return header
}

func cardState(p ColumnProps, row int) CardState {
	item := p.Column.Items[row]
	selected := p.Focused && row == p.SelectedRow
	switch {
	case p.Dragging && item.ID == p.Carrying:
		return CardCarried
	case p.Dragging && selected:
		return CardDropTarget
	case selected:
		return CardSelected
	default:
		return CardPlain
	}
}

func renderSlot(selected bool) string {
	text := "drop at end"
	style := SlotStyle
	if !selected {
		style = style.BorderForeground(lipgloss.Color(theme.Subtle)).
			Foreground(lipgloss.Color(theme.Subtle))
	} else {
		text = "▸ " + text
	}
	return style.Render(text)
}
