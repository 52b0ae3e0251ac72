package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/tui/theme"
)

// CardState describes how a card is highlighted
type CardState int

const (
	CardPlain      CardState = iota
	CardSelected             // cursor is on the card
	CardCarried              // card is being dragged
	CardDropTarget           // carried card would land here
)

// RenderCard renders a single item as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}                  ┃
//	┃ ◆ Feature │ high         ┃
//	┃ {Project}                ┃
//	┃ [label] [label]          ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(item *models.Item, state CardState, now time.Time) string {
	lines := []string{
		renderCardTitle(item),
		renderCardMetadata(item),
		renderCardProject(item, now),
		renderCardLabels(item.Labels),
	}

	style := CardStyle
	switch state {
	case CardSelected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	case CardCarried:
		style = style.BorderForeground(lipgloss.Color(theme.CarryBorder)).
			Faint(true)
	case CardDropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	case CardPlain:
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderCardTitle(item *models.Item) string {
	title := item.Title
	if lipgloss.Width(title) > cardTitleMax {
		runes := []rune(title)
		if len(runes) > cardTitleMax-1 {
			title = string(runes[:cardTitleMax-1])
		}
		title += "…"
	}
	return lipgloss.NewStyle().Bold(true).Render(" " + title)
}

// renderCardMetadata renders category and priority on the same line, separated by │
func renderCardMetadata(item *models.Item) string {
	category := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(item.Category.Icon() + " " + item.Category.Label())

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(item.Priority.Color())).
		Render(string(item.Priority))

	separator := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(" │ ")
	return " " + category + separator + priority
}

func renderCardProject(item *models.Item, now time.Time) string {
	if item.Project == "" {
		return " " + SubtleStyle.Render("no project")
	}
	text := item.Project
	if item.IsOverdue(now) {
		text += lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render(" overdue")
	}
	return " " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(text)
}

// renderCardLabels renders the labels as bracketed chips
func renderCardLabels(labels []string) string {
	if len(labels) == 0 {
		return " " + SubtleStyle.Render("no labels")
	}
	chip := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))
	chips := make([]string, 0, len(labels))
	width := 1
	for _, label := range labels {
		rendered := chip.Render("[" + label + "]")
		if width+lipgloss.Width(rendered)+1 > cardInnerWidth {
			break
		}
		width += lipgloss.Width(rendered) + 1
		chips = append(chips, rendered)
	}
	return " " + strings.Join(chips, " ")
}
