package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/models"
	"github.com/thenoetrevino/mission/internal/tui/theme"
)

// DetailProps configures RenderDetail
type DetailProps struct {
	Item   *models.Item
	Column *models.Column
	Width  int
	Now    time.Time
}

// RenderDetail renders the item detail pane: metadata followed by the
// glamour-rendered description.
func RenderDetail(p DetailProps) string {
	item := p.Item
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Width(10)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	row := func(name, v string) string {
		return label.Render(name) + value.Render(v)
	}

	lines := []string{
		TitleStyle.Render(item.Title),
		"",
		row("Column", p.Column.Title),
		row("Type", item.Category.Icon()+" "+item.Category.Label()),
		label.Render("Priority") + lipgloss.NewStyle().Foreground(lipgloss.Color(item.Priority.Color())).Render(string(item.Priority)),
		row("Project", orNone(item.Project)),
		row("Assignee", orNone(item.Assignee)),
		row("Labels", orNone(strings.Join(item.Labels, ", "))),
		row("Created", formatAge(item.CreatedAt, p.Now)),
	}
	if item.DueDate != nil {
		due := item.DueDate.Format("2006-01-02")
		if item.IsOverdue(p.Now) {
			due += lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render(" (overdue)")
		}
		lines = append(lines, row("Due", due))
	}
	if p.Column.HasWorkflow() {
		lines = append(lines, "", SubtleStyle.Render(p.Column.WorkflowDescription))
	}

	lines = append(lines, "", RenderDescription(DescriptionProps{
		Description: item.Description,
		Width:       p.Width - 4,
	}))

	return DetailBoxStyle.Width(p.Width).Render(strings.Join(lines, "\n"))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// formatAge renders a timestamp relative to now, e.g. "3d ago"
func formatAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
