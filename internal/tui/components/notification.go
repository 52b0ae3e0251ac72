package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/notify"
	"github.com/thenoetrevino/mission/internal/tui/theme"
)

type bannerStyle struct {
	icon       string
	foreground string
	background string
}

func styleFor(level notify.Level) bannerStyle {
	switch level {
	case notify.LevelInfo:
		return bannerStyle{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
	case notify.LevelWarning:
		return bannerStyle{icon: "⚠", foreground: theme.WarningFg, background: theme.WarningBg}
	case notify.LevelError:
		return bannerStyle{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return bannerStyle{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// maxBannerWidth keeps long workflow descriptions from spanning the screen
const maxBannerWidth = 48

// RenderNotification renders a notification banner based on its level
func RenderNotification(n notify.Notification) string {
	style := styleFor(n.Level)

	headerText := style.icon + " " + n.Title
	width := min(max(lipgloss.Width(headerText), lipgloss.Width(n.Message)), maxBannerWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(width).
		Render(n.Message)

	footer := SubtleStyle.Width(width).Render("x to dismiss")

	content := lipgloss.JoinVertical(lipgloss.Left, header, message, footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}
