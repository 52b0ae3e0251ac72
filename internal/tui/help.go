package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/mission/internal/tui/components"
)

// helpLayer renders the keyboard shortcuts generated from the active key map
func (m Model) helpLayer() *lipgloss.Layer {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("MISSION CONTROL - Keyboard Shortcuts"))
	b.WriteString("\n")

	keyStyle := lipgloss.NewStyle().Bold(true).Width(10)
	for _, section := range m.keys.helpSections() {
		b.WriteString("\n" + section.title + "\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString("  " + keyStyle.Render(h.Key) + h.Desc + "\n")
		}
	}
	b.WriteString("\n" + components.SubtleStyle.Render("press "+m.keys.Help.Help().Key+" or esc to close"))

	return centered(components.HelpBoxStyle.Render(b.String()), m.UiState.Width(), m.UiState.Height())
}
