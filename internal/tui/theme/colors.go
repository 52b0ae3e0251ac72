// Package theme holds the active color values used by the TUI renderers.
package theme

import "github.com/thenoetrevino/mission/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	CarryBorder    string
	DropBorder     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	CardBg = scheme.CardBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	CarryBorder = scheme.CarryBorder
	DropBorder = scheme.DropBorder
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
