package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary accent color
		Accent: palette.lotusViolet4,

		// Drag colors
		DropBorder:  palette.lotusGreen,
		CarryBorder: palette.lotusBlue4,

		// UI element colors
		ColumnBorder:   palette.lotusViolet1,
		CardBorder:     palette.lotusWhite4,
		CardBackground: palette.lotusWhite3,
		SelectedBorder: palette.lotusAqua,
		SelectedBg:     palette.lotusBlue1,

		// Text colors
		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		// Notification colors
		InfoFg:    palette.lotusTeal3,
		InfoBg:    palette.lotusBlue2,
		WarningFg: palette.lotusOrange2,
		WarningBg: palette.lotusYellow4,
		ErrorFg:   palette.lotusRed3,
		ErrorBg:   palette.lotusRed4,
	}
}
