package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: palette.dragonViolet,

		// Drag colors
		DropBorder:  palette.dragonGreen2,
		CarryBorder: palette.dragonBlue2,

		// UI element colors
		ColumnBorder:   palette.dragonBlack6,
		CardBorder:     palette.dragonBlack4,
		CardBackground: palette.dragonBlack3,
		SelectedBorder: palette.dragonAqua,
		SelectedBg:     palette.waveBlue1,

		// Text colors
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		// Notification colors
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,
	}
}
