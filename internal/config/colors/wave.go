package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Background:       palette.sumiInk1,
		ColumnBackground: palette.sumiInk2,

		Accepted: palette.springGreen,
		Pending:  palette.carpYellow,
		Declined: palette.waveRed,

		ColumnBorder:   palette.sumiInk6,
		CardBorder:     palette.sumiInk4,
		CardBackground: palette.sumiInk3,
		SelectedBorder: palette.waveAqua2,
		SelectedBg:     palette.waveBlue1,
		DropTarget:     palette.crystalBlue,
		Skeleton:       palette.sumiInk4,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,
		Amount: palette.lightBlue,

		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.oniViolet,
		StatusBarText: palette.fujiWhite,
	}
}
