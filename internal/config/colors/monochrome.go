package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:       "#121212",
		ColumnBackground: "#1C1C1C",

		Accepted: "#FFFFFF",
		Pending:  "#BCBCBC",
		Declined: "#808080",

		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		DropTarget:     "#FFFFFF",
		Skeleton:       "#303030",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Amount: "#FFFFFF",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#4E4E4E",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",

		StatusBarBg:   "#303030",
		StatusBarText: "#FFFFFF",
	}
}
