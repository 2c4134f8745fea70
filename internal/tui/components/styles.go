// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/config/colors"
	"github.com/thenoetrevino/quoteboard/internal/tui/theme"
)

// Card geometry in terminal cells. A row in a column body is one card plus
// the gap beneath it.
const (
	CardHeight = 5
	CardGap    = 1
	RowHeight  = CardHeight + CardGap

	// SkeletonCount is the number of placeholder cards shown while loading
	SkeletonCount = 5

	// HeaderHeight and FooterHeight frame the column body
	HeaderHeight = 3
	FooterHeight = 1
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle frames one status column
	ColumnStyle lipgloss.Style

	// CardStyle is a quote card at rest
	CardStyle lipgloss.Style

	// SkeletonStyle is a loading placeholder card
	SkeletonStyle lipgloss.Style

	// TitleStyle is used for the app header and column labels
	TitleStyle lipgloss.Style

	// SubtleStyle is muted secondary text
	SubtleStyle lipgloss.Style

	// AmountStyle colors money values
	AmountStyle lipgloss.Style

	// HelpBoxStyle frames the help overlay
	HelpBoxStyle lipgloss.Style

	// FormBoxStyle frames the jump-to-page form
	FormBoxStyle lipgloss.Style

	// StatusBarStyle is the bottom status line
	StatusBarStyle lipgloss.Style

	// WidgetStyle frames a dashboard summary widget
	WidgetStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)

	SkeletonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Skeleton)).
		Foreground(lipgloss.Color(theme.Skeleton)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	AmountStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Amount)).
		Bold(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg)).
		Padding(0, 1)

	WidgetStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)
}

func init() {
	InitStyles(*colors.Default())
}
