package theme

import (
	"github.com/thenoetrevino/quoteboard/internal/config/colors"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	ColumnBg       string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	DropTarget     string
	Skeleton       string
	Title          string
	Subtle         string
	Normal         string
	Amount         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string

	statusColors = map[models.Status]string{}
)

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Background = c.Background
	ColumnBg = c.ColumnBackground
	ColumnBorder = c.ColumnBorder
	CardBorder = c.CardBorder
	CardBg = c.CardBackground
	SelectedBorder = c.SelectedBorder
	SelectedBg = c.SelectedBg
	DropTarget = c.DropTarget
	Skeleton = c.Skeleton
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	Amount = c.Amount
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
	StatusBarBg = c.StatusBarBg
	StatusBarText = c.StatusBarText

	statusColors = map[models.Status]string{
		models.StatusAccepted: c.Accepted,
		models.StatusPending:  c.Pending,
		models.StatusDeclined: c.Declined,
	}
}

// StatusColor returns the column color for s
func StatusColor(s models.Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return Normal
}
