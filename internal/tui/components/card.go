package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/tui/theme"
)

// CardProps describes one quote card
type CardProps struct {
	Quote    models.Quote
	Width    int
	Selected bool
	// Ghost marks the card left behind while it is being dragged
	Ghost bool
	// Floating renders the drag preview variant
	Floating bool
}

// RenderCard renders a quote as a CardHeight-tall box of Width cells.
// lipgloss Width and Height exclude the border.
func RenderCard(p CardProps) string {
	inner := max(p.Width-4, 1) // border + padding

	amount := FormatCurrency(p.Quote.Amount)
	id := Truncate(p.Quote.ID, max(inner-lipgloss.Width(amount)-1, 1))
	gap := max(inner-lipgloss.Width(id)-lipgloss.Width(amount), 1)
	top := lipgloss.NewStyle().Bold(true).Render(id) +
		strings.Repeat(" ", gap) +
		AmountStyle.Render(amount)

	customer := SubtleStyle.Render(Truncate(p.Quote.Customer, inner))

	meta := strconv.Itoa(p.Quote.Items) + " items · " + FormatDate(p.Quote.Date)
	if p.Quote.SalesPerson != "" {
		meta += " · " + p.Quote.SalesPerson
	}
	meta = SubtleStyle.Render(Truncate(meta, inner))

	style := CardStyle.Width(max(p.Width-2, 1)).Height(CardHeight - 2)
	switch {
	case p.Floating:
		style = style.
			BorderForeground(lipgloss.Color(theme.DropTarget)).
			Background(lipgloss.Color(theme.SelectedBg))
	case p.Ghost:
		style = style.
			BorderStyle(lipgloss.HiddenBorder()).
			Faint(true)
	case p.Selected:
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, top, customer, meta))
}

// RenderSkeleton renders a placeholder card of the same footprint as a card
func RenderSkeleton(width int) string {
	inner := max(width-4, 1)
	bar := func(frac int) string {
		return strings.Repeat("░", max(inner*frac/10, 1))
	}
	return SkeletonStyle.
		Width(max(width-2, 1)).
		Height(CardHeight - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, bar(6), bar(9), bar(4)))
}
