// Package styles renders the human-readable output of the CLI commands
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/config/colors"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

var (
	scheme colors.ColorScheme

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Total:", "Uptime:"
	ValueStyle    lipgloss.Style // For field values
	AmountStyle   lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like size groups

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	scheme = c

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	AmountStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Amount))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Padding(0, 1)
}

// StatusColor returns the column color of st
func StatusColor(st models.Status) string {
	switch st {
	case models.StatusAccepted:
		return scheme.Accepted
	case models.StatusPending:
		return scheme.Pending
	case models.StatusDeclined:
		return scheme.Declined
	}
	return scheme.Normal
}

// RenderStatus renders a status as a colored "● Label" chip
func RenderStatus(st models.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(StatusColor(st))).
		Bold(true).
		Render("● " + st.Label())
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderQuoteLine renders one quote for list output
// Format: "QT-00000001  Acme Corp  3 items  $1,200.00  2024-01-02"
func RenderQuoteLine(q models.Quote, amount string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(q.ID))
	b.WriteString("  ")
	b.WriteString(ValueStyle.Render(q.Customer))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d items", q.Items)))
	b.WriteString("  ")
	b.WriteString(AmountStyle.Render(amount))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(q.Date.Format("2006-01-02")))
	if q.SalesPerson != "" {
		b.WriteString("  ")
		b.WriteString(SubtitleStyle.Render(q.SalesPerson))
	}
	return b.String()
}
