// Package notifications renders the transient banners stacked in the
// top-right corner of the board
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/tui/state"
	"github.com/thenoetrevino/quoteboard/internal/tui/theme"
)

// MaxWidth caps the banner text; longer messages wrap
const MaxWidth = 44

type banner struct {
	icon  string
	title string
	fg    string
	bg    string
}

func bannerFor(level state.NotificationLevel) banner {
	switch level {
	case state.LevelWarning:
		return banner{icon: "⚠", title: "Warning", fg: theme.WarningFg, bg: theme.WarningBg}
	case state.LevelError:
		return banner{icon: "✕", title: "Move rolled back", fg: theme.ErrorFg, bg: theme.ErrorBg}
	}
	return banner{icon: "●", title: "Info", fg: theme.InfoFg, bg: theme.InfoBg}
}

// RenderFromState draws n as a bordered banner
func RenderFromState(n state.Notification) string {
	b := bannerFor(n.Level)
	header := b.icon + " " + b.title
	width := min(max(lipgloss.Width(header), lipgloss.Width(n.Message)), MaxWidth)

	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.fg)).
		Width(width)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.bg)).
		Background(lipgloss.Color(b.bg)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			text.Bold(true).Render(header),
			text.Render(n.Message),
		))
}
