// Package huhforms builds the huh forms used by the board
package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/config/colors"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// statusAccent returns the column color of st, or the scheme accent
func statusAccent(cs colors.ColorScheme, st models.Status) string {
	switch st {
	case models.StatusAccepted:
		return cs.Accepted
	case models.StatusPending:
		return cs.Pending
	case models.StatusDeclined:
		return cs.Declined
	}
	return cs.Accent
}

// CreateBoardTheme creates a huh theme whose accents follow the status
// column the form belongs to
func CreateBoardTheme(cs colors.ColorScheme, st models.Status) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		column := lipgloss.Color(statusAccent(cs, st))
		subtle := lipgloss.Color(cs.Subtle)
		invalid := lipgloss.Color(cs.ErrorBg)

		t.Focused.Base = t.Focused.Base.BorderForeground(column)
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(cs.Title)).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(invalid)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(invalid)
		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(column)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(column)
		t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(lipgloss.Color(cs.Normal))

		// the jump form has a single field, so blurred mirrors focused
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

		return t
	})
}
