package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// Left is typically the mode or the drag in progress
	Left string
	// Right is typically the help hint
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	left := props.Left
	if left == "" {
		left = "quoteboard"
	}
	right := props.Right
	if right == "" {
		right = "press ? for help"
	}

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return StatusBarStyle.
		Width(max(props.Width, 0)).
		Render(left + strings.Repeat(" ", gapWidth) + right)
}
