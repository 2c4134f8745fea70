package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/paginator"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/tui/theme"
)

// HeaderProps describes a column header
type HeaderProps struct {
	Status      models.Status
	Count       int
	TotalAmount float64
	Over        bool
	Loading     bool
	Width       int
}

// RenderColumnHeader renders the label, compact count and compact amount
func RenderColumnHeader(p HeaderProps) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.StatusColor(p.Status))).Render("●")
	label := TitleStyle.Render(p.Status.Label())
	count := SubtleStyle.Render(FormatCount(p.Count))
	if p.Loading {
		count += SubtleStyle.Render(" …")
	}
	line1 := dot + " " + label + " " + count
	line2 := AmountStyle.Render(FormatCompact(p.TotalAmount))

	rule := strings.Repeat("─", max(p.Width, 1))
	ruleStyle := SubtleStyle
	if p.Over {
		ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DropTarget)).Bold(true)
		rule = strings.Repeat("━", max(p.Width, 1))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(p.Width).Render(line1),
		lipgloss.NewStyle().Width(p.Width).Render(line2),
		ruleStyle.Render(rule),
	)
}

// RenderColumnFooter shows "page / pageCount" once there is more than one page
func RenderColumnFooter(page, pageCount, width int) string {
	if pageCount <= 1 {
		return lipgloss.NewStyle().Width(width).Render("")
	}
	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "page %d / %d"
	p.PerPage = 1
	p.SetTotalPages(pageCount)
	p.Page = min(max(page, 0), pageCount-1)

	return SubtleStyle.Width(width).Align(lipgloss.Center).Render(p.View())
}

// BodyProps describes the scrollable list of cards in a column
type BodyProps struct {
	Window       kanban.Window
	Width        int
	Height       int
	ScrollOffset int
	Overscan     int
	SelectedID   string
	DraggingID   string
}

// RenderColumnBody renders only the rows the virtualizer selects, clipped
// to Height. While the window is loading, skeletons replace its items.
func RenderColumnBody(p BodyProps) string {
	if p.Height <= 0 {
		return ""
	}
	if p.Window.IsLoading {
		rows := make([]string, 0, SkeletonCount)
		for range SkeletonCount {
			rows = append(rows, RenderSkeleton(p.Width))
		}
		return clipLines(strings.Join(rows, "\n"+strings.Repeat("\n", CardGap)), 0, p.Height)
	}
	if len(p.Window.Items) == 0 {
		return clipLines(SubtleStyle.Width(p.Width).Align(lipgloss.Center).Render("no quotes"), 0, p.Height)
	}

	v := kanban.Virtualizer{
		Count:          len(p.Window.Items),
		RowHeight:      RowHeight,
		Overscan:       p.Overscan,
		ViewportHeight: p.Height,
		ScrollOffset:   p.ScrollOffset,
	}
	rows := v.Rows()
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	for i, row := range rows {
		q := p.Window.Items[row.Index]
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("\n", CardGap))
		}
		b.WriteString(RenderCard(CardProps{
			Quote:    q,
			Width:    p.Width,
			Selected: q.ID == p.SelectedID,
			Ghost:    q.ID == p.DraggingID,
		}))
	}
	// Rendered text starts at the first rendered row; shift to the viewport
	start := v.ClampOffset(p.ScrollOffset) - rows[0].Start
	return clipLines(b.String(), start, p.Height)
}

// clipLines returns height lines of s starting at line from, padding with
// blank lines when s is shorter
func clipLines(s string, from, height int) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, height)
	for i := from; i < from+height; i++ {
		if i >= 0 && i < len(lines) {
			out = append(out, lines[i])
		} else {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// ColumnProps describes one whole status column
type ColumnProps struct {
	Window       kanban.Window
	Width        int
	Height       int
	ScrollOffset int
	Overscan     int
	Focused      bool
	Over         bool
	SelectedID   string
	DraggingID   string
}

// BodyHeight returns the rows left for cards in a column of outer height h
func BodyHeight(h int) int {
	return max(h-2-HeaderHeight-FooterHeight, 0)
}

// InnerWidth returns the card width inside a column of outer width w
func InnerWidth(w int) int {
	return max(w-4, 1)
}

// RenderColumn renders header, virtualized body and footer inside a frame
func RenderColumn(p ColumnProps) string {
	inner := InnerWidth(p.Width)
	w := p.Window

	header := RenderColumnHeader(HeaderProps{
		Status:      w.Status,
		Count:       w.Total,
		TotalAmount: w.TotalAmount,
		Over:        p.Over,
		Loading:     w.IsLoading,
		Width:       inner,
	})
	body := RenderColumnBody(BodyProps{
		Window:       w,
		Width:        inner,
		Height:       BodyHeight(p.Height),
		ScrollOffset: p.ScrollOffset,
		Overscan:     p.Overscan,
		SelectedID:   p.SelectedID,
		DraggingID:   p.DraggingID,
	})
	footer := RenderColumnFooter(w.Page, w.PageCount(), inner)

	style := ColumnStyle.Width(max(p.Width-2, 1)).Height(max(p.Height-2, 0))
	switch {
	case p.Over:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case p.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

// ColumnLabel is used by the status bar and notifications
func ColumnLabel(s models.Status, w kanban.Window) string {
	return fmt.Sprintf("%s (%s)", s.Label(), FormatCount(w.Total))
}
