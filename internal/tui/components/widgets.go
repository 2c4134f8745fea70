package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// Summary is the board-wide aggregate the dashboard widgets draw from
type Summary struct {
	Windows map[models.Status]kanban.Window
}

func (s Summary) total() (count int, amount float64) {
	for _, w := range s.Windows {
		count += w.Total
		amount += w.TotalAmount
	}
	return count, amount
}

// RenderWidget renders one dashboard widget. The board widget itself is
// drawn by the caller, so it renders empty here.
func RenderWidget(item layout.Item, s Summary) string {
	var title, value string

	switch item.Type {
	case layout.WidgetColumnTotal:
		st, _ := item.Props["status"].(string)
		w := s.Windows[models.Status(st)]
		title = models.Status(st).Label()
		value = FormatCount(w.Total) + " · " + FormatCompact(w.TotalAmount)
	case layout.WidgetPipeline:
		_, amount := s.total()
		title = "Pipeline"
		value = FormatCompact(amount)
	case layout.WidgetConversion:
		acc := s.Windows[models.StatusAccepted].Total
		dec := s.Windows[models.StatusDeclined].Total
		title = "Conversion"
		value = "n/a"
		if acc+dec > 0 {
			value = fmt.Sprintf("%.1f%%", float64(acc)*100/float64(acc+dec))
		}
	default:
		return ""
	}

	return WidgetStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		SubtleStyle.Render(title),
		AmountStyle.Render(value),
	))
}

// RenderWidgetStrip renders the non-board widgets in layout order on one line
func RenderWidgetStrip(items []layout.Item, s Summary, width int) string {
	parts := make([]string, 0, len(items))
	used := 0
	for _, it := range items {
		w := RenderWidget(it, s)
		if w == "" {
			continue
		}
		if used+lipgloss.Width(w) > width {
			break
		}
		used += lipgloss.Width(w)
		parts = append(parts, w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
