package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/tui/components"
)

// minHeightForWidgets hides the widget strip on short terminals
const minHeightForWidgets = 24

// statusBarHeight is the single line at the bottom of the screen
const statusBarHeight = 1

func (m Model) widgetStrip() string {
	if m.UiState.Height() < minHeightForWidgets || len(m.Layout) == 0 {
		return ""
	}
	return components.RenderWidgetStrip(m.Layout, m.summary(), m.UiState.Width())
}

func (m Model) summary() components.Summary {
	s := components.Summary{Windows: make(map[models.Status]kanban.Window)}
	for _, c := range m.Board.Columns() {
		s.Windows[c.Status()] = c.Snapshot()
	}
	return s
}

// boardTop is the first screen row of the columns
func (m Model) boardTop() int {
	strip := m.widgetStrip()
	if strip == "" {
		return 0
	}
	return lipgloss.Height(strip)
}

func (m Model) columnHeight() int {
	return max(m.UiState.Height()-m.boardTop()-statusBarHeight, 0)
}

// columnBounds returns the x extent of column i. The last column absorbs
// the remainder of the division.
func (m Model) columnBounds(i int) (x, w int) {
	n := len(m.Board.Statuses())
	if n == 0 {
		return 0, 0
	}
	base := m.UiState.Width() / n
	x = i * base
	w = base
	if i == n-1 {
		w = m.UiState.Width() - x
	}
	return x, w
}

// bodyTop is the first screen row of card content inside a column
func (m Model) bodyTop() int {
	return m.boardTop() + 1 + components.HeaderHeight
}

func (m Model) bodyHeight() int {
	return components.BodyHeight(m.columnHeight())
}

// cardWidth is the width of a card inside column i
func (m Model) cardWidth(i int) int {
	_, w := m.columnBounds(i)
	return components.InnerWidth(w)
}

// columnAt returns the column under screen position (x, y)
func (m Model) columnAt(x, y int) (models.Status, bool) {
	top := m.boardTop()
	if y < top || y >= top+m.columnHeight() {
		return "", false
	}
	for i, st := range m.Board.Statuses() {
		cx, cw := m.columnBounds(i)
		if x >= cx && x < cx+cw {
			return st, true
		}
	}
	return "", false
}

// cardAt returns the index and id of the card under (x, y). Gaps between
// cards, the header and the footer hit no card.
func (m Model) cardAt(x, y int) (st models.Status, index int, id string, ok bool) {
	st, ok = m.columnAt(x, y)
	if !ok {
		return "", 0, "", false
	}
	row := y - m.bodyTop()
	if row < 0 || row >= m.bodyHeight() {
		return st, 0, "", false
	}
	w := m.Board.Column(st).Snapshot()
	abs := m.UiState.ScrollOffset(st) + row
	if abs%components.RowHeight >= components.CardHeight {
		return st, 0, "", false
	}
	index = abs / components.RowHeight
	if index >= len(w.Items) {
		return st, 0, "", false
	}
	return st, index, w.Items[index].ID, true
}
