package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quoteboard/internal/tui/components"
	"github.com/thenoetrevino/quoteboard/internal/tui/layers"
	"github.com/thenoetrevino/quoteboard/internal/tui/notifications"
	"github.com/thenoetrevino/quoteboard/internal/tui/state"
	"github.com/thenoetrevino/quoteboard/internal/tui/theme"
)

// View renders the board with its overlays stacked as layers
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.Content = m.render()
	return view
}

// render returns the full frame as text
func (m Model) render() string {
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	var rows []string
	if strip := m.widgetStrip(); strip != "" {
		rows = append(rows, strip)
	}
	rows = append(rows, m.renderColumns(), m.renderStatusBar())
	base := lipgloss.JoinVertical(lipgloss.Left, rows...)

	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if l := m.dragPreviewLayer(); l != nil {
		stack = append(stack, l)
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.HelpMode:
		modal = m.helpLayer()
	case state.JumpMode:
		modal = m.jumpLayer()
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	stack = append(stack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	return lipgloss.NewCanvas(stack...).Render()
}

func (m Model) renderColumns() string {
	session, dragging := m.dragging()
	over, hasOver := m.DragState.Over()
	selectedCol := m.UiState.SelectedColumn()
	height := m.columnHeight()

	cols := make([]string, 0, len(m.Board.Statuses()))
	for i, c := range m.Board.Columns() {
		w := c.Snapshot()
		_, width := m.columnBounds(i)

		props := components.ColumnProps{
			Window:       w,
			Width:        width,
			Height:       height,
			ScrollOffset: m.UiState.ScrollOffset(w.Status),
			Overscan:     m.Config.Board.OverscanRows(),
			Focused:      i == selectedCol,
			Over:         dragging && hasOver && over == w.Status,
		}
		if dragging {
			props.DraggingID = session.Quote.ID
		} else if i == selectedCol {
			if idx := m.UiState.SelectedCard(w.Status); idx < len(w.Items) {
				props.SelectedID = w.Items[idx].ID
			}
		}
		cols = append(cols, components.RenderColumn(props))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderStatusBar() string {
	var left string
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	switch m.UiState.Mode() {
	case state.DragMode:
		if s, ok := m.dragging(); ok {
			left = "moving " + s.Quote.ID
			if over, ok := m.DragState.Over(); ok {
				left += " → " + over.Label()
			}
		}
		right = m.help.ShortHelpView(m.keys.dragHelp())
	case state.JumpMode:
		left = "jump to page"
	case state.HelpMode:
		left = "help"
	default:
		w := m.currentWindow()
		left = fmt.Sprintf("quoteboard · %s", components.ColumnLabel(w.Status, w))
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Right: right,
	})
}

// dragPreviewLayer floats the dragged card near the pointer, or under the
// header of the target column when the keyboard drives the drag
func (m Model) dragPreviewLayer() *lipgloss.Layer {
	q, ok := m.Board.Dragged()
	if !ok {
		return nil
	}

	var x, y, width int
	if m.DragState.Keyboard() {
		over, _ := m.DragState.Over()
		i := max(m.statusOf(over), 0)
		cx, _ := m.columnBounds(i)
		x, y = cx+2, m.bodyTop()
		width = m.cardWidth(i)
	} else {
		p := m.DragState.Pointer()
		x, y = p.X+1, p.Y+1
		width = m.cardWidth(0)
	}

	card := components.RenderCard(components.CardProps{Quote: q, Width: width, Floating: true})
	return layers.CreatePositionedLayer(card, x, y, m.UiState.Width(), m.UiState.Height())
}

// helpMarkdown lists the configured bindings
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n| key | action |\n|---|---|\n")
	for _, group := range m.keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n# Mouse\n\n")
	b.WriteString("- press a card and drag it onto another column to move it\n")
	b.WriteString("- release outside the board to cancel\n")
	b.WriteString("- scroll a column with the wheel\n")
	return b.String()
}

func (m Model) helpLayer() *lipgloss.Layer {
	width := min(m.UiState.Width()-8, 72)
	content := components.HelpBoxStyle.Render(components.RenderMarkdown(m.helpMarkdown(), width))
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func (m Model) jumpLayer() *lipgloss.Layer {
	if m.jumpForm == nil {
		return nil
	}
	content := components.FormBoxStyle.Width(min(m.UiState.Width()-4, 50)).Render(m.jumpForm.View())
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}
