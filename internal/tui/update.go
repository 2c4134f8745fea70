package tui

import (
	"fmt"
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/tui/components"
	"github.com/thenoetrevino/quoteboard/internal/tui/huhforms"
	"github.com/thenoetrevino/quoteboard/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		m.clampSelections()
		return m, nil

	case boardChangedMsg:
		cmd := m.handleResults(msg.Results)
		m.clampSelections()
		return m, tea.Batch(waitForBoard(m.Ctx, m.events), cmd)

	case holdTickMsg:
		if m.DragState.Tick(msg.At) {
			m.startPointerDrag()
		}
		return m, nil

	case expireNotificationsMsg:
		m.NotificationState.Expire(msg.At)
		return m, nil
	}

	// Forms need ALL remaining messages
	if m.UiState.Mode() == state.JumpMode {
		return m.updateJumpForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	}
	return m, nil
}

// handleResults turns rolled-back moves into notifications
func (m *Model) handleResults(results []kanban.Result) tea.Cmd {
	notified := false
	for _, r := range results {
		if !r.RolledBack() {
			continue
		}
		m.NotificationState.Add(state.LevelError,
			fmt.Sprintf("%s could not move to %s and was returned to %s",
				r.Move.Quote.ID, r.Move.To.Label(), r.Move.From.Label()),
			m.now())
		notified = true
	}
	if !notified {
		return nil
	}
	return tea.Tick(m.NotificationState.TTL(), func(t time.Time) tea.Msg {
		return expireNotificationsMsg{At: t}
	})
}

// clampSelections keeps every column's selection and scroll inside its
// current window after the window changed
func (m *Model) clampSelections() {
	for _, c := range m.Board.Columns() {
		w := c.Snapshot()
		st := w.Status
		m.UiState.SetSelectedCard(st, m.UiState.SelectedCard(st), len(w.Items))
		v := m.virtualizer(w)
		m.UiState.SetScrollOffset(st, v.ClampOffset(m.UiState.ScrollOffset(st)))
	}
}

func (m Model) virtualizer(w kanban.Window) kanban.Virtualizer {
	return kanban.Virtualizer{
		Count:          len(w.Items),
		RowHeight:      components.RowHeight,
		Overscan:       m.Config.Board.OverscanRows(),
		ViewportHeight: m.bodyHeight(),
		ScrollOffset:   m.UiState.ScrollOffset(w.Status),
	}
}

// ============================================================================
// KEYBOARD
// ============================================================================

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.Board.Drag().Cancel()
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.DragMode:
		return m.handleDragMode(msg)
	}
	return m.handleNormalMode(msg)
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	n := len(m.Board.Statuses())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, m.keys.PrevColumn):
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn()-1, n)

	case key.Matches(msg, m.keys.NextColumn):
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn()+1, n)

	case key.Matches(msg, m.keys.PrevCard):
		m.selectCard(m.UiState.SelectedCard(m.currentStatus()) - 1)

	case key.Matches(msg, m.keys.NextCard):
		m.selectCard(m.UiState.SelectedCard(m.currentStatus()) + 1)

	case key.Matches(msg, m.keys.PrevPage):
		m.goToPage(m.currentWindow().Page - 1)

	case key.Matches(msg, m.keys.NextPage):
		m.goToPage(m.currentWindow().Page + 1)

	case key.Matches(msg, m.keys.Refresh):
		m.Board.Column(m.currentStatus()).FetchPage(m.currentWindow().Page)

	case key.Matches(msg, m.keys.JumpToPage):
		return m.openJumpForm()

	case key.Matches(msg, m.keys.PickUp):
		m.pickUp()
	}
	return m, nil
}

// selectCard moves the selection in the current column and scrolls it into view
func (m *Model) selectCard(i int) {
	w := m.currentWindow()
	m.UiState.SetSelectedCard(w.Status, i, len(w.Items))
	v := m.virtualizer(w)
	m.UiState.SetScrollOffset(w.Status, v.ScrollToIndex(m.UiState.SelectedCard(w.Status)))
}

func (m *Model) goToPage(n int) {
	w := m.currentWindow()
	pages := w.PageCount()
	if pages <= 1 {
		return
	}
	n = min(max(n, 0), pages-1)
	if n == w.Page {
		return
	}
	if m.Board.Column(w.Status).GoToPage(n) {
		m.UiState.ResetColumn(w.Status)
	}
}

func (m *Model) pickUp() {
	q, ok := m.selectedQuote()
	if !ok {
		return
	}
	s, err := m.keyboard.PickUp(q.ID)
	if err != nil {
		m.logger.Debug("pick up refused", "id", q.ID, "error", err)
		return
	}
	m.UiState.SetMode(state.DragMode)
	m.DragState.SetKeyboard(true)
	m.DragState.SetOver(s.Source)
}

func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Pointer-driven drags only react to cancel
	if !m.DragState.Keyboard() {
		if key.Matches(msg, m.keys.CancelDrag) {
			m.cancelDrag()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		m.DragState.SetOver(m.keyboard.Step(-1))
	case key.Matches(msg, m.keys.NextColumn):
		m.DragState.SetOver(m.keyboard.Step(1))
	case key.Matches(msg, m.keys.Drop):
		mv, ok := m.keyboard.Drop()
		m.endDrag()
		if ok {
			m.followMove(mv)
		}
	case key.Matches(msg, m.keys.CancelDrag):
		m.cancelDrag()
	}
	return m, nil
}

// followMove selects the moved card, now at the head of its new column
func (m *Model) followMove(mv kanban.Move) {
	i := m.statusOf(mv.To)
	if i < 0 {
		return
	}
	m.UiState.SetSelectedColumn(i, len(m.Board.Statuses()))
	m.UiState.SetSelectedCard(mv.To, 0, 1)
	m.UiState.SetScrollOffset(mv.To, 0)
}

func (m *Model) cancelDrag() {
	m.Board.Drag().Cancel()
	m.endDrag()
}

func (m *Model) endDrag() {
	m.DragState.Reset()
	m.UiState.SetMode(state.NormalMode)
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ShowHelp, m.keys.Quit, m.keys.CancelDrag):
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// JUMP FORM
// ============================================================================

func (m Model) openJumpForm() (tea.Model, tea.Cmd) {
	w := m.currentWindow()
	pages := w.PageCount()
	if pages <= 1 {
		return m, nil
	}

	value := ""
	m.jumpValue = &value
	m.jumpStatus = w.Status
	m.jumpPages = pages
	m.jumpForm = huhforms.CreateJumpForm(w.Status.Label(), pages, m.jumpValue).
		WithTheme(huhforms.CreateBoardTheme(m.Config.ColorScheme, w.Status))
	m.UiState.SetMode(state.JumpMode)
	return m, m.jumpForm.Init()
}

func (m Model) updateJumpForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.jumpForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	if k, ok := msg.(tea.KeyPressMsg); ok && key.Matches(k, m.keys.CancelDrag) {
		m.closeJumpForm()
		return m, nil
	}

	model, cmd := m.jumpForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.jumpForm = f
	}

	switch m.jumpForm.State {
	case huh.StateCompleted:
		if page, err := huhforms.ParsePage(*m.jumpValue, m.jumpPages); err == nil {
			if m.Board.Column(m.jumpStatus).GoToPage(page) {
				m.UiState.ResetColumn(m.jumpStatus)
			}
		}
		m.closeJumpForm()
		return m, nil
	case huh.StateAborted:
		m.closeJumpForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeJumpForm() {
	m.jumpForm = nil
	m.jumpValue = nil
	m.UiState.SetMode(state.NormalMode)
}

// ============================================================================
// MOUSE
// ============================================================================

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft || m.UiState.Mode() != state.NormalMode {
		return m, nil
	}

	st, index, id, ok := m.cardAt(msg.X, msg.Y)
	if ok {
		m.UiState.SetSelectedColumn(m.statusOf(st), len(m.Board.Statuses()))
		m.UiState.SetSelectedCard(st, index, index+1)
	} else if st != "" {
		m.UiState.SetSelectedColumn(m.statusOf(st), len(m.Board.Statuses()))
	}
	if !ok {
		return m, nil
	}

	now := m.now()
	m.DragState.Press(id, kanban.Point{X: msg.X, Y: msg.Y}, now)

	if m.Config.Input.PointerActivation == config.ActivationHold {
		return m, tea.Tick(m.holdDelay(), func(t time.Time) tea.Msg {
			return holdTickMsg{At: t}
		})
	}
	return m, nil
}

func (m Model) holdDelay() time.Duration {
	if d := m.Config.Input.HoldDelay(); d > 0 {
		return d
	}
	return kanban.DefaultHoldDelay
}

func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	p := kanban.Point{X: msg.X, Y: msg.Y}

	if m.UiState.Mode() == state.DragMode {
		if m.DragState.Keyboard() {
			return m, nil
		}
		m.DragState.Move(p, m.now())
		m.trackOver(p)
		return m, nil
	}

	if m.DragState.Pressed() && m.DragState.Move(p, m.now()) {
		m.startPointerDrag()
		m.trackOver(p)
	}
	return m, nil
}

// startPointerDrag hands the pressed card to the coordinator
func (m *Model) startPointerDrag() {
	id := m.DragState.PressedID()
	s, err := m.Board.Drag().Start(id)
	if err != nil {
		m.logger.Debug("drag refused", "id", id, "error", err)
		m.DragState.Reset()
		return
	}
	m.UiState.SetMode(state.DragMode)
	m.DragState.SetKeyboard(false)
	m.DragState.SetOver(s.Source)
}

func (m *Model) trackOver(p kanban.Point) {
	if st, ok := m.columnAt(p.X, p.Y); ok {
		m.DragState.SetOver(st)
		return
	}
	m.DragState.ClearOver()
}

func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	pressed := m.DragState.Pressed()
	active := m.DragState.Release()

	if m.UiState.Mode() != state.DragMode || m.DragState.Keyboard() {
		if pressed && !active {
			m.DragState.Reset()
		}
		return m, nil
	}

	var (
		target kanban.Target
		found  bool
	)
	if _, _, id, ok := m.cardAt(msg.X, msg.Y); ok {
		target, found = kanban.CardTarget(id), true
	} else if st, ok := m.columnAt(msg.X, msg.Y); ok {
		target, found = kanban.ColumnTarget(st), true
	}

	if !found {
		m.cancelDrag()
		return m, nil
	}

	mv, ok := m.Board.Drag().Drop(target)
	m.endDrag()
	if ok {
		m.followMove(mv)
	}
	return m, nil
}

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	st, ok := m.columnAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	delta := 0
	switch msg.Button {
	case tea.MouseWheelUp:
		delta = -components.RowHeight
	case tea.MouseWheelDown:
		delta = components.RowHeight
	default:
		return m, nil
	}

	v := m.virtualizer(m.Board.Column(st).Snapshot())
	m.UiState.SetScrollOffset(st, v.ClampOffset(m.UiState.ScrollOffset(st)+delta))
	return m, nil
}

// statusOf returns the index of st on the board or -1
func (m Model) statusOf(st models.Status) int {
	return slices.Index(m.Board.Statuses(), st)
}
