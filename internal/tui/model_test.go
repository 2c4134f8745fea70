package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/testutil"
	"github.com/thenoetrevino/quoteboard/internal/tui/state"
)

// Screen geometry for a 120x40 terminal with no widget strip: three
// columns of 40 cells, cards start at row 4 and every row is 6 tall.
const (
	testWidth   = 120
	testHeight  = 40
	firstCardY  = 4
	pendingColX = 60
)

func newTestModel(t *testing.T, cfg *config.Config) (Model, *testutil.FakeRemote) {
	t.Helper()

	fake := testutil.NewFakeRemote(map[models.Status]int{
		models.StatusAccepted: 35,
		models.StatusPending:  12,
		models.StatusDeclined: 3,
	})
	board := kanban.NewBoard(fake, kanban.WithPageSize(10))
	t.Cleanup(func() {
		board.Close()
		board.Wait()
	})

	if cfg == nil {
		cfg = config.Default()
	}
	m := InitialModel(context.Background(), board, cfg, nil)
	t.Cleanup(m.Close)

	board.Mount()
	board.Wait()

	m = applyMsg(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m, fake
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok, "expected Model, got %T", updated)
	return out
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func window(m Model, st models.Status) kanban.Window {
	return m.Board.Column(st).Snapshot()
}

// ============================================================================
// Navigation
// ============================================================================

func TestNavigation_ColumnsAndCards(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = applyMsg(t, m, keyRune('l'))
	assert.Equal(t, 1, m.UiState.SelectedColumn())

	m = applyMsg(t, m, keyRune('l'))
	m = applyMsg(t, m, keyRune('l'))
	assert.Equal(t, 2, m.UiState.SelectedColumn(), "clamped at the last column")

	m = applyMsg(t, m, keyRune('h'))
	m = applyMsg(t, m, keyRune('j'))
	m = applyMsg(t, m, keyRune('j'))
	assert.Equal(t, 2, m.UiState.SelectedCard(models.StatusPending))

	m = applyMsg(t, m, keyRune('k'))
	assert.Equal(t, 1, m.UiState.SelectedCard(models.StatusPending))
}

func TestNavigation_ScrollFollowsSelection(t *testing.T) {
	m, _ := newTestModel(t, nil)

	for range 9 {
		m = applyMsg(t, m, keyRune('j'))
	}
	assert.Equal(t, 9, m.UiState.SelectedCard(models.StatusAccepted))
	assert.Positive(t, m.UiState.ScrollOffset(models.StatusAccepted))
}

func TestPagination_NextAndPrev(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = applyMsg(t, m, keyRune(']'))
	m.Board.Wait()
	assert.Equal(t, 1, window(m, models.StatusAccepted).Page)

	m = applyMsg(t, m, keyRune('['))
	m.Board.Wait()
	assert.Equal(t, 0, window(m, models.StatusAccepted).Page)

	// Single-page column ignores paging
	m = applyMsg(t, m, keyRune('l'))
	m = applyMsg(t, m, keyRune('l'))
	m = applyMsg(t, m, keyRune(']'))
	m.Board.Wait()
	assert.Equal(t, 0, window(m, models.StatusDeclined).Page)
}

func TestJumpForm_OpenAndCancel(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = applyMsg(t, m, keyRune('g'))
	assert.Equal(t, state.JumpMode, m.UiState.Mode())
	require.NotNil(t, m.jumpForm)
	assert.Equal(t, 4, m.jumpPages)

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.jumpForm)
}

func TestHelpMode_Toggle(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = applyMsg(t, m, keyRune('?'))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.render(), "pick up")

	m = applyMsg(t, m, keyRune('?'))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// ============================================================================
// Keyboard drag
// ============================================================================

func TestKeyboardDrag_Drop(t *testing.T) {
	m, fake := newTestModel(t, nil)
	picked := window(m, models.StatusAccepted).Items[0]

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeySpace})
	require.Equal(t, state.DragMode, m.UiState.Mode())
	over, ok := m.DragState.Over()
	require.True(t, ok)
	assert.Equal(t, models.StatusAccepted, over)

	m = applyMsg(t, m, keyRune('l'))
	over, _ = m.DragState.Over()
	assert.Equal(t, models.StatusPending, over)

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Board.Wait()

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 1, m.UiState.SelectedColumn(), "selection follows the moved card")
	assert.Equal(t, picked.ID, window(m, models.StatusPending).Items[0].ID)
	assert.Equal(t, 13, window(m, models.StatusPending).Total)
	assert.Equal(t, 34, window(m, models.StatusAccepted).Total)

	updates := fake.Updates()
	require.Len(t, updates, 1)
	assert.Equal(t, models.StatusUpdate{
		ID:         picked.ID,
		FromStatus: models.StatusAccepted,
		ToStatus:   models.StatusPending,
	}, updates[0])
}

func TestKeyboardDrag_Cancel(t *testing.T) {
	m, fake := newTestModel(t, nil)

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeySpace})
	m = applyMsg(t, m, keyRune('l'))
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Board.Wait()

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	_, active := m.Board.Drag().Active()
	assert.False(t, active)
	assert.Empty(t, fake.Updates())
}

func TestKeyboardDrag_DropOnSourceIsNoop(t *testing.T) {
	m, fake := newTestModel(t, nil)

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeySpace})
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Board.Wait()

	assert.Empty(t, fake.Updates())
	assert.Equal(t, 35, window(m, models.StatusAccepted).Total)
}

func TestRollback_ShowsNotification(t *testing.T) {
	m, fake := newTestModel(t, nil)
	fake.SetUpdateErr(models.ErrRejected)
	picked := window(m, models.StatusAccepted).Items[0]

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeySpace})
	m = applyMsg(t, m, keyRune('l'))
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Board.Wait()

	m = applyMsg(t, m, boardChangedMsg{Results: m.events.drain()})

	require.True(t, m.NotificationState.HasAny())
	assert.Equal(t, state.LevelError, m.NotificationState.All()[0].Level)
	assert.Equal(t, picked.ID, window(m, models.StatusAccepted).Items[0].ID)
	assert.Equal(t, 12, window(m, models.StatusPending).Total)

	m = applyMsg(t, m, expireNotificationsMsg{At: time.Now().Add(time.Minute)})
	assert.False(t, m.NotificationState.HasAny())
}

// ============================================================================
// Mouse
// ============================================================================

func TestMouseDrag_DistanceActivation(t *testing.T) {
	m, fake := newTestModel(t, nil)
	picked := window(m, models.StatusAccepted).Items[0]

	m = applyMsg(t, m, tea.MouseClickMsg{X: 5, Y: firstCardY + 1, Button: tea.MouseLeft})
	assert.True(t, m.DragState.Pressed())

	// Within the activation distance
	m = applyMsg(t, m, tea.MouseMotionMsg{X: 10, Y: firstCardY + 1, Button: tea.MouseLeft})
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = applyMsg(t, m, tea.MouseMotionMsg{X: pendingColX, Y: 20, Button: tea.MouseLeft})
	require.Equal(t, state.DragMode, m.UiState.Mode())
	over, _ := m.DragState.Over()
	assert.Equal(t, models.StatusPending, over)
	assert.NotNil(t, m.dragPreviewLayer())

	m = applyMsg(t, m, tea.MouseReleaseMsg{X: pendingColX, Y: 20, Button: tea.MouseLeft})
	m.Board.Wait()

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, picked.ID, window(m, models.StatusPending).Items[0].ID)
	require.Len(t, fake.Updates(), 1)
}

func TestMouseDrag_ReleaseOutsideCancels(t *testing.T) {
	m, fake := newTestModel(t, nil)

	m = applyMsg(t, m, tea.MouseClickMsg{X: 5, Y: firstCardY, Button: tea.MouseLeft})
	m = applyMsg(t, m, tea.MouseMotionMsg{X: pendingColX, Y: 20, Button: tea.MouseLeft})
	require.Equal(t, state.DragMode, m.UiState.Mode())

	// The status bar row is outside every column
	m = applyMsg(t, m, tea.MouseMotionMsg{X: pendingColX, Y: testHeight - 1, Button: tea.MouseLeft})
	_, hasOver := m.DragState.Over()
	assert.False(t, hasOver)

	m = applyMsg(t, m, tea.MouseReleaseMsg{X: pendingColX, Y: testHeight - 1, Button: tea.MouseLeft})
	m.Board.Wait()

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, fake.Updates())
	assert.Equal(t, 35, window(m, models.StatusAccepted).Total)
}

func TestMouseClick_GapSelectsNothing(t *testing.T) {
	m, _ := newTestModel(t, nil)

	// The row after the first card is the gap between cards
	m = applyMsg(t, m, tea.MouseClickMsg{X: pendingColX, Y: firstCardY + 5, Button: tea.MouseLeft})
	assert.False(t, m.DragState.Pressed())
	assert.Equal(t, 1, m.UiState.SelectedColumn())

	m = applyMsg(t, m, tea.MouseClickMsg{X: pendingColX, Y: firstCardY + 6, Button: tea.MouseLeft})
	assert.True(t, m.DragState.Pressed())
	assert.Equal(t, 1, m.UiState.SelectedCard(models.StatusPending))
}

func TestMouseDrag_HoldActivation(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.Default()
	cfg.Input.PointerActivation = config.ActivationHold
	cfg.Input.HoldDelayMS = 300

	m, _ := newTestModel(t, cfg)
	m.now = func() time.Time { return now }

	m = applyMsg(t, m, tea.MouseClickMsg{X: 5, Y: firstCardY, Button: tea.MouseLeft})
	m = applyMsg(t, m, holdTickMsg{At: now.Add(100 * time.Millisecond)})
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = applyMsg(t, m, holdTickMsg{At: now.Add(300 * time.Millisecond)})
	assert.Equal(t, state.DragMode, m.UiState.Mode())
	assert.False(t, m.DragState.Keyboard())
}

func TestMouseWheel_ScrollsColumnUnderPointer(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = applyMsg(t, m, tea.MouseWheelMsg{X: 5, Y: 10, Button: tea.MouseWheelDown})
	assert.Equal(t, 6, m.UiState.ScrollOffset(models.StatusAccepted))
	assert.Equal(t, 0, m.UiState.ScrollOffset(models.StatusPending))

	m = applyMsg(t, m, tea.MouseWheelMsg{X: 5, Y: 10, Button: tea.MouseWheelUp})
	m = applyMsg(t, m, tea.MouseWheelMsg{X: 5, Y: 10, Button: tea.MouseWheelUp})
	assert.Equal(t, 0, m.UiState.ScrollOffset(models.StatusAccepted))
}

// ============================================================================
// View
// ============================================================================

func TestView_Settings(t *testing.T) {
	m, _ := newTestModel(t, nil)

	v := m.View()
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)

	out := m.render()
	assert.Contains(t, out, "Accepted")
	assert.Contains(t, out, "Declined")
	assert.Contains(t, out, "page 1 / 4")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	board := kanban.NewBoard(testutil.NewFakeRemote(nil))
	defer board.Close()
	m := InitialModel(context.Background(), board, nil, nil)
	defer m.Close()

	assert.Equal(t, "Loading...", m.render())
}
