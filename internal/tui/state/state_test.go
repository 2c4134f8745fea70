package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// TestSetSelectedColumn_Clamps ensures the column index never leaves the board.
// Edge case: navigating left from the first column or right from the last.
func TestSetSelectedColumn_Clamps(t *testing.T) {
	s := NewUIState()

	s.SetSelectedColumn(-1, 3)
	assert.Equal(t, 0, s.SelectedColumn())

	s.SetSelectedColumn(7, 3)
	assert.Equal(t, 2, s.SelectedColumn())

	s.SetSelectedColumn(1, 0)
	assert.Equal(t, 0, s.SelectedColumn())
}

// TestSelectedCard_PerColumn ensures each column keeps its own selection.
func TestSelectedCard_PerColumn(t *testing.T) {
	s := NewUIState()

	s.SetSelectedCard(models.StatusAccepted, 4, 10)
	s.SetSelectedCard(models.StatusPending, 12, 10)

	assert.Equal(t, 4, s.SelectedCard(models.StatusAccepted))
	assert.Equal(t, 9, s.SelectedCard(models.StatusPending))
	assert.Equal(t, 0, s.SelectedCard(models.StatusDeclined))

	s.SetScrollOffset(models.StatusAccepted, 30)
	s.ResetColumn(models.StatusAccepted)
	assert.Equal(t, 0, s.SelectedCard(models.StatusAccepted))
	assert.Equal(t, 0, s.ScrollOffset(models.StatusAccepted))
}

// TestSetScrollOffset_NeverNegative ensures wheel-up at the top is a no-op.
func TestSetScrollOffset_NeverNegative(t *testing.T) {
	s := NewUIState()
	s.SetScrollOffset(models.StatusPending, -6)
	assert.Equal(t, 0, s.ScrollOffset(models.StatusPending))
}

// ============================================================================
// Notifications
// ============================================================================

func TestNotificationState_Expire(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewNotificationState()
	s.SetTTL(time.Second)

	s.Add(LevelError, "move rolled back", now)
	s.Add(LevelInfo, "later", now.Add(500*time.Millisecond))
	require.Len(t, s.All(), 2)

	assert.False(t, s.Expire(now.Add(999*time.Millisecond)))
	assert.True(t, s.Expire(now.Add(time.Second)))
	require.Len(t, s.All(), 1)
	assert.Equal(t, "later", s.All()[0].Message)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState()
	now := time.Now()
	s.Add(LevelInfo, "a", now)
	s.Add(LevelInfo, "b", now)

	render := func(n Notification) string { return "[" + n.Message + "]" }

	// No window size yet
	assert.Empty(t, s.GetLayers(render))

	s.SetWindowSize(40, 10)
	layers := s.GetLayers(render)
	assert.Len(t, layers, 2)

	// Too short to fit the second banner
	s.SetWindowSize(40, 2)
	assert.Len(t, s.GetLayers(render), 1)
}

// ============================================================================
// Drag
// ============================================================================

func TestDragState_DistanceActivation(t *testing.T) {
	now := time.Now()
	d := NewDragState(kanban.NewPointerSensor(8))

	d.Press("QT-1", kanban.Point{X: 10, Y: 10}, now)
	assert.True(t, d.Pressed())
	assert.Equal(t, "QT-1", d.PressedID())

	assert.False(t, d.Move(kanban.Point{X: 15, Y: 10}, now))
	assert.True(t, d.Move(kanban.Point{X: 19, Y: 10}, now))
	assert.Equal(t, kanban.Point{X: 19, Y: 10}, d.Pointer())

	d.SetOver(models.StatusDeclined)
	over, ok := d.Over()
	assert.True(t, ok)
	assert.Equal(t, models.StatusDeclined, over)

	assert.True(t, d.Release())
	d.Reset()
	_, ok = d.Over()
	assert.False(t, ok)
	assert.Empty(t, d.PressedID())
}

func TestDragState_HoldActivation(t *testing.T) {
	now := time.Now()
	d := NewDragState(kanban.NewHoldSensor(300*time.Millisecond, 5))

	d.Press("QT-2", kanban.Point{X: 1, Y: 1}, now)
	assert.False(t, d.Tick(now.Add(100*time.Millisecond)))
	assert.True(t, d.Tick(now.Add(300*time.Millisecond)))
}
