package kanban

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

func TestPointerSensor_ActivatesBeyondDistance(t *testing.T) {
	s := NewPointerSensor(8)
	now := time.Now()

	assert.False(t, s.Move(Point{20, 20}, now), "moving without a press does nothing")

	s.Press(Point{10, 10}, now)
	assert.False(t, s.Move(Point{18, 10}, now), "exactly the distance is not enough")
	assert.True(t, s.Move(Point{16, 17}, now))
	assert.True(t, s.Active())
	assert.False(t, s.Move(Point{40, 40}, now), "activation fires once")

	assert.True(t, s.Release())
	assert.False(t, s.Active())
	assert.False(t, s.Release())
}

func TestHoldSensor_ActivatesAfterDelay(t *testing.T) {
	s := NewHoldSensor(300*time.Millisecond, 5)
	start := time.Now()

	s.Press(Point{0, 0}, start)
	assert.False(t, s.Tick(start.Add(299*time.Millisecond)))
	assert.False(t, s.Move(Point{3, 4}, start.Add(100*time.Millisecond)), "within tolerance")
	assert.True(t, s.Tick(start.Add(300*time.Millisecond)))
	assert.True(t, s.Active())
	assert.True(t, s.Release())
}

func TestHoldSensor_MovingBeyondToleranceAborts(t *testing.T) {
	s := NewHoldSensor(300*time.Millisecond, 5)
	start := time.Now()

	s.Press(Point{0, 0}, start)
	assert.False(t, s.Move(Point{6, 0}, start.Add(50*time.Millisecond)))
	assert.False(t, s.Pressed())
	assert.False(t, s.Tick(start.Add(time.Second)))
	assert.False(t, s.Release())
}

func TestKeyboardSensor_StepsAndDrops(t *testing.T) {
	b := mountedBoard(t, defaultFake())
	k := NewKeyboardSensor(b.Drag())
	q := b.Column(models.StatusAccepted).Snapshot().Items[0]

	_, ok := k.Over()
	assert.False(t, ok)

	_, err := k.PickUp(q.ID)
	require.NoError(t, err)
	over, ok := k.Over()
	require.True(t, ok)
	assert.Equal(t, models.StatusAccepted, over)

	assert.Equal(t, models.StatusAccepted, k.Step(-1), "clamped at the first column")
	assert.Equal(t, models.StatusDeclined, k.Step(5))
	assert.Equal(t, models.StatusPending, k.Step(-1))

	mv, ok := k.Drop()
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, mv.To)
	b.Wait()
	assert.Equal(t, 0, b.Column(models.StatusPending).Snapshot().IndexOf(q.ID))
}

func TestKeyboardSensor_Cancel(t *testing.T) {
	b := mountedBoard(t, defaultFake())
	k := NewKeyboardSensor(b.Drag())
	q := b.Column(models.StatusPending).Snapshot().Items[2]

	_, err := k.PickUp(q.ID)
	require.NoError(t, err)
	k.Step(1)
	k.Cancel()

	_, ok := k.Drop()
	assert.False(t, ok)
	assert.Equal(t, 2, b.Column(models.StatusPending).Snapshot().IndexOf(q.ID))
}

func TestSensors_ShareOneSession(t *testing.T) {
	b := mountedBoard(t, defaultFake())
	k := NewKeyboardSensor(b.Drag())
	a := b.Column(models.StatusAccepted).Snapshot().Items[0]
	p := b.Column(models.StatusPending).Snapshot().Items[0]

	_, err := b.Drag().Start(a.ID)
	require.NoError(t, err)
	_, err = k.PickUp(p.ID)
	assert.ErrorIs(t, err, ErrDragInProgress)
}
