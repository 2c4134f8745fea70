package kanban

import (
	"math"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

// Activation defaults for pointer input
const (
	DefaultDragDistance  = 8
	DefaultHoldDelay     = 300 * time.Millisecond
	DefaultHoldTolerance = 5
)

// Point is a pointer position in the caller's units (cells or pixels)
type Point struct {
	X, Y int
}

func distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// ActivationSensor decides when a pressed pointer becomes a drag.
// Move and Tick report true exactly once, at the moment of activation.
type ActivationSensor interface {
	Press(p Point, now time.Time)
	Move(p Point, now time.Time) bool
	Tick(now time.Time) bool
	Release() (wasActive bool)
	Active() bool
	Pressed() bool
}

// PointerSensor activates once the pointer has travelled more than
// Distance from where it was pressed.
type PointerSensor struct {
	Distance float64

	origin  Point
	pressed bool
	active  bool
}

// NewPointerSensor returns a sensor with the given activation distance
func NewPointerSensor(d float64) *PointerSensor {
	if d <= 0 {
		d = DefaultDragDistance
	}
	return &PointerSensor{Distance: d}
}

func (s *PointerSensor) Press(p Point, _ time.Time) {
	s.origin, s.pressed, s.active = p, true, false
}

func (s *PointerSensor) Move(p Point, _ time.Time) bool {
	if !s.pressed || s.active {
		return false
	}
	if distance(s.origin, p) > s.Distance {
		s.active = true
		return true
	}
	return false
}

// Tick never activates a distance sensor
func (s *PointerSensor) Tick(time.Time) bool { return false }

func (s *PointerSensor) Release() bool {
	was := s.active
	s.pressed, s.active = false, false
	return was
}

func (s *PointerSensor) Active() bool  { return s.active }
func (s *PointerSensor) Pressed() bool { return s.pressed }

// HoldSensor activates once the press has been held for Delay without the
// pointer leaving Tolerance. Moving farther first aborts the press.
type HoldSensor struct {
	Delay     time.Duration
	Tolerance float64

	origin    Point
	pressedAt time.Time
	pressed   bool
	active    bool
}

// NewHoldSensor returns a sensor with the given delay and tolerance
func NewHoldSensor(delay time.Duration, tolerance float64) *HoldSensor {
	if delay <= 0 {
		delay = DefaultHoldDelay
	}
	if tolerance < 0 {
		tolerance = DefaultHoldTolerance
	}
	return &HoldSensor{Delay: delay, Tolerance: tolerance}
}

func (s *HoldSensor) Press(p Point, now time.Time) {
	s.origin, s.pressedAt, s.pressed, s.active = p, now, true, false
}

func (s *HoldSensor) Move(p Point, now time.Time) bool {
	if !s.pressed || s.active {
		return false
	}
	if distance(s.origin, p) > s.Tolerance {
		s.pressed = false
		return false
	}
	return s.Tick(now)
}

func (s *HoldSensor) Tick(now time.Time) bool {
	if !s.pressed || s.active {
		return false
	}
	if now.Sub(s.pressedAt) >= s.Delay {
		s.active = true
		return true
	}
	return false
}

func (s *HoldSensor) Release() bool {
	was := s.active
	s.pressed, s.active = false, false
	return was
}

func (s *HoldSensor) Active() bool  { return s.active }
func (s *HoldSensor) Pressed() bool { return s.pressed }

// KeyboardSensor drives a drag with discrete steps: pick up a card, move
// the over-target across columns, then drop or cancel.
type KeyboardSensor struct {
	coord *Coordinator
	order []models.Status
	over  int
}

// NewKeyboardSensor creates a keyboard sensor over the coordinator's columns
func NewKeyboardSensor(coord *Coordinator) *KeyboardSensor {
	return &KeyboardSensor{coord: coord, order: coord.order}
}

// PickUp starts a session for id with the over-target on its own column
func (k *KeyboardSensor) PickUp(id string) (Session, error) {
	s, err := k.coord.Start(id)
	if err != nil {
		return Session{}, err
	}
	for i, st := range k.order {
		if st == s.Source {
			k.over = i
		}
	}
	return s, nil
}

// Step moves the over-target by delta columns, clamped to the board
func (k *KeyboardSensor) Step(delta int) models.Status {
	if len(k.order) == 0 {
		return ""
	}
	k.over = min(max(k.over+delta, 0), len(k.order)-1)
	return k.order[k.over]
}

// Over returns the column the drag is currently over
func (k *KeyboardSensor) Over() (models.Status, bool) {
	if _, ok := k.coord.Active(); !ok || len(k.order) == 0 {
		return "", false
	}
	return k.order[k.over], true
}

// Drop releases over the current column
func (k *KeyboardSensor) Drop() (Move, bool) {
	st, ok := k.Over()
	if !ok {
		return Move{}, false
	}
	return k.coord.Drop(ColumnTarget(st))
}

// Cancel abandons the drag
func (k *KeyboardSensor) Cancel() {
	k.coord.Cancel()
}

// Compile-time verification of the pointer sensors
var (
	_ ActivationSensor = (*PointerSensor)(nil)
	_ ActivationSensor = (*HoldSensor)(nil)
)
