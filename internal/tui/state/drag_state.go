package state

import (
	"time"

	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// DragState tracks pointer input between a press on a card and the
// moment the drag coordinator owns the session.
type DragState struct {
	sensor kanban.ActivationSensor

	// pressedID is the card under the pointer when it was pressed
	pressedID string

	pointer kanban.Point

	// keyboard is set when the active session was started by PickUp
	keyboard bool

	// over is the column currently under the drag
	over    models.Status
	hasOver bool
}

// NewDragState wraps the pointer activation sensor.
func NewDragState(sensor kanban.ActivationSensor) *DragState {
	return &DragState{sensor: sensor}
}

// Press records a pointer press on card id.
func (d *DragState) Press(id string, p kanban.Point, now time.Time) {
	d.pressedID = id
	d.pointer = p
	d.sensor.Press(p, now)
}

// Move updates the pointer and reports whether the drag just activated.
func (d *DragState) Move(p kanban.Point, now time.Time) bool {
	d.pointer = p
	return d.sensor.Move(p, now)
}

// Tick reports whether a held press just activated.
func (d *DragState) Tick(now time.Time) bool {
	return d.sensor.Tick(now)
}

// Release ends the press and reports whether a drag was active.
func (d *DragState) Release() bool {
	d.pressedID = ""
	return d.sensor.Release()
}

// Pressed reports whether the pointer is down on a card.
func (d *DragState) Pressed() bool {
	return d.sensor.Pressed()
}

// PressedID returns the card the pointer was pressed on.
func (d *DragState) PressedID() string {
	return d.pressedID
}

// Pointer returns the last known pointer position.
func (d *DragState) Pointer() kanban.Point {
	return d.pointer
}

// SetKeyboard marks whether the current session is keyboard driven.
func (d *DragState) SetKeyboard(v bool) {
	d.keyboard = v
}

// Keyboard reports whether the current session is keyboard driven.
func (d *DragState) Keyboard() bool {
	return d.keyboard
}

// SetOver records the column under the drag.
func (d *DragState) SetOver(s models.Status) {
	d.over, d.hasOver = s, true
}

// ClearOver forgets the column under the drag.
func (d *DragState) ClearOver() {
	d.over, d.hasOver = "", false
}

// Over returns the column under the drag.
func (d *DragState) Over() (models.Status, bool) {
	return d.over, d.hasOver
}

// Reset clears everything after a drop or cancel.
func (d *DragState) Reset() {
	if d.sensor.Pressed() {
		d.sensor.Release()
	}
	d.pressedID = ""
	d.keyboard = false
	d.ClearOver()
}
