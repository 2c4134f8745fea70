package kanban

import "errors"

var (
	// ErrDragInProgress indicates a second drag was started while one is active
	ErrDragInProgress = errors.New("a drag session is already active")

	// ErrNoSession indicates a drop or cancel without an active drag session
	ErrNoSession = errors.New("no active drag session")

	// ErrUnknownColumn indicates a status that has no column on the board
	ErrUnknownColumn = errors.New("unknown board column")
)
