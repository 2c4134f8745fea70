package quote

import "errors"

// Quote service validation errors
var (
	ErrEmptyQuoteID = errors.New("quote ID cannot be empty")
	ErrNilRemote    = errors.New("quote service requires a remote")
)
