package config

import "errors"

// Validation errors returned by Config.Validate
var (
	ErrInvalidMode       = errors.New("remote.mode must be simulated, sqlite or daemon")
	ErrInvalidRate       = errors.New("failure rates must be between 0 and 1")
	ErrInvalidPageSize   = errors.New("board.page_size out of range")
	ErrInvalidLogLevel   = errors.New("logging.level must be debug, info, warn or error")
	ErrInvalidActivation = errors.New("input.pointer_activation must be distance or hold")
)
