package rpc

import (
	"errors"
	"os"
	"syscall"
)

var (
	ErrClientClosed   = errors.New("rpc client closed")
	ErrConnectionLost = errors.New("connection to daemon lost")
	ErrBadRequest     = errors.New("bad request")
	ErrVersion        = errors.New("protocol version mismatch")
)

// DialErrorCode represents the ways reaching the daemon can fail
type DialErrorCode int

const (
	ErrSocketNotFound DialErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// DialError is a dial failure with a hint for the user
type DialError struct {
	Code    DialErrorCode
	Message string
	Hint    string
	Err     error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

func (e *DialError) Unwrap() error { return e.Err }

// ClassifyError maps common dial errors to a DialError
func ClassifyError(err error) *DialError {
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return &DialError{
			Code:    ErrSocketNotFound,
			Message: "Socket file not found",
			Hint:    "Start the daemon: quoteboard serve",
			Err:     err,
		}
	}

	if errors.Is(err, os.ErrPermission) {
		return &DialError{
			Code:    ErrSocketPermission,
			Message: "Permission denied",
			Hint:    "Check ~/.quoteboard/ permissions: chmod 700 ~/.quoteboard/",
			Err:     err,
		}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNREFUSED {
		return &DialError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "The daemon may have crashed. Restart it: quoteboard serve",
			Err:     err,
		}
	}

	return &DialError{
		Code:    ErrDaemonNotRunning,
		Message: "Daemon not running",
		Hint:    "Start the daemon: quoteboard serve",
		Err:     err,
	}
}
