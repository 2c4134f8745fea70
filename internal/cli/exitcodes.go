package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or anything not below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Bad flags, a bad config file, or a command run in the wrong mode.
	ExitUsage = 2

	// ExitNotFound indicates a requested quote or layout item was not found.
	ExitNotFound = 3

	// ExitConflict indicates the remote refused a move.
	// Use for: Stale source status, same-status moves, generic rejections.
	ExitConflict = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status names, negative pages, out-of-range page sizes.
	ExitValidation = 5

	// ExitUnavailable indicates the daemon could not be reached.
	ExitUnavailable = 69
)

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error

	// Reported is set once the error has been written to the user
	Reported bool
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: code, Err: err}
}

// Exitf wraps a formatted error with an explicit exit code
func Exitf(code int, format string, args ...any) error {
	return Exit(code, fmt.Errorf(format, args...))
}

// IsReported reports whether err was already written by a formatter
func IsReported(err error) bool {
	var exitErr *CommandError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// ExitCode maps err to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var dialErr *rpc.DialError
	if errors.As(err, &dialErr) {
		return ExitUnavailable
	}

	switch {
	case errors.Is(err, config.ErrInvalidMode):
		return ExitUsage
	case errors.Is(err, models.ErrQuoteNotFound),
		errors.Is(err, layout.ErrUnknownItem):
		return ExitNotFound
	case errors.Is(err, models.ErrStatusConflict),
		errors.Is(err, models.ErrSameStatus),
		errors.Is(err, models.ErrRejected):
		return ExitConflict
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPage),
		errors.Is(err, models.ErrInvalidPageSize),
		errors.Is(err, layout.ErrSizeMismatch):
		return ExitValidation
	}
	return ExitError
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitConflict:
		return "CONFLICT"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUnavailable:
		return "DAEMON_UNAVAILABLE"
	}
	return "ERROR"
}
