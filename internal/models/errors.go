package models

import "errors"

// Domain errors shared by every remote implementation
var (
	// ErrInvalidStatus indicates a status outside accepted/pending/declined
	ErrInvalidStatus = errors.New("invalid quote status")

	// ErrQuoteNotFound indicates that no record carries the requested id
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrStatusConflict indicates the record is no longer in the expected status
	ErrStatusConflict = errors.New("quote is not in the expected status")

	// ErrSameStatus indicates a move whose source and target are equal
	ErrSameStatus = errors.New("source and target status are the same")

	// ErrInvalidPage indicates a negative page index
	ErrInvalidPage = errors.New("page must not be negative")

	// ErrInvalidPageSize indicates a page size outside the accepted range
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrRejected is the generic rejection used when a remote refuses a call
	// without a more specific reason
	ErrRejected = errors.New("request rejected by remote")
)
