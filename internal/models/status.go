package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a quote. Each status owns one board column.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusPending  Status = "pending"
	StatusDeclined Status = "declined"
)

// Statuses lists every status in board order (left to right)
var Statuses = []Status{StatusAccepted, StatusPending, StatusDeclined}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusAccepted, StatusPending, StatusDeclined:
		return true
	}
	return false
}

// Label returns the column title for the status
func (s Status) Label() string {
	switch s {
	case StatusAccepted:
		return "Accepted"
	case StatusPending:
		return "Pending"
	case StatusDeclined:
		return "Declined"
	}
	return string(s)
}

// Index returns the board position of the status, or -1 if unknown
func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStatus converts user or wire input into a Status
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
	return s, nil
}
