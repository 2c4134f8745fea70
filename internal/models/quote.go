package models

import "time"

// Quote is a single sales quote shown as a card on the board.
// Quotes are treated as immutable values; moving a quote produces a copy.
type Quote struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Customer    string     `json:"customer"`
	Items       int        `json:"items"`
	Amount      float64    `json:"amount"`
	Status      Status     `json:"status"`
	ValidUntil  *time.Time `json:"validUntil,omitempty"`
	SalesPerson string     `json:"salesPerson,omitempty"`
}

// WithStatus returns a copy of the quote carrying the given status
func (q Quote) WithStatus(s Status) Quote {
	q.Status = s
	if q.ValidUntil != nil {
		v := *q.ValidUntil
		q.ValidUntil = &v
	}
	return q
}

// PageRequest asks a remote for one page of a status column
type PageRequest struct {
	Status   Status `json:"status"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// Page is one page of a column as returned by a remote.
// Total and TotalAmount describe the whole column, not just Data.
type Page struct {
	Data        []Quote `json:"data"`
	Total       int     `json:"total"`
	Page        int     `json:"page"`
	PageSize    int     `json:"pageSize"`
	TotalAmount float64 `json:"totalAmount"`
	HasMore     bool    `json:"hasMore"`
}

// StatusUpdate moves one quote from one status to another
type StatusUpdate struct {
	ID         string `json:"id"`
	FromStatus Status `json:"fromStatus"`
	ToStatus   Status `json:"toStatus"`
}

// StatusUpdateResult is the remote's answer to a StatusUpdate
type StatusUpdateResult struct {
	Success bool   `json:"success"`
	Quote   *Quote `json:"record,omitempty"`
}
