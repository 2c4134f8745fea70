package rpc

import (
	"errors"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

// ProtocolVersion is bumped whenever Request or Response change shape
const ProtocolVersion = 1

// MessageType names the operation carried by a request
type MessageType string

const (
	TypeFetchPage    MessageType = "fetch_page"
	TypeUpdateStatus MessageType = "update_status"
	TypePing         MessageType = "ping"
)

// Request is one newline-delimited JSON message from client to server
type Request struct {
	Version int                  `json:"version"`
	ID      string               `json:"id"`
	Type    MessageType          `json:"type"`
	Fetch   *models.PageRequest  `json:"fetch,omitempty"`
	Update  *models.StatusUpdate `json:"update,omitempty"`
}

// Response answers the request with the same ID
type Response struct {
	Version int                        `json:"version"`
	ID      string                     `json:"id"`
	Type    MessageType                `json:"type"`
	Page    *models.Page               `json:"page,omitempty"`
	Update  *models.StatusUpdateResult `json:"update,omitempty"`
	Metrics *MetricsSnapshot           `json:"metrics,omitempty"`
	Error   *WireError                 `json:"error,omitempty"`
}

// MetricsSnapshot is the server's counters at a point in time
type MetricsSnapshot struct {
	RequestsTotal    int64         `json:"requests_total"`
	FetchesTotal     int64         `json:"fetches_total"`
	UpdatesTotal     int64         `json:"updates_total"`
	FailuresTotal    int64         `json:"failures_total"`
	ConnectedClients int64         `json:"connected_clients"`
	Uptime           time.Duration `json:"uptime_ns"`
	StartTime        time.Time     `json:"start_time"`
}

// Wire error codes
const (
	CodeInvalidStatus   = "invalid_status"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeSameStatus      = "same_status"
	CodeInvalidPage     = "invalid_page"
	CodeInvalidPageSize = "invalid_page_size"
	CodeRejected        = "rejected"
	CodeBadRequest      = "bad_request"
	CodeInternal        = "internal"
)

var codeSentinels = []struct {
	code string
	err  error
}{
	{CodeInvalidStatus, models.ErrInvalidStatus},
	{CodeNotFound, models.ErrQuoteNotFound},
	{CodeConflict, models.ErrStatusConflict},
	{CodeSameStatus, models.ErrSameStatus},
	{CodeInvalidPage, models.ErrInvalidPage},
	{CodeInvalidPageSize, models.ErrInvalidPageSize},
	{CodeRejected, models.ErrRejected},
	{CodeBadRequest, ErrBadRequest},
}

// WireError carries a failure across the socket. It unwraps to the model
// sentinel named by Code so errors.Is keeps working on the client side.
type WireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *WireError) Error() string {
	return e.Message
}

func (e *WireError) Unwrap() error {
	for _, cs := range codeSentinels {
		if cs.code == e.Code {
			return cs.err
		}
	}
	return nil
}

// EncodeError converts err to its wire form, nil for nil
func EncodeError(err error) *WireError {
	if err == nil {
		return nil
	}
	code := CodeInternal
	for _, cs := range codeSentinels {
		if errors.Is(err, cs.err) {
			code = cs.code
			break
		}
	}
	return &WireError{Code: code, Message: err.Error()}
}
