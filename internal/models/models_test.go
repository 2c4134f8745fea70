package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	all := []error{
		ErrInvalidStatus, ErrQuoteNotFound, ErrStatusConflict,
		ErrSameStatus, ErrInvalidPage, ErrInvalidPageSize, ErrRejected,
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"accepted", StatusAccepted, false},
		{" Pending ", StatusPending, false},
		{"DECLINED", StatusDeclined, false},
		{"archived", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_BoardOrder(t *testing.T) {
	assert.Equal(t, []Status{StatusAccepted, StatusPending, StatusDeclined}, Statuses)
	assert.Equal(t, 0, StatusAccepted.Index())
	assert.Equal(t, 2, StatusDeclined.Index())
	assert.Equal(t, -1, Status("x").Index())
	assert.Equal(t, "Pending", StatusPending.Label())
}

// ============================================================================
// Quote Tests
// ============================================================================

func TestQuote_WithStatusCopies(t *testing.T) {
	valid := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	q := Quote{ID: "QT-1", Amount: 10, Status: StatusPending, ValidUntil: &valid}

	moved := q.WithStatus(StatusAccepted)

	assert.Equal(t, StatusPending, q.Status)
	assert.Equal(t, StatusAccepted, moved.Status)
	assert.Equal(t, q.ID, moved.ID)
	require.NotNil(t, moved.ValidUntil)
	assert.NotSame(t, q.ValidUntil, moved.ValidUntil)
	assert.True(t, valid.Equal(*moved.ValidUntil))
}
