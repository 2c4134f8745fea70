package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Status
		wantErr bool
	}{
		{"accepted", models.StatusAccepted, false},
		{"PENDING", models.StatusPending, false},
		{" declined ", models.StatusDeclined, false},
		{"won", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePage(t *testing.T) {
	got, err := ParsePage("3")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	for _, bad := range []string{"0", "-1", "two"} {
		_, err := ParsePage(bad)
		assert.ErrorIs(t, err, models.ErrInvalidPage, bad)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$0.00", FormatAmount(0))
	assert.Equal(t, "$999.50", FormatAmount(999.5))
	assert.Equal(t, "$1,234,567.89", FormatAmount(1234567.891))
	assert.Equal(t, "-$12,000.00", FormatAmount(-12000))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit", Exit(ExitUsage, errors.New("bad flag")), ExitUsage},
		{"not found", fmt.Errorf("move: %w", models.ErrQuoteNotFound), ExitNotFound},
		{"conflict", models.ErrStatusConflict, ExitConflict},
		{"rejected", models.ErrRejected, ExitConflict},
		{"validation", models.ErrInvalidPageSize, ExitValidation},
		{"layout item", layout.ErrUnknownItem, ExitNotFound},
		{"layout size", layout.ErrSizeMismatch, ExitValidation},
		{"daemon down", &rpc.DialError{Message: "no daemon"}, ExitUnavailable},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitNil(t *testing.T) {
	assert.NoError(t, Exit(ExitError, nil))
}
