package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quoteboard/internal/config/colors"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		pages   int
		want    int
		wantErr bool
	}{
		{"first", "1", 10, 0, false},
		{"last", " 10 ", 10, 9, false},
		{"zero", "0", 10, 0, true},
		{"past end", "11", 10, 0, true},
		{"garbage", "abc", 10, 0, true},
		{"empty column", "1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.in, tt.pages)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateJumpForm(t *testing.T) {
	var page string
	form := CreateJumpForm("Pending", 4, &page)
	require.NotNil(t, form)
}

func TestStatusAccent(t *testing.T) {
	cs := *colors.Default()

	assert.Equal(t, cs.Accepted, statusAccent(cs, models.StatusAccepted))
	assert.Equal(t, cs.Pending, statusAccent(cs, models.StatusPending))
	assert.Equal(t, cs.Declined, statusAccent(cs, models.StatusDeclined))
	assert.Equal(t, cs.Accent, statusAccent(cs, ""))
	assert.NotNil(t, CreateBoardTheme(cs, models.StatusPending))
}
