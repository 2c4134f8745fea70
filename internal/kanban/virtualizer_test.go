package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indexes(rows []VirtualRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Index
	}
	return out
}

func TestVirtualizer_TopOfColumn(t *testing.T) {
	v := Virtualizer{Count: 50, RowHeight: 116, Overscan: 5, ViewportHeight: 580}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, indexes(v.Rows()))
	assert.Equal(t, 50*116, v.TotalSize())
}

func TestVirtualizer_Ranges(t *testing.T) {
	tests := []struct {
		name        string
		v           Virtualizer
		first, last int
		ok          bool
	}{
		{"scrolled middle", Virtualizer{Count: 50, RowHeight: 10, Overscan: 5, ViewportHeight: 30, ScrollOffset: 200}, 15, 27, true},
		{"near end", Virtualizer{Count: 50, RowHeight: 10, Overscan: 5, ViewportHeight: 30, ScrollOffset: 470}, 42, 49, true},
		{"fewer rows than viewport", Virtualizer{Count: 3, RowHeight: 10, Overscan: 5, ViewportHeight: 100}, 0, 2, true},
		{"no overscan", Virtualizer{Count: 50, RowHeight: 10, ViewportHeight: 25, ScrollOffset: 5}, 0, 2, true},
		{"empty", Virtualizer{Count: 0, RowHeight: 10, ViewportHeight: 100}, 0, -1, false},
		{"zero height rows", Virtualizer{Count: 5, ViewportHeight: 100}, 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, ok := tt.v.Range()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestVirtualizer_RowsCarryOffsets(t *testing.T) {
	v := Virtualizer{Count: 10, RowHeight: 6, Overscan: 1, ViewportHeight: 12, ScrollOffset: 12}
	rows := v.Rows()

	assert.Equal(t, []int{1, 2, 3, 4}, indexes(rows))
	assert.Equal(t, VirtualRow{Index: 1, Start: 6, Size: 6}, rows[0])
}

func TestVirtualizer_ClampAndScrollToIndex(t *testing.T) {
	v := Virtualizer{Count: 10, RowHeight: 6, ViewportHeight: 18}

	assert.Equal(t, 0, v.ClampOffset(-5))
	assert.Equal(t, 42, v.ClampOffset(1000))

	assert.Equal(t, 0, v.ScrollToIndex(2))
	assert.Equal(t, 6, v.ScrollToIndex(3))

	v.ScrollOffset = 30
	assert.Equal(t, 12, v.ScrollToIndex(2))
	assert.Equal(t, 30, v.ScrollToIndex(7))
	assert.Equal(t, 42, v.ScrollToIndex(99))
}
