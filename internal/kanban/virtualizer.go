package kanban

// DefaultOverscan is the number of extra rows rendered on each side of the
// visible range
const DefaultOverscan = 5

// VirtualRow is one row to render: its window index and vertical extent
type VirtualRow struct {
	Index int
	Start int
	Size  int
}

// Virtualizer maps a scroll position to the window rows worth rendering.
// RowHeight includes the gap between rows.
type Virtualizer struct {
	Count          int
	RowHeight      int
	Overscan       int
	ViewportHeight int
	ScrollOffset   int
}

// Range returns the inclusive index range intersecting the viewport,
// widened by Overscan and clipped to the rows that exist.
func (v Virtualizer) Range() (first, last int, ok bool) {
	if v.Count <= 0 || v.RowHeight <= 0 {
		return 0, -1, false
	}

	offset := max(v.ScrollOffset, 0)
	top := offset / v.RowHeight
	bottom := top
	if v.ViewportHeight > 0 {
		bottom = (offset + v.ViewportHeight - 1) / v.RowHeight
	}

	first = min(max(top-max(v.Overscan, 0), 0), v.Count-1)
	last = min(bottom+max(v.Overscan, 0), v.Count-1)
	return first, last, true
}

// Rows returns the rows to render in index order
func (v Virtualizer) Rows() []VirtualRow {
	first, last, ok := v.Range()
	if !ok {
		return nil
	}
	rows := make([]VirtualRow, 0, last-first+1)
	for i := first; i <= last; i++ {
		rows = append(rows, VirtualRow{Index: i, Start: i * v.RowHeight, Size: v.RowHeight})
	}
	return rows
}

// TotalSize is the height of the spacer that holds every row
func (v Virtualizer) TotalSize() int {
	return max(v.Count, 0) * max(v.RowHeight, 0)
}

// ClampOffset limits offset to the scrollable extent
func (v Virtualizer) ClampOffset(offset int) int {
	return min(max(offset, 0), max(v.TotalSize()-v.ViewportHeight, 0))
}

// ScrollToIndex returns the smallest change to ScrollOffset that brings row
// index fully into view
func (v Virtualizer) ScrollToIndex(index int) int {
	if v.RowHeight <= 0 || v.Count <= 0 {
		return 0
	}
	index = min(max(index, 0), v.Count-1)
	top := index * v.RowHeight
	bottom := top + v.RowHeight

	switch {
	case top < v.ScrollOffset:
		return v.ClampOffset(top)
	case bottom > v.ScrollOffset+v.ViewportHeight:
		return v.ClampOffset(bottom - v.ViewportHeight)
	}
	return v.ClampOffset(v.ScrollOffset)
}
