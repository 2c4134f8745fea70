package kanban

import "github.com/thenoetrevino/quoteboard/internal/models"

// Window is an immutable snapshot of one column: the current page of quotes
// plus the aggregates of the whole column. Items is never modified after a
// snapshot is taken, so a Window may be shared freely.
type Window struct {
	Status      models.Status
	Items       []models.Quote
	Page        int
	PageSize    int
	Total       int
	TotalAmount float64
	IsLoading   bool
	HasMore     bool
}

// PageCount returns ceil(Total/PageSize)
func (w Window) PageCount() int {
	if w.PageSize <= 0 || w.Total <= 0 {
		return 0
	}
	return (w.Total + w.PageSize - 1) / w.PageSize
}

// IndexOf returns the position of id in the window or -1
func (w Window) IndexOf(id string) int {
	for i, q := range w.Items {
		if q.ID == id {
			return i
		}
	}
	return -1
}
