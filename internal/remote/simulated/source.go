package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// column is the state of one status: the generated records minus the ones
// moved out, preceded by the records moved in (newest first).
type column struct {
	base    int
	removed []int          // sorted generated indexes moved out
	added   []models.Quote // moved in, newest first

	baseAmount    float64
	baseAmountSet bool
	delta         float64
}

func (c *column) total() int {
	return c.base - len(c.removed) + len(c.added)
}

// nthBase returns the generated index of the k-th generated record that was
// not moved out.
func (c *column) nthBase(k int) int {
	idx := k
	for {
		next := k + sort.SearchInts(c.removed, idx+1)
		if next == idx {
			return idx
		}
		idx = next
	}
}

func (c *column) isRemoved(idx int) bool {
	_, found := slices.BinarySearch(c.removed, idx)
	return found
}

// Source is an in-memory Remote over the generated dataset plus every move
// applied through UpdateStatus. It is safe for concurrent use.
type Source struct {
	mu      sync.Mutex
	columns map[models.Status]*column
	moved   map[string]models.Status // current status of every moved id
	logger  *slog.Logger
}

// Option configures a Source
type Option func(*Source)

// WithTotals overrides the number of generated records per status
func WithTotals(totals map[models.Status]int) Option {
	return func(s *Source) {
		for st, n := range totals {
			if c, ok := s.columns[st]; ok && n >= 0 {
				c.base = min(n, idStride)
			}
		}
	}
}

// WithLogger sets the logger used for move diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) { s.logger = l }
}

// DefaultTotals returns the default column sizes
func DefaultTotals() map[models.Status]int {
	return map[models.Status]int{
		models.StatusAccepted: models.DefaultAcceptedTotal,
		models.StatusPending:  models.DefaultPendingTotal,
		models.StatusDeclined: models.DefaultDeclinedTotal,
	}
}

// NewSource creates a Source with the default totals unless overridden
func NewSource(opts ...Option) *Source {
	s := &Source{
		columns: make(map[models.Status]*column, len(models.Statuses)),
		moved:   make(map[string]models.Status),
		logger:  slog.Default(),
	}
	for st, n := range DefaultTotals() {
		s.columns[st] = &column{base: n}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchColumnPage returns one page of the requested column
func (s *Source) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, req.Status)
	}
	if req.Page < 0 {
		return nil, models.ErrInvalidPage
	}
	if req.PageSize <= 0 {
		return nil, models.ErrInvalidPageSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.columns[req.Status]
	total := c.total()
	start := req.Page * req.PageSize
	end := min(start+req.PageSize, total)

	data := make([]models.Quote, 0, max(end-start, 0))
	for i := start; i < end && i < len(c.added); i++ {
		data = append(data, c.added[i])
	}
	if end > len(c.added) {
		k := max(start-len(c.added), 0)
		idx := c.nthBase(k)
		for len(data) < end-start && idx < c.base {
			if !c.isRemoved(idx) {
				data = append(data, Generate(idx, req.Status))
			}
			idx++
		}
	}

	return &models.Page{
		Data:        data,
		Total:       total,
		Page:        req.Page,
		PageSize:    req.PageSize,
		TotalAmount: s.totalAmount(req.Status),
		HasMore:     end < total,
	}, nil
}

// UpdateStatus moves a quote to the head of the target column
func (s *Source) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !upd.FromStatus.Valid() || !upd.ToStatus.Valid() {
		return nil, models.ErrInvalidStatus
	}
	if upd.FromStatus == upd.ToStatus {
		return nil, models.ErrSameStatus
	}

	origin, index, err := ParseQuoteID(upd.ID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index >= s.columns[origin].base {
		return nil, fmt.Errorf("%w: %s", models.ErrQuoteNotFound, upd.ID)
	}

	current, wasMoved := s.moved[upd.ID]
	if !wasMoved {
		current = origin
	}
	if current != upd.FromStatus {
		return nil, fmt.Errorf("%w: %s is %s", models.ErrStatusConflict, upd.ID, current)
	}

	from := s.columns[current]
	var q models.Quote
	if wasMoved {
		i := slices.IndexFunc(from.added, func(a models.Quote) bool { return a.ID == upd.ID })
		q = from.added[i]
		from.added = slices.Delete(from.added, i, i+1)
	} else {
		q = Generate(index, origin)
		pos, _ := slices.BinarySearch(from.removed, index)
		from.removed = slices.Insert(from.removed, pos, index)
	}
	from.delta -= q.Amount

	moved := q.WithStatus(upd.ToStatus)
	to := s.columns[upd.ToStatus]
	to.added = slices.Insert(to.added, 0, moved)
	to.delta += moved.Amount
	s.moved[upd.ID] = upd.ToStatus

	s.logger.Debug("quote moved", "id", upd.ID, "from", upd.FromStatus, "to", upd.ToStatus)

	return &models.StatusUpdateResult{Success: true, Quote: &moved}, nil
}

// Totals reports the current record count of every column
func (s *Source) Totals() map[models.Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[models.Status]int, len(s.columns))
	for st, c := range s.columns {
		out[st] = c.total()
	}
	return out
}

// totalAmount must be called with s.mu held. The sum over the generated
// records is computed once per status and then adjusted by moves.
func (s *Source) totalAmount(st models.Status) float64 {
	c := s.columns[st]
	if !c.baseAmountSet {
		var sum float64
		for i := range c.base {
			sum += Generate(i, st).Amount
		}
		c.baseAmount = sum
		c.baseAmountSet = true
	}
	return c.baseAmount + c.delta
}

// Compile-time verification that *Source implements remote.Remote
var _ remote.Remote = (*Source)(nil)
