package kanban

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// Controller owns the page window of one status column.
//
// At most one fetch is outstanding at a time. Local edits (InsertItem,
// RemoveItem) adjust the window and its aggregates without contacting the
// remote. All methods are safe for concurrent use.
type Controller struct {
	status   models.Status
	fetcher  remote.Fetcher
	pageSize int
	logger   *slog.Logger

	mu       sync.Mutex
	win      Window
	fetching bool
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// notifyMu serializes publishing so subscribers never observe an older
	// snapshot after a newer one
	notifyMu sync.Mutex
	subMu    sync.Mutex
	subs     map[int]func(Window)
	nextSub  int
}

// NewController creates an empty, idle column. Call FetchPage(0) to load it.
func NewController(status models.Status, fetcher remote.Fetcher, opts ...Option) *Controller {
	o := buildOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		status:   status,
		fetcher:  fetcher,
		pageSize: o.pageSize,
		logger:   o.logger.With("column", string(status)),
		win: Window{
			Status:   status,
			Items:    []models.Quote{},
			PageSize: o.pageSize,
		},
		ctx:    ctx,
		cancel: cancel,
		subs:   make(map[int]func(Window)),
	}
}

// Status returns the status this column shows
func (c *Controller) Status() models.Status {
	return c.status
}

// Snapshot returns the current window
func (c *Controller) Snapshot() Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.win
}

// Find returns the quote with id if it is in the current window
func (c *Controller) Find(id string) (models.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.win.IndexOf(id); i >= 0 {
		return c.win.Items[i], true
	}
	return models.Quote{}, false
}

// FetchPage loads page n from the remote. It returns false, and does
// nothing, while another fetch is outstanding or after Close.
//
// On success the window is replaced. On failure only IsLoading is cleared;
// the previous items stay visible and no error is surfaced.
func (c *Controller) FetchPage(n int) bool {
	c.mu.Lock()
	if c.closed || c.fetching {
		c.mu.Unlock()
		return false
	}
	c.fetching = true
	c.win.IsLoading = true
	ctx := c.ctx
	c.wg.Add(1)
	c.mu.Unlock()

	c.publish()
	go c.runFetch(ctx, n)
	return true
}

func (c *Controller) runFetch(ctx context.Context, n int) {
	defer c.wg.Done()

	page, err := c.fetcher.FetchColumnPage(ctx, models.PageRequest{
		Status:   c.status,
		Page:     n,
		PageSize: c.pageSize,
	})

	c.mu.Lock()
	c.fetching = false
	if c.closed || ctx.Err() != nil {
		c.mu.Unlock()
		c.logger.Debug("discarding fetch after close", "page", n)
		return
	}
	if err != nil || page == nil {
		c.win.IsLoading = false
		c.mu.Unlock()
		c.logger.Debug("fetch failed", "page", n, "error", err)
		c.publish()
		return
	}

	items := page.Data
	if len(items) > c.pageSize {
		items = items[:c.pageSize]
	}
	c.win = Window{
		Status:      c.status,
		Items:       slices.Clone(items),
		Page:        n,
		PageSize:    c.pageSize,
		Total:       page.Total,
		TotalAmount: page.TotalAmount,
		IsLoading:   false,
		HasMore:     page.HasMore,
	}
	c.mu.Unlock()

	c.publish()
}

// GoToPage clamps n into [0, PageCount-1] and fetches it
func (c *Controller) GoToPage(n int) bool {
	pages := c.Snapshot().PageCount()
	return c.FetchPage(clampPage(n, pages))
}

func clampPage(n, pages int) int {
	if pages <= 0 {
		return 0
	}
	return min(max(n, 0), pages-1)
}

// InsertItem places q at index (clamped to the window) and grows the column
// aggregates by one record. If the window is already full the last item is
// pushed out of it; that record now belongs to the next page.
func (c *Controller) InsertItem(q models.Quote, index int) {
	c.mu.Lock()
	idx := min(max(index, 0), len(c.win.Items))
	items := slices.Insert(slices.Clone(c.win.Items), idx, q)
	if len(items) > c.pageSize {
		items = items[:c.pageSize]
	}
	c.win.Items = items
	c.win.Total++
	c.win.TotalAmount += q.Amount
	c.mu.Unlock()

	c.publish()
}

// RemoveItem deletes the quote with id from the window and shrinks the
// column aggregates. It reports false, changing nothing, if id is absent.
func (c *Controller) RemoveItem(id string) bool {
	c.mu.Lock()
	i := c.win.IndexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	removed := c.win.Items[i]
	c.win.Items = slices.Delete(slices.Clone(c.win.Items), i, i+1)
	c.win.Total--
	c.win.TotalAmount -= removed.Amount
	c.mu.Unlock()

	c.publish()
	return true
}

// Subscribe registers fn to receive a snapshot after every change. fn runs
// on the goroutine that made the change and must not call InsertItem,
// RemoveItem or FetchPage on the same controller.
func (c *Controller) Subscribe(fn func(Window)) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Controller) publish() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.subMu.Lock()
	fns := make([]func(Window), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	if len(fns) == 0 {
		return
	}
	w := c.Snapshot()
	for _, fn := range fns {
		fn(w)
	}
}

// Close aborts any outstanding fetch. A fetch resolving afterwards is
// discarded and never written into the window.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

// Wait blocks until every fetch started so far has settled
func (c *Controller) Wait() {
	c.wg.Wait()
}
