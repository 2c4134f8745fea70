package kanban

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// Session is an active drag: a snapshot of the dragged quote and the column
// it was picked up from.
type Session struct {
	Quote     models.Quote
	Source    models.Status
	StartedAt time.Time
}

// Target is what a drag was released over: a column, or a card whose
// current column is the destination.
type Target struct {
	Column models.Status
	CardID string
}

// ColumnTarget targets the column for status
func ColumnTarget(s models.Status) Target {
	return Target{Column: s}
}

// CardTarget targets whichever column currently holds the card id
func CardTarget(id string) Target {
	return Target{CardID: id}
}

// Move is an accepted drop. Quote is the original snapshot taken at pick-up.
type Move struct {
	Quote models.Quote
	From  models.Status
	To    models.Status
}

// Result reports the settlement of a Move. A non-nil Err means the remote
// rejected the change and the move was rolled back.
type Result struct {
	Move   Move
	Record *models.Quote
	Err    error
}

// RolledBack reports whether the move was undone
func (r Result) RolledBack() bool {
	return r.Err != nil
}

// Coordinator owns the drag session of one board. It is the only writer of
// cross-column changes: a drop removes the quote from its source, inserts
// it at the head of the target and then asks the remote to persist the new
// status. A rejection applies the exact inverse once.
type Coordinator struct {
	columns map[models.Status]*Controller
	order   []models.Status
	mutator remote.Mutator
	logger  *slog.Logger

	mu      sync.Mutex
	session *Session

	// in-flight commits; they run on a background context and outlive Close
	wg sync.WaitGroup

	subMu   sync.Mutex
	subs    map[int]func(Result)
	nextSub int
}

// NewCoordinator creates an idle coordinator over the given columns.
// Columns are searched in slice order when resolving a quote id.
func NewCoordinator(mutator remote.Mutator, columns []*Controller, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		columns: make(map[models.Status]*Controller, len(columns)),
		mutator: mutator,
		logger:  logger,
		subs:    make(map[int]func(Result)),
	}
	for _, col := range columns {
		c.columns[col.Status()] = col
		c.order = append(c.order, col.Status())
	}
	return c
}

// Start begins a drag of the quote with id. It fails with
// ErrDragInProgress while another session is active, and with
// models.ErrQuoteNotFound if no column window holds the id.
func (c *Coordinator) Start(id string) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return Session{}, ErrDragInProgress
	}

	for _, st := range c.order {
		if q, ok := c.columns[st].Find(id); ok {
			c.session = &Session{Quote: q, Source: st, StartedAt: time.Now()}
			c.logger.Debug("drag started", "id", id, "source", st)
			return *c.session, nil
		}
	}
	return Session{}, fmt.Errorf("%w: %s", models.ErrQuoteNotFound, id)
}

// Active returns the current session, if any
func (c *Coordinator) Active() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Cancel ends the session without any change
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}

// Resolve returns the destination status for t. A card target resolves to
// the column currently containing the card.
func (c *Coordinator) Resolve(t Target) (models.Status, bool) {
	if t.CardID != "" {
		for _, st := range c.order {
			if _, ok := c.columns[st].Find(t.CardID); ok {
				return st, true
			}
		}
	}
	if _, ok := c.columns[t.Column]; ok {
		return t.Column, true
	}
	return "", false
}

// Drop ends the session over t. An unresolvable target or a target equal
// to the source is a silent cancellation and returns false. Otherwise the
// move is applied locally at once, the status mutation runs in the
// background, and the returned Move describes what was applied.
func (c *Coordinator) Drop(t Target) (Move, bool) {
	c.mu.Lock()
	s := c.session
	c.session = nil
	c.mu.Unlock()

	if s == nil {
		return Move{}, false
	}

	to, ok := c.Resolve(t)
	if !ok || to == s.Source {
		c.logger.Debug("drop cancelled", "id", s.Quote.ID, "target", t)
		return Move{}, false
	}

	mv := Move{Quote: s.Quote, From: s.Source, To: to}
	c.columns[mv.From].RemoveItem(mv.Quote.ID)
	c.columns[mv.To].InsertItem(mv.Quote.WithStatus(mv.To), 0)

	c.wg.Add(1)
	go c.commit(mv)
	return mv, true
}

func (c *Coordinator) commit(mv Move) {
	defer c.wg.Done()

	res, err := c.mutator.UpdateStatus(context.Background(), models.StatusUpdate{
		ID:         mv.Quote.ID,
		FromStatus: mv.From,
		ToStatus:   mv.To,
	})
	if err == nil && (res == nil || !res.Success) {
		err = models.ErrRejected
	}

	result := Result{Move: mv, Err: err}
	if err != nil {
		c.columns[mv.To].RemoveItem(mv.Quote.ID)
		c.columns[mv.From].InsertItem(mv.Quote, 0)
		c.logger.Warn("move rolled back", "id", mv.Quote.ID, "from", mv.From, "to", mv.To, "error", err)
	} else {
		result.Record = res.Quote
		c.logger.Debug("move committed", "id", mv.Quote.ID, "from", mv.From, "to", mv.To)
	}

	c.subMu.Lock()
	fns := make([]func(Result), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn(result)
	}
}

// Subscribe registers fn to be called whenever a move settles
func (c *Coordinator) Subscribe(fn func(Result)) (unsubscribe func()) {
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

// Wait blocks until every mutation started so far has settled
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Close ends any session. Mutations already sent keep running; Wait
// blocks until they settle.
func (c *Coordinator) Close() {
	c.Cancel()
}
