package kanban

import (
	"log/slog"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// Board composes one Controller per status with the Coordinator that moves
// quotes between them.
type Board struct {
	columns []*Controller
	byID    map[models.Status]*Controller
	coord   *Coordinator
	logger  *slog.Logger
}

// NewBoard creates the three status columns over r. Nothing is fetched
// until Mount.
func NewBoard(r remote.Remote, opts ...Option) *Board {
	o := buildOptions(opts)

	b := &Board{
		byID:   make(map[models.Status]*Controller, len(models.Statuses)),
		logger: o.logger,
	}
	for _, st := range models.Statuses {
		c := NewController(st, r, opts...)
		b.columns = append(b.columns, c)
		b.byID[st] = c
	}
	b.coord = NewCoordinator(r, b.columns, o.logger)
	return b
}

// Mount loads the first page of every column
func (b *Board) Mount() {
	for _, c := range b.columns {
		c.FetchPage(0)
	}
	b.logger.Debug("board mounted", "columns", len(b.columns))
}

// Statuses returns the column statuses in board order
func (b *Board) Statuses() []models.Status {
	out := make([]models.Status, len(b.columns))
	for i, c := range b.columns {
		out[i] = c.Status()
	}
	return out
}

// Column returns the controller for status, or nil
func (b *Board) Column(s models.Status) *Controller {
	return b.byID[s]
}

// Columns returns every controller in board order
func (b *Board) Columns() []*Controller {
	return b.columns
}

// Drag returns the board's drag coordinator
func (b *Board) Drag() *Coordinator {
	return b.coord
}

// Dragged returns the quote shown in the floating drag preview
func (b *Board) Dragged() (models.Quote, bool) {
	s, ok := b.coord.Active()
	return s.Quote, ok
}

// Wait blocks until outstanding fetches and mutations settle
func (b *Board) Wait() {
	b.coord.Wait()
	for _, c := range b.columns {
		c.Wait()
	}
}

// Close unmounts the board. In-flight fetches are discarded; status
// updates already sent still reach the remote.
func (b *Board) Close() {
	b.coord.Close()
	for _, c := range b.columns {
		c.Close()
	}
}
