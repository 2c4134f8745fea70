// Package remote defines the contract between the board and the system
// that owns quote records.
package remote

import (
	"context"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

// Fetcher loads one page of a status column.
// Every quote in the returned page carries the requested status and
// len(Data) never exceeds the requested page size.
type Fetcher interface {
	FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error)
}

// Mutator changes the status of one quote. A non-nil error is a rejection.
type Mutator interface {
	UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error)
}

// Remote is the full collaborator consumed by the board
type Remote interface {
	Fetcher
	Mutator
}

// FetcherFunc adapts a plain function into a Fetcher
type FetcherFunc func(ctx context.Context, req models.PageRequest) (*models.Page, error)

// FetchColumnPage calls f(ctx, req)
func (f FetcherFunc) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	return f(ctx, req)
}

// MutatorFunc adapts a plain function into a Mutator
type MutatorFunc func(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error)

// UpdateStatus calls f(ctx, upd)
func (f MutatorFunc) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
	return f(ctx, upd)
}

// Combine joins a Fetcher and a Mutator into a Remote
func Combine(f Fetcher, m Mutator) Remote {
	return combined{Fetcher: f, Mutator: m}
}

type combined struct {
	Fetcher
	Mutator
}
