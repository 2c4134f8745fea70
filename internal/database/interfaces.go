package database

import (
	"context"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// QuoteStore is everything the application needs from the quotes table.
// It is a full remote plus the maintenance operations used by the CLI.
type QuoteStore interface {
	remote.Remote
	Insert(ctx context.Context, quotes ...models.Quote) error
	Count(ctx context.Context) (map[models.Status]int, error)
	Seed(ctx context.Context, totals map[models.Status]int, progress SeedProgress) error
}

// KVStore persists small string blobs
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Compile-time verification of the concrete repositories
var (
	_ QuoteStore = (*QuoteRepo)(nil)
	_ KVStore    = (*KVRepo)(nil)
)
