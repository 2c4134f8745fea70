package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote/simulated"
)

// seedBatchSize is the number of rows written per transaction while seeding
const seedBatchSize = 5000

// SeedProgress is called after every committed batch
type SeedProgress func(status models.Status, done, total int)

// Seed replaces the contents of the quotes table with generated records.
// Generated index order becomes sort_key order, matching the simulated remote.
func (r *QuoteRepo) Seed(ctx context.Context, totals map[models.Status]int, progress SeedProgress) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quotes`); err != nil {
		return fmt.Errorf("failed to clear quotes: %w", err)
	}

	for _, st := range models.Statuses {
		total := totals[st]
		for start := 0; start < total; start += seedBatchSize {
			end := min(start+seedBatchSize, total)
			err := withTx(ctx, r.db, func(tx *sql.Tx) error {
				stmt, err := tx.PrepareContext(ctx,
					`INSERT INTO quotes (`+quoteColumns+`, sort_key) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
				if err != nil {
					return err
				}
				defer stmt.Close()

				for i := start; i < end; i++ {
					q := simulated.Generate(i, st)
					if _, err := stmt.ExecContext(ctx,
						q.ID, q.Date.Format(dateLayout), q.Customer, q.Items, q.Amount, q.Status,
						nullDate(q.ValidUntil), q.SalesPerson, i,
					); err != nil {
						return fmt.Errorf("failed to insert quote %s: %w", q.ID, err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if progress != nil {
				progress(st, end, total)
			}
		}
		slog.Info("seeded quotes", "status", st, "count", total)
	}
	return nil
}
