package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

const quoteColumns = `id, date, customer, items, amount, status, valid_until, sales_person`

// QuoteRepo serves quote columns out of the quotes table
type QuoteRepo struct {
	db *sql.DB
}

// NewQuoteRepo creates a repository over an initialized database
func NewQuoteRepo(db *sql.DB) *QuoteRepo {
	return &QuoteRepo{db: db}
}

// FetchColumnPage reads one page of a status column together with the
// column aggregates. Both reads happen in one transaction so the page and
// its totals are consistent.
func (r *QuoteRepo) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, req.Status)
	}
	if req.Page < 0 {
		return nil, models.ErrInvalidPage
	}
	if req.PageSize <= 0 {
		return nil, models.ErrInvalidPageSize
	}

	page := &models.Page{Page: req.Page, PageSize: req.PageSize, Data: []models.Quote{}}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM quotes WHERE status = ?`,
			req.Status,
		).Scan(&page.Total, &page.TotalAmount)
		if err != nil {
			return fmt.Errorf("failed to count quotes: %w", err)
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT `+quoteColumns+` FROM quotes
			WHERE status = ?
			ORDER BY sort_key, id
			LIMIT ? OFFSET ?`,
			req.Status, req.PageSize, req.Page*req.PageSize,
		)
		if err != nil {
			return fmt.Errorf("failed to query quotes: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			q, err := scanQuote(rows)
			if err != nil {
				return err
			}
			page.Data = append(page.Data, *q)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	page.HasMore = (req.Page+1)*req.PageSize < page.Total
	return page, nil
}

// UpdateStatus moves a quote to the head of the target column.
// It fails with ErrQuoteNotFound or ErrStatusConflict when the record is
// missing or no longer in FromStatus.
func (r *QuoteRepo) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
	if !upd.FromStatus.Valid() || !upd.ToStatus.Valid() {
		return nil, models.ErrInvalidStatus
	}
	if upd.FromStatus == upd.ToStatus {
		return nil, models.ErrSameStatus
	}

	var moved *models.Quote
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		q, err := getQuote(ctx, tx, upd.ID)
		if err != nil {
			return err
		}
		if q.Status != upd.FromStatus {
			return fmt.Errorf("%w: %s is %s", models.ErrStatusConflict, upd.ID, q.Status)
		}

		var head int64
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MIN(sort_key), 0) FROM quotes WHERE status = ?`,
			upd.ToStatus,
		).Scan(&head)
		if err != nil {
			return fmt.Errorf("failed to read column head: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE quotes SET status = ?, sort_key = ? WHERE id = ? AND status = ?`,
			upd.ToStatus, head-1, upd.ID, upd.FromStatus,
		)
		if err != nil {
			return fmt.Errorf("failed to update quote status: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", models.ErrStatusConflict, upd.ID)
		}

		next := q.WithStatus(upd.ToStatus)
		moved = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.StatusUpdateResult{Success: true, Quote: moved}, nil
}

// Insert adds quotes to the tail of their columns
func (r *QuoteRepo) Insert(ctx context.Context, quotes ...models.Quote) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		tails := map[models.Status]int64{}
		for _, q := range quotes {
			tail, ok := tails[q.Status]
			if !ok {
				if err := tx.QueryRowContext(ctx,
					`SELECT COALESCE(MAX(sort_key), -1) FROM quotes WHERE status = ?`, q.Status,
				).Scan(&tail); err != nil {
					return err
				}
			}
			tail++
			tails[q.Status] = tail
			if err := insertQuote(ctx, tx, q, tail); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of quotes per status
func (r *QuoteRepo) Count(ctx context.Context) (map[models.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM quotes GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}
	defer rows.Close()

	out := make(map[models.Status]int, len(models.Statuses))
	for _, st := range models.Statuses {
		out[st] = 0
	}
	for rows.Next() {
		var st models.Status
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		out[st] = n
	}
	return out, rows.Err()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getQuote(ctx context.Context, q queryRower, id string) (*models.Quote, error) {
	row := q.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)
	quote, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrQuoteNotFound, id)
	}
	return quote, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(s scanner) (*models.Quote, error) {
	var (
		q          models.Quote
		date       string
		validUntil sql.NullString
	)
	if err := s.Scan(&q.ID, &date, &q.Customer, &q.Items, &q.Amount, &q.Status, &validUntil, &q.SalesPerson); err != nil {
		return nil, err
	}

	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("quote %s has invalid date %q: %w", q.ID, date, err)
	}
	q.Date = d

	if q.ValidUntil, err = parseNullDate(validUntil); err != nil {
		return nil, fmt.Errorf("quote %s has invalid valid_until: %w", q.ID, err)
	}
	return &q, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertQuote(ctx context.Context, e execer, q models.Quote, sortKey int64) error {
	_, err := e.ExecContext(ctx,
		`INSERT INTO quotes (`+quoteColumns+`, sort_key) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Date.Format(dateLayout), q.Customer, q.Items, q.Amount, q.Status,
		nullDate(q.ValidUntil), q.SalesPerson, sortKey,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quote %s: %w", q.ID, err)
	}
	return nil
}

// Compile-time verification that *QuoteRepo implements remote.Remote
var _ remote.Remote = (*QuoteRepo)(nil)
