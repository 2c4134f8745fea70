package quote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// Service validates and logs every call before it reaches a remote. It
// satisfies remote.Remote, so it can sit in front of the board, the daemon
// or a CLI command.
type Service interface {
	remote.Remote

	// ListColumn fetches one page of a status column with the default page size
	ListColumn(ctx context.Context, status models.Status, page int) (*models.Page, error)

	// MoveQuote moves one quote between statuses
	MoveQuote(ctx context.Context, req MoveQuoteRequest) (*models.Quote, error)
}

// MoveQuoteRequest encapsulates all data needed to move a quote
type MoveQuoteRequest struct {
	ID   string
	From models.Status
	To   models.Status
}

// service implements Service interface
type service struct {
	remote remote.Remote
	logger *slog.Logger
}

// NewService creates a new quote service
func NewService(r remote.Remote, logger *slog.Logger) (Service, error) {
	if r == nil {
		return nil, ErrNilRemote
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{remote: r, logger: logger}, nil
}

// FetchColumnPage validates the page request and delegates
func (s *service) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	if err := validatePageRequest(req); err != nil {
		return nil, err
	}

	page, err := s.remote.FetchColumnPage(ctx, req)
	if err != nil {
		s.logger.Warn("fetch page failed", "status", req.Status, "page", req.Page, "error", err)
		return nil, fmt.Errorf("failed to fetch %s page %d: %w", req.Status, req.Page, err)
	}

	s.logger.Debug("fetched page", "status", req.Status, "page", req.Page, "count", len(page.Data), "total", page.Total)
	return page, nil
}

// UpdateStatus validates the update and delegates
func (s *service) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
	if err := validateStatusUpdate(upd); err != nil {
		return nil, err
	}

	res, err := s.remote.UpdateStatus(ctx, upd)
	if err != nil {
		s.logger.Warn("status update rejected", "id", upd.ID, "from", upd.FromStatus, "to", upd.ToStatus, "error", err)
		return nil, fmt.Errorf("failed to move %s: %w", upd.ID, err)
	}

	s.logger.Debug("status updated", "id", upd.ID, "from", upd.FromStatus, "to", upd.ToStatus)
	return res, nil
}

// ListColumn fetches a page using models.DefaultPageSize
func (s *service) ListColumn(ctx context.Context, status models.Status, page int) (*models.Page, error) {
	return s.FetchColumnPage(ctx, models.PageRequest{Status: status, Page: page, PageSize: models.DefaultPageSize})
}

// MoveQuote moves a quote and returns the stored record, when the remote
// reports one
func (s *service) MoveQuote(ctx context.Context, req MoveQuoteRequest) (*models.Quote, error) {
	res, err := s.UpdateStatus(ctx, models.StatusUpdate{
		ID:         strings.TrimSpace(req.ID),
		FromStatus: req.From,
		ToStatus:   req.To,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, models.ErrRejected
	}
	return res.Quote, nil
}

func validatePageRequest(req models.PageRequest) error {
	if !req.Status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, req.Status)
	}
	if req.Page < 0 {
		return models.ErrInvalidPage
	}
	if req.PageSize <= 0 || req.PageSize > models.MaxPageSize {
		return fmt.Errorf("%w: %d", models.ErrInvalidPageSize, req.PageSize)
	}
	return nil
}

func validateStatusUpdate(upd models.StatusUpdate) error {
	if strings.TrimSpace(upd.ID) == "" {
		return ErrEmptyQuoteID
	}
	if !upd.FromStatus.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, upd.FromStatus)
	}
	if !upd.ToStatus.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, upd.ToStatus)
	}
	if upd.FromStatus == upd.ToStatus {
		return models.ErrSameStatus
	}
	return nil
}
