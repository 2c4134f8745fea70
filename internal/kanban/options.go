package kanban

import (
	"log/slog"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

type options struct {
	pageSize int
	logger   *slog.Logger
}

// Option configures a Controller or a Board
type Option func(*options)

// WithPageSize sets the number of quotes a column window holds
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithLogger sets the logger used for fetch and rollback diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{pageSize: models.DefaultPageSize, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
