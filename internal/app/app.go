package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/database"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/logging"
	"github.com/thenoetrevino/quoteboard/internal/remote"
	"github.com/thenoetrevino/quoteboard/internal/remote/simulated"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
	quoteservice "github.com/thenoetrevino/quoteboard/internal/services/quote"
)

// App holds all application services and provides dependency injection.
// It picks the remote named by the config and owns every resource it opens.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	db      *sql.DB
	ownsDB  bool
	backend remote.Remote
	client  *rpc.Client

	// Store is the sqlite quote table, nil unless the remote mode is sqlite
	Store database.QuoteStore

	// KV persists UI state such as the dashboard layout
	KV database.KVStore

	// Quotes validates and logs every call before it reaches the backend
	Quotes quoteservice.Service

	// Layout loads and saves the dashboard widget order
	Layout *layout.Store
}

// New creates the application container for cfg
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	o := appConfig{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.For(logging.CompBoard)
	}

	a := &App{cfg: cfg, logger: o.logger, db: o.db}

	if a.db == nil {
		db, err := database.InitDB(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.db, a.ownsDB = db, true
	}
	a.KV = database.NewKVRepo(a.db)
	a.Layout = layout.NewStore(a.KV, cfg.Layout.DashboardID, logging.For(logging.CompLayout))

	backend, err := a.buildBackend(o.remote)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.backend = backend

	svc, err := quoteservice.NewService(backend, logging.For(logging.CompRemote))
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Quotes = svc

	a.logger.Info("application ready", "mode", cfg.Remote.Mode)
	return a, nil
}

func (a *App) buildBackend(override remote.Remote) (remote.Remote, error) {
	if override != nil {
		return override, nil
	}

	rc := a.cfg.Remote
	switch rc.Mode {
	case config.ModeSimulated, "":
		src := simulated.NewSource(
			simulated.WithTotals(rc.StatusTotals()),
			simulated.WithLogger(logging.For(logging.CompRemote)),
		)
		return remote.NewUnreliable(src,
			remote.WithLatency(rc.Latency()),
			remote.WithFailureRate(rc.FailureRate),
			remote.WithFetchFailureRate(rc.FetchFailureRate),
		), nil

	case config.ModeSQLite:
		repo := database.NewQuoteRepo(a.db)
		a.Store = repo
		return repo, nil

	case config.ModeDaemon:
		a.client = rpc.NewClient(rc.SocketPath, rpc.WithClientLogger(logging.For(logging.CompDaemon)))
		return a.client, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidMode, rc.Mode)
	}
}

// Config returns the configuration the app was built from
func (a *App) Config() *config.Config {
	return a.cfg
}

// Backend returns the remote behind the quote service
func (a *App) Backend() remote.Remote {
	return a.backend
}

// Daemon returns the rpc client when running against the daemon
func (a *App) Daemon() (*rpc.Client, bool) {
	return a.client, a.client != nil
}

// NewBoard builds a board over the quote service with the configured page size
func (a *App) NewBoard() *kanban.Board {
	return kanban.NewBoard(a.Quotes,
		kanban.WithPageSize(a.cfg.Board.PageSize),
		kanban.WithLogger(logging.For(logging.CompDrag)),
	)
}

// Close releases the rpc connection and the database, if the app opened it
func (a *App) Close() error {
	var errs []error
	if a.client != nil {
		errs = append(errs, a.client.Close())
	}
	if a.ownsDB && a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	return errors.Join(errs...)
}
