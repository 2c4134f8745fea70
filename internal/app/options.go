package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	db     *sql.DB
	remote remote.Remote
	logger *slog.Logger
}

// WithDB uses an already initialized database instead of opening the
// configured path. The caller keeps ownership of db.
func WithDB(db *sql.DB) Option {
	return func(cfg *appConfig) {
		cfg.db = db
	}
}

// WithRemote bypasses the configured mode and serves quotes from r
func WithRemote(r remote.Remote) Option {
	return func(cfg *appConfig) {
		cfg.remote = r
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
