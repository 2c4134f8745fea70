// Package cli holds the shared plumbing of the quoteboard commands: global
// flags, configuration loading, the application container and output.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/app"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/logging"
)

// Global flag names shared by every command
const (
	FlagConfig = "config"
	FlagMode   = "mode"
	FlagDB     = "db"
	FlagSocket = "socket"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
}

// AddGlobalFlags registers the persistent flags that override config
func AddGlobalFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String(FlagConfig, "", "Config file (default $XDG_CONFIG_HOME/quoteboard/config.yaml)")
	f.String(FlagMode, "", "Remote mode: simulated, sqlite or daemon")
	f.String(FlagDB, "", "SQLite database path")
	f.String(FlagSocket, "", "Daemon socket path")
}

// LoadConfig reads the config file and applies flag overrides
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(FlagConfig)

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if mode, _ := cmd.Flags().GetString(FlagMode); mode != "" {
		cfg.Remote.Mode = mode
	}
	if db, _ := cmd.Flags().GetString(FlagDB); db != "" {
		cfg.Database.Path = db
	}
	if socket, _ := cmd.Flags().GetString(FlagSocket); socket != "" {
		cfg.Remote.SocketPath = socket
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitLogging starts the rotating log file. A failure leaves logging
// discarded rather than failing the command.
func InitLogging(cfg *config.Config) {
	_ = logging.Init(logging.Config{
		File:       cfg.Logging.File,
		Level:      cfg.Logging.Level,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
}

// NewCLI initializes config, logging and the application container
func NewCLI(ctx context.Context, cmd *cobra.Command, opts ...app.Option) (*CLI, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, Exit(ExitUsage, err)
	}
	return NewCLIFromConfig(ctx, cfg, opts...)
}

// NewCLIFromConfig builds the container for an already loaded config
func NewCLIFromConfig(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	InitLogging(cfg)

	a, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return &CLI{App: a, Config: cfg}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
