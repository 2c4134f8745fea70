// Package serve runs the quote daemon
package serve

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/daemon"
	"github.com/thenoetrevino/quoteboard/internal/logging"
	"golang.org/x/sync/errgroup"
)

// metricsInterval is how often the serve command logs the daemon counters
const metricsInterval = 30 * time.Second

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the quote daemon",
		Long: `Serve the configured remote (simulated or sqlite) over a unix socket
until interrupted. Boards started with --mode daemon connect to it.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().Duration("metrics-interval", metricsInterval, "How often to log request counters")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return formatter.Fail(cli.Exit(cli.ExitUsage, err))
	}
	if cfg.Remote.Mode == config.ModeDaemon {
		return formatter.Fail(cli.Exitf(cli.ExitUsage, "serve needs a local remote; use --mode simulated or --mode sqlite"))
	}

	cliInstance, err := cli.NewCLIFromConfig(ctx, cfg)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	logger := logging.For(logging.CompDaemon)
	server, err := daemon.NewServer(cfg.Remote.SocketPath, cliInstance.App.Quotes, daemon.WithLogger(logger))
	if err != nil {
		return formatter.Fail(err)
	}

	interval, _ := cmd.Flags().GetDuration("metrics-interval")
	formatter.Printf("Serving %s quotes on %s\n", cfg.Remote.Mode, cfg.Remote.SocketPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	g.Go(func() error {
		logMetrics(gctx, server, logger, interval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return formatter.Fail(err)
	}
	formatter.Printf("Daemon stopped\n")
	return nil
}

func logMetrics(ctx context.Context, server *daemon.Server, logger *slog.Logger, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := server.Metrics().GetSnapshot()
			logger.Info("daemon metrics",
				"requests", snap.RequestsTotal,
				"fetches", snap.FetchesTotal,
				"updates", snap.UpdatesTotal,
				"failures", snap.FailuresTotal,
				"clients", snap.ConnectedClients,
			)
		}
	}
}
