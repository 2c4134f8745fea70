// Package seed fills the sqlite quote store with generated records
package seed

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"golang.org/x/sync/errgroup"
)

type progress struct {
	status      models.Status
	done, total int
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the sqlite store with generated quotes",
		Long: `Replace every quote in the sqlite store with generated records.
Counts not given on the command line come from remote.totals in the config.`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	for _, st := range models.Statuses {
		cmd.Flags().Int(string(st), 0, "Number of "+string(st)+" quotes")
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return formatter.Fail(cli.Exit(cli.ExitUsage, err))
	}
	cfg.Remote.Mode = config.ModeSQLite

	totals := cfg.Remote.StatusTotals()
	for _, st := range models.Statuses {
		name := string(st)
		if !cmd.Flags().Changed(name) {
			continue
		}
		n, _ := cmd.Flags().GetInt(name)
		if err := cli.ValidateTotal(name, n); err != nil {
			return formatter.Fail(cli.Exit(cli.ExitValidation, err))
		}
		totals[st] = n
	}

	cliInstance, err := cli.NewCLIFromConfig(ctx, cfg)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	updates := make(chan progress, 16)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(updates)
		return cliInstance.App.Store.Seed(gctx, totals, func(st models.Status, done, total int) {
			select {
			case updates <- progress{status: st, done: done, total: total}:
			case <-gctx.Done():
			}
		})
	})
	g.Go(func() error {
		for p := range updates {
			if formatter.JSON {
				continue
			}
			formatter.Printf("  %-8s %d/%d\n", p.status, p.done, p.total)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return formatter.Fail(err)
	}

	counts, err := cliInstance.App.Store.Count(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.JSONSuccess("counts", counts)
	}
	formatter.Printf("Seeded %s: %d accepted, %d pending, %d declined\n",
		cfg.Database.Path,
		counts[models.StatusAccepted],
		counts[models.StatusPending],
		counts[models.StatusDeclined],
	)
	return nil
}
