// Package cmd assembles the quoteboard command tree
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/cli/board"
	"github.com/thenoetrevino/quoteboard/internal/cli/layoutcmd"
	"github.com/thenoetrevino/quoteboard/internal/cli/quote"
	"github.com/thenoetrevino/quoteboard/internal/cli/seed"
	"github.com/thenoetrevino/quoteboard/internal/cli/serve"
	"github.com/thenoetrevino/quoteboard/internal/cli/status"
	"github.com/thenoetrevino/quoteboard/internal/logging"
)

// NewRootCmd builds the root command with every subcommand registered
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quoteboard",
		Short: "Quoteboard - a terminal kanban board for sales quotes",
		Long: `Quoteboard shows accepted, pending and declined quotes as three
paginated columns. Drag cards between columns with the mouse or keyboard.
Moves apply immediately and roll back if the remote refuses them.`,
		Args:          cobra.NoArgs,
		RunE:          board.Run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(seed.SeedCmd())
	rootCmd.AddCommand(quote.QuoteCmd())
	rootCmd.AddCommand(status.StatusCmd())
	rootCmd.AddCommand(layoutcmd.LayoutCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context) int {
	defer func() {
		_ = logging.Close()
	}()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
