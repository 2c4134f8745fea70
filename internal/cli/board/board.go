// Package board runs the interactive quote board
package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/logging"
	"github.com/thenoetrevino/quoteboard/internal/tui"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the quote board",
		Long:  "Open the interactive three-column quote board in the terminal.",
		Args:  cobra.NoArgs,
		RunE:  Run,
	}
}

// Run opens the board. It is also the root command's default action.
func Run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.NewCLI(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	b := cliInstance.App.NewBoard()
	defer func() {
		b.Close()
		b.Wait()
	}()

	items := cliInstance.App.Layout.Load(ctx, layout.DefaultItems())
	return tui.Run(ctx, b, cliInstance.Config, items, tui.WithLogger(logging.For(logging.CompTUI)))
}
