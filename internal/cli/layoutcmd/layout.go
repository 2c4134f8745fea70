// Package layoutcmd shows and edits the persisted dashboard layout
package layoutcmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/logging"
)

// LayoutCmd returns the layout parent command
func LayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show and reorder dashboard widgets",
		Long: `Show and reorder the widgets above the board. Widgets only move
within their size group.`,
	}
	cmd.PersistentFlags().String("dashboard", "", "Dashboard id (default layout.dashboard_id from the config)")

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// openStore initializes the CLI and returns the layout store to operate on
func openStore(cmd *cobra.Command) (*cli.CLI, *layout.Store, error) {
	cliInstance, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return nil, nil, err
	}

	store := cliInstance.App.Layout
	if id, _ := cmd.Flags().GetString("dashboard"); id != "" {
		store = layout.NewStore(cliInstance.App.KV, id, logging.For(logging.CompLayout))
	}
	return cliInstance, store, nil
}
