package layoutcmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/layout"
)

// ResetCmd returns the layout reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default widget order",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, store, err := openStore(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	items, err := store.Reset(cmd.Context(), layout.DefaultItems())
	if err != nil {
		return formatter.Fail(err)
	}

	printItems(formatter, store, items)
	return nil
}
