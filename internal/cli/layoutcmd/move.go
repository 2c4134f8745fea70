package layoutcmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/layout"
)

// MoveCmd returns the layout move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <active> <over>",
		Short: "Move a widget to the position of another in its size group",
		Args:  cobra.ExactArgs(2),
		RunE:  runMove,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, store, err := openStore(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	items := store.Load(ctx, layout.DefaultItems())
	moved, err := layout.Move(items, args[0], args[1])
	if err != nil {
		return formatter.Fail(err)
	}
	if err := store.Save(ctx, moved); err != nil {
		return formatter.Fail(err)
	}

	printItems(formatter, store, moved)
	return nil
}
