package layoutcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/cli/styles"
	"github.com/thenoetrevino/quoteboard/internal/layout"
)

// ShowCmd returns the layout show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print widgets grouped by size",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, store, err := openStore(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	items := store.Load(cmd.Context(), layout.DefaultItems())
	printItems(formatter, store, items)
	return nil
}

func printItems(formatter *cli.OutputFormatter, store *layout.Store, items []layout.Item) {
	if formatter.Quiet {
		for _, it := range items {
			formatter.Println(it.ID)
		}
		return
	}
	if formatter.JSON {
		_ = formatter.JSONSuccess("items", items)
		return
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(store.Key()))
	for _, g := range layout.GroupBySize(items) {
		formatter.Printf("%s\n", styles.SectionStyle.Render(string(g.Size)))
		for _, it := range g.Items {
			formatter.Printf("  %s %s %s\n",
				styles.SubtitleStyle.Render(fmt.Sprintf("%2d", it.Order)),
				styles.ValueStyle.Render(it.ID),
				styles.SubtitleStyle.Render("("+it.Type+")"),
			)
		}
	}
}
