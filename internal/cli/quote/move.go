package quote

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/cli/styles"
	"github.com/thenoetrevino/quoteboard/internal/models"
	quoteservice "github.com/thenoetrevino/quoteboard/internal/services/quote"
)

// MoveCmd returns the quote move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <from> <to>",
		Short: "Move a quote to another status",
		Long: `Move a quote between statuses. The remote refuses the move when the
quote is no longer in <from>.`,
		Args: cobra.ExactArgs(3),
		RunE: runMove,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	from, err := cli.ParseStatus(args[1])
	if err != nil {
		return formatter.Fail(err)
	}
	to, err := cli.ParseStatus(args[2])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.NewCLI(ctx, cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		_ = cliInstance.Close()
	}()

	moved, err := cliInstance.App.Quotes.MoveQuote(ctx, quoteservice.MoveQuoteRequest{
		ID:   args[0],
		From: from,
		To:   to,
	})
	if err != nil {
		return formatter.Fail(err)
	}
	if moved == nil {
		moved = &models.Quote{ID: args[0], Status: to}
	}

	if formatter.Quiet {
		formatter.Println(moved.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("quote", moved)
	}

	formatter.Printf("%s moved %s -> %s\n",
		styles.TitleStyle.Render(moved.ID),
		styles.RenderStatus(from),
		styles.RenderStatus(to),
	)
	return nil
}
