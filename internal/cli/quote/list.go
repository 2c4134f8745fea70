package quote

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/cli/styles"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// ListCmd returns the quote list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of a status column",
		Long:  "List one page of a status column, newest first, as the board shows it.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("status", string(models.StatusPending), "Column to list (accepted, pending, declined)")
	cmd.Flags().String("page", "1", "Page number, starting at 1")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	statusFlag, _ := cmd.Flags().GetString("status")
	status, err := cli.ParseStatus(statusFlag)
	if err != nil {
		return formatter.Fail(err)
	}
	pageFlag, _ := cmd.Flags().GetString("page")
	page, err := cli.ParsePage(pageFlag)
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

	result, err := cliInstance.App.Quotes.ListColumn(ctx, status, page)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, q := range result.Data {
			formatter.Println(q.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess("page", result)
	}

	pageCount := max((result.Total+result.PageSize-1)/max(result.PageSize, 1), 1)
	formatter.Printf("%s  %d quotes  %s  page %d / %d\n\n",
		styles.RenderStatus(status),
		result.Total,
		styles.AmountStyle.Render(cli.FormatAmount(result.TotalAmount)),
		page+1, pageCount,
	)
	if len(result.Data) == 0 {
		formatter.Printf("No quotes on this page\n")
		return nil
	}
	for _, q := range result.Data {
		formatter.Printf("  %s\n", styles.RenderQuoteLine(q, cli.FormatAmount(q.Amount)))
	}
	return nil
}
