// Package quote lists and moves quotes from the command line
package quote

import (
	"github.com/spf13/cobra"
)

// QuoteCmd returns the quote parent command
func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "List and move quotes",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
