// Package status reports on a running quote daemon
package status

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/cli/styles"
	"github.com/thenoetrevino/quoteboard/internal/logging"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon health and counters",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cmd.Flags().Duration("timeout", 2*time.Second, "How long to wait for the daemon")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return formatter.Fail(cli.Exit(cli.ExitUsage, err))
	}
	cli.InitLogging(cfg)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	client := rpc.NewClient(cfg.Remote.SocketPath,
		rpc.WithDialTimeout(timeout),
		rpc.WithClientLogger(logging.For(logging.CompDaemon)),
	)
	defer func() {
		_ = client.Close()
	}()

	snap, err := client.Ping(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Println("ok")
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("metrics", snap)
	}

	formatter.Printf("%s %s\n\n", styles.SuccessStyle.Render("running"), styles.SubtitleStyle.Render(cfg.Remote.SocketPath))
	formatter.Printf("  %s\n", styles.RenderField("Uptime", snap.Uptime.Round(time.Second).String()))
	formatter.Printf("  %s\n", styles.RenderField("Clients", itoa(snap.ConnectedClients)))
	formatter.Printf("  %s\n", styles.RenderField("Requests", itoa(snap.RequestsTotal)))
	formatter.Printf("  %s\n", styles.RenderField("Fetches", itoa(snap.FetchesTotal)))
	formatter.Printf("  %s\n", styles.RenderField("Updates", itoa(snap.UpdatesTotal)))
	formatter.Printf("  %s\n", styles.RenderField("Failures", itoa(snap.FailuresTotal)))
	return nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
