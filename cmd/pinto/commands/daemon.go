package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the background daemon",
	}

	cmd.AddCommand(c.newDaemonServeCmd())
	cmd.AddCommand(c.newDaemonStatusCmd())
	cmd.AddCommand(c.newDaemonStopCmd())

	return cmd
}

func (c *CLI) newDaemonServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "serve",
		Short:  "Start the daemon server (internal use)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ServeDaemon(cmd.Context())
		},
	}
}

func (c *CLI) newDaemonStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.DaemonStatus(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !status.Running {
				_, _ = fmt.Fprintf(out, "daemon: not running (boundary: %s)\n", status.Boundary)
				return nil
			}

			_, _ = fmt.Fprintf(out, "daemon: running\n")
			_, _ = fmt.Fprintf(out, "  pid:            %d\n", status.PID)
			_, _ = fmt.Fprintf(out, "  boundary:       %s\n", status.Boundary)
			_, _ = fmt.Fprintf(out, "  uptime:         %s\n", status.Uptime.Round(time.Second))
			_, _ = fmt.Fprintf(out, "  idle remaining: %s\n", status.IdleRemaining.Round(time.Second))
			_, _ = fmt.Fprintf(out, "  cached roots:   %d\n", status.CachedRoots)
			return nil
		},
	}
}

func (c *CLI) newDaemonStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.StopDaemon(cmd.Context())
		},
	}
}
