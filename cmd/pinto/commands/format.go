package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinto/internal/app"
)

func (c *CLI) newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Format PHP files using the owning project's pint binary",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			useDaemon, _ := cmd.Flags().GetBool("daemon")

			return c.app.Format(cmd.Context(), args, app.FormatOptions{
				Daemon: useDaemon,
			})
		},
	}
	cmd.Flags().BoolP("daemon", "d", false, "Route formatting through the background daemon")
	return cmd
}
