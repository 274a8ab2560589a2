package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ftahirops/xpm/control"
)

var (
	kbpCmd = byPIDCmd("kbp", "Kill a process by PID", (*control.Controller).Kill)
	kbnCmd = byNameCmd("kbn", "Kill every process with the given name",
		func(c *control.Controller, ctx context.Context, name string) control.Report {
			return c.KillByName(ctx, name)
		})
)

func init() {
	for _, c := range []*cobra.Command{kbpCmd, kbnCmd} {
		c.Flags().StringVar(&cfg.KillSignal, "signal", cfg.KillSignal, "kill signal (kill|term|int|hup)")
		rootCmd.AddCommand(c)
	}
}
