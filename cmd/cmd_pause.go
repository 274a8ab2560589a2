package cmd

import (
	"context"

	"github.com/ftahirops/xpm/control"
)

var (
	pbpCmd = byPIDCmd("pbp", "Pause (SIGSTOP) a process by PID", (*control.Controller).Pause)
	pbnCmd = byNameCmd("pbn", "Pause every process with the given name",
		func(c *control.Controller, ctx context.Context, name string) control.Report {
			return c.PauseByName(ctx, name)
		})
	rbpCmd = byPIDCmd("rbp", "Resume (SIGCONT) a process by PID", (*control.Controller).Resume)
	rbnCmd = byNameCmd("rbn", "Resume every process with the given name",
		func(c *control.Controller, ctx context.Context, name string) control.Report {
			return c.ResumeByName(ctx, name)
		})
)

func init() {
	rootCmd.AddCommand(pbpCmd, pbnCmd, rbpCmd, rbnCmd)
}
