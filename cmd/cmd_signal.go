package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ftahirops/xpm/apperr"
	"github.com/ftahirops/xpm/control"
)

// parsePID converts a command argument to a PID.
func parsePID(arg string) (int, error) {
	pid, err := strconv.Atoi(arg)
	if err != nil || pid <= 0 {
		return 0, apperr.Invalid(fmt.Sprintf("invalid PID %q", arg), err)
	}
	return pid, nil
}

// byPIDCmd builds a command that signals one process by PID.
func byPIDCmd(use, short string, op func(c *control.Controller, pid int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <pid>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			c, err := newController()
			if err != nil {
				return err
			}
			if err := op(c, pid); err != nil {
				if apperr.Is(err, apperr.KindInvalid) {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return silentExit(1)
			}
			return nil
		},
	}
}

// byNameCmd builds a command that signals every process with the given
// exact name. It succeeds if at least one of them was signalled; every
// failure is reported either way.
func byNameCmd(use, short string, op func(c *control.Controller, ctx context.Context, name string) control.Report) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController()
			if err != nil {
				return err
			}
			rep := op(c, cmd.Context(), args[0])

			stderr := cmd.ErrOrStderr()
			for _, f := range rep.Failures {
				fmt.Fprintln(stderr, f)
			}
			if rep.OK() {
				return nil
			}
			if rep.Matched == 0 {
				fmt.Fprintln(stderr, rep.Err())
			}
			return silentExit(1)
		},
	}
}
