// Package cmd implements the xpm command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/ftahirops/xpm/collector"
	"github.com/ftahirops/xpm/config"
	"github.com/ftahirops/xpm/control"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

var cfg = config.Default()

// Replaced in tests.
var (
	newLister  = collector.New
	sendSignal = unix.Kill
)

var rootCmd = &cobra.Command{
	Use:     "xpm",
	Short:   "xpm - list, kill, pause and resume processes",
	Version: Version,
	Long: `xpm lists running processes and signals them by PID or by exact name.

Run "xpm top" for an interactive view with search and kill.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.SetVersionTemplate("xpm {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfg.Source, "source", cfg.Source,
		"process source ("+strings.Join(collector.Names(), "|")+")")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", "", "write top session logs to this file")
}

// prepare runs before every command except version: it sets up logging
// and rejects invalid flags before anything is listed or signalled.
func prepare(cmd *cobra.Command, args []string) error {
	initLog(cmd, args)
	return validateFlags()
}

// validateFlags checks the global and per-command options held in cfg.
func validateFlags() error {
	if err := cfg.Validate(); err != nil {
		log.Debug().Err(err).Msg("invalid flags")
		return err
	}
	return nil
}

// exitError carries an exit code for failures that have already been
// reported to the user.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func silentExit(code int) error { return &exitError{code: code} }

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	return execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newController builds a Controller over the configured source and kill
// signal. Flags are validated before any command runs.
func newController() (*control.Controller, error) {
	lister, err := newLister(cfg.Source)
	if err != nil {
		return nil, err
	}
	sig, err := config.ParseSignal(cfg.KillSignal)
	if err != nil {
		return nil, err
	}
	return control.New(lister, control.WithKillSignal(sig), control.WithSender(sendSignal)), nil
}
