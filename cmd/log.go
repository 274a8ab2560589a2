package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ftahirops/xpm/apperr"
)

// initLog sends logs to stderr.
func initLog(cmd *cobra.Command, args []string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339})
}

// initTuiLog moves logging off the terminal while the UI owns it: to
// --log-file if set, otherwise nowhere. The returned closer releases
// the file.
func initTuiLog() (io.Closer, error) {
	var logOutput io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if cfg.LogFile != "" {
		logFD, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, apperr.Invalid("cannot open log file "+cfg.LogFile, err)
		}
		logOutput = logFD
		closer = logFD
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOutput, NoColor: true, TimeFormat: time.RFC3339})
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
