package cmd

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ftahirops/xpm/session"
	"github.com/ftahirops/xpm/ui"
)

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().DurationVar(&cfg.PollInterval, "interval", cfg.PollInterval, "input poll interval")
}

var topCmd = &cobra.Command{
	Use:   "top [--interval 100ms]",
	Short: "Interactive process view with search and kill",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, err := initTuiLog()
		if err != nil {
			return err
		}
		defer closer.Close()

		lister, err := newLister(cfg.Source)
		if err != nil {
			return err
		}
		c, err := newController()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		log.Info().Str("source", lister.Name()).Dur("interval", cfg.PollInterval).Msg("starting top session")
		return ui.Run(ctx, session.New(lister, c), cfg.PollInterval)
	},
}
