package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftahirops/xpm/collector"
	"github.com/ftahirops/xpm/model"
)

func init() {
	rootCmd.AddCommand(procCmd)
	procCmd.Flags().BoolVar(&procJSON, "json", false, "print the snapshot as JSON")
}

var procJSON bool
var procCmd = &cobra.Command{
	Use:   "proc [--json]",
	Short: "List running processes sorted by PID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lister, err := newLister(cfg.Source)
		if err != nil {
			return err
		}
		snap, err := collector.Snapshot(cmd.Context(), lister)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if procJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}

		fmt.Fprintln(out, model.RowHeader)
		for _, r := range snap.Records {
			fmt.Fprintln(out, r.Row())
		}
		return nil
	},
}
