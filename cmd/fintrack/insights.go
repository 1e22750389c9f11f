package main

import (
	"encoding/json"
	"fmt"

	"github.com/Dan9191/fintrack/internal/cli"
	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/spf13/cobra"
)

func newInsightsCmd(flags *assumptionFlags) *cobra.Command {
	var (
		snapshotPath string
		asJSON       bool
	)
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Compute insight metrics from a JSON snapshot of your records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := cli.LoadSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			if in.Assumptions, err = flags.resolve(cmd); err != nil {
				return err
			}

			metrics := projection.CalculateInsightMetrics(in)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(metrics)
			}
			_, err = fmt.Fprint(out, cli.RenderMetrics(metrics, in.Assumptions))
			return err
		},
	}
	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "Snapshot file (incomes, transactions, bills, investments)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print metrics as JSON")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}
