package main

import (
	"fmt"

	"github.com/Dan9191/fintrack/internal/cli"
	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/spf13/cobra"
)

func newSIPCmd(flags *assumptionFlags) *cobra.Command {
	var (
		amount float64
		rate   float64
		years  []int
	)
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project a monthly systematic investment plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("rate") {
				a, err := flags.resolve(cmd)
				if err != nil {
					return err
				}
				rate = a.ExpectedReturn
			}
			title := fmt.Sprintf("SIP of %s/month at %s", cli.FormatMoney(amount), cli.FormatPercent(rate))
			_, err := fmt.Fprint(cmd.OutOrStdout(), cli.RenderProjection(title, projection.ProjectSIP(amount, rate, years)))
			return err
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Monthly installment")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Annual return in percent (default: expected return)")
	cmd.Flags().IntSliceVarP(&years, "years", "y", projection.ProjectionYears, "Horizons in years")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newCompoundCmd() *cobra.Command {
	var (
		principal float64
		rate      float64
		years     float64
		compounds float64
	)
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Compound a lump sum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fv := projection.CompoundFutureValue(principal, rate, years, compounds)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s at %s for %g years: %s\n",
				cli.FormatMoney(principal), cli.FormatPercent(rate), years, cli.FormatMoney(fv))
			return err
		},
	}
	cmd.Flags().Float64VarP(&principal, "principal", "p", 0, "Starting amount")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Annual rate in percent")
	cmd.Flags().Float64VarP(&years, "years", "y", 0, "Duration in years")
	cmd.Flags().Float64VarP(&compounds, "compounds", "c", 1, "Compounding periods per year")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}
