package main

import (
	"github.com/Dan9191/fintrack/internal/cli"
	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/spf13/cobra"
)

type assumptionFlags struct {
	configPath     string
	expectedReturn float64
	inflation      float64
	expenseGrowth  float64
}

func newRootCmd() *cobra.Command {
	var flags assumptionFlags

	root := &cobra.Command{
		Use:          "fintrack",
		Short:        "Personal finance projections",
		Long:         "Project net worth, SIP corpus and compound growth from your financial records.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", cli.ConfigPath(), "Config file")
	root.PersistentFlags().Float64Var(&flags.expectedReturn, "expected-return", 0, "Expected annual return in percent (default from config)")
	root.PersistentFlags().Float64Var(&flags.inflation, "inflation", 0, "Annual inflation in percent (default from config)")
	root.PersistentFlags().Float64Var(&flags.expenseGrowth, "expense-growth", 0, "Annual expense growth in percent (default from config)")

	root.AddCommand(
		newInsightsCmd(&flags),
		newSIPCmd(&flags),
		newCompoundCmd(),
		newConfigCmd(&flags),
	)
	return root
}

// resolve layers explicitly set flags over the config file
func (f *assumptionFlags) resolve(cmd *cobra.Command) (projection.Assumptions, error) {
	cfg, err := cli.LoadConfig(f.configPath)
	if err != nil {
		return projection.Assumptions{}, err
	}
	a := cfg.Assumptions
	if cmd.Flags().Changed("expected-return") {
		a.ExpectedReturn = f.expectedReturn
	}
	if cmd.Flags().Changed("inflation") {
		a.Inflation = f.inflation
	}
	if cmd.Flags().Changed("expense-growth") {
		a.ExpenseGrowth = f.expenseGrowth
	}
	return a, nil
}
