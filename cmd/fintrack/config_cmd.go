package main

import (
	"fmt"

	"github.com/Dan9191/fintrack/internal/cli"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *assumptionFlags) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective assumptions, or save them with --save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if save {
				if err := cli.SaveConfig(flags.configPath, cli.Config{Assumptions: a}); err != nil {
					return err
				}
				fmt.Fprintf(out, "  Saved %s\n", flags.configPath)
			}
			fmt.Fprintf(out, "  Config file:     %s\n", flags.configPath)
			fmt.Fprintf(out, "  Expected return: %s\n", cli.FormatPercent(a.ExpectedReturn))
			fmt.Fprintf(out, "  Inflation:       %s\n", cli.FormatPercent(a.Inflation))
			fmt.Fprintf(out, "  Expense growth:  %s\n", cli.FormatPercent(a.ExpenseGrowth))
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Write the effective assumptions to the config file")
	return cmd
}
