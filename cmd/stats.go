package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/report"
)

var statsFlags analysisFlags

var statsCmd = &cobra.Command{
	Use:   "stats [entry]",
	Short: "Print summary statistics without writing outputs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := statsFlags.loadResult(cmd.Context(), args)
		if err != nil {
			return err
		}
		if statsFlags.json {
			return report.WriteStats(cmd.OutOrStdout(), result.Stats)
		}
		return report.WriteSummary(cmd.OutOrStdout(), report.Summary{
			Root:  result.Root,
			Stats: result.Stats,
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsFlags.register(statsCmd)
}
