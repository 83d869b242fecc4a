package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/report"
)

var unusedFlags analysisFlags

var unusedCmd = &cobra.Command{
	Use:   "unused [entry]",
	Short: "List files that nothing imports",
	Long: `Lists mapped files with no importers that are not named like an entry
point and do not contain a __main__ guard. This is a heuristic: dynamic
imports and external callers are invisible to it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := unusedFlags.loadResult(cmd.Context(), args)
		if err != nil {
			return err
		}

		if unusedFlags.json {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result.Unused)
		}
		if len(result.Unused) == 0 {
			logger.Info("No unused files found")
			return nil
		}
		return report.WriteUnused(cmd.OutOrStdout(), result.Unused)
	},
}

func init() {
	rootCmd.AddCommand(unusedCmd)
	unusedFlags.register(unusedCmd)
}
