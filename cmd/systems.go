package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/report"
)

var systemsFlags analysisFlags

var systemsCmd = &cobra.Command{
	Use:   "systems [entry]",
	Short: "List groups of files connected by imports",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := systemsFlags.loadResult(cmd.Context(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if systemsFlags.json {
			return report.WriteSystems(out, result.Systems)
		}
		if len(result.Systems) == 0 {
			fmt.Fprintln(out, "No systems found")
			return nil
		}
		for _, sys := range result.Systems {
			fmt.Fprintf(out, "[%d] %s (%s)\n", sys.ID, sys.Name, plural(sys.FileCount, "file"))
			for _, file := range sys.Files {
				fmt.Fprintf(out, "    %s\n", file)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(systemsCmd)
	systemsFlags.register(systemsCmd)
}
