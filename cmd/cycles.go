package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var cyclesFlags analysisFlags

var cyclesCmd = &cobra.Command{
	Use:   "cycles [entry]",
	Short: "List circular import groups",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := cyclesFlags.loadResult(cmd.Context(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cyclesFlags.json {
			cycles := result.Cycles
			if cycles == nil {
				cycles = [][]string{}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cycles)
		}
		if len(result.Cycles) == 0 {
			fmt.Fprintln(out, "No circular imports found")
			return nil
		}
		for i, cycle := range result.Cycles {
			fmt.Fprintf(out, "%d. %s\n", i+1, strings.Join(cycle, " <-> "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
	cyclesFlags.register(cyclesCmd)
}
