/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/mapper"
	"github.com/tristendillon/pydeps/core/report"
)

var (
	mapAll       bool
	mapWorkers   int
	mapOutput    string
	mapUnused    bool
	mapSystems   bool
	mapListFiles bool
)

var mapCmd = &cobra.Command{
	Use:   "map [entry]",
	Short: "Build and save the dependency map",
	Long: `Follows every project import reachable from the entry point (default: the
config entry) and writes dependency_map.json. With --all every .py file under
the root is mapped instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		opts := mapper.OptionsFromConfig(cfg, root)
		opts.All = mapAll
		if len(args) == 1 {
			opts.Entries = args
		}
		if cmd.Flags().Changed("workers") {
			opts.Workers = mapWorkers
		}
		if mapOutput != "" {
			opts.Outputs.Map = mapOutput
		}
		if !mapUnused {
			opts.Outputs.Unused = ""
		}
		if !mapSystems {
			opts.Outputs.Systems = ""
		}
		opts.Sink = logSink()

		mp, err := mapper.New(opts)
		if err != nil {
			return err
		}
		result, err := mp.Run(cmd.Context())
		if err != nil {
			return err
		}

		return report.WriteSummary(cmd.OutOrStdout(), report.Summary{
			Root:      result.Root,
			MapPath:   opts.Outputs.Map,
			Stats:     result.Stats,
			Systems:   result.Systems,
			Unused:    result.Unused,
			Cycles:    result.Cycles,
			ShowFiles: mapListFiles,
		})
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().BoolVar(&mapAll, "all", false, "Map every source file instead of following the entry point")
	mapCmd.Flags().IntVar(&mapWorkers, "workers", 1, "Parallel workers for --all")
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "", "Dependency map path (default from config)")
	mapCmd.Flags().BoolVar(&mapUnused, "unused", true, "Also write the unused file list")
	mapCmd.Flags().BoolVar(&mapSystems, "systems", true, "Also write systems.json")
	mapCmd.Flags().BoolVar(&mapListFiles, "list", false, "List system members and unused files in the summary")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
