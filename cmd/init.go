/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/config"
	"github.com/tristendillon/pydeps/core/logger"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default " + config.FileName,
	Long:  `Creates a ` + config.FileName + ` with the default settings in dir (default: the working directory).`,
	Args:  cobra.MaximumNArgs(1),
	// init writes the config, so it must not require one to exist.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		target := filepath.Join(dir, config.FileName)

		if _, err := os.Stat(target); err == nil {
			if !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", target)
			}
			logger.Debug("%s already exists. Overwriting.", target)
		}

		data, err := config.Default().Marshal()
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
		fmt.Fprintf(cmd.OutOrStdout(), "Next Steps:\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  - set entry to your main script\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  - pydeps map\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite an existing config")
}
