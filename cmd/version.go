/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pydeps version",
	// skip config loading so version works anywhere
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pydeps %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
