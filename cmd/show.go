package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/analysis"
	"github.com/tristendillon/pydeps/core/models"
	"github.com/tristendillon/pydeps/core/report"
)

var (
	showFlags      analysisFlags
	showTransitive bool
	showEntry      string
)

var showCmd = &cobra.Command{
	Use:   "show <file-or-substring>",
	Short: "Show what a file imports and what imports it",
	Long: `Prints the imports and importers of one mapped file. The argument is a
project-relative path or a substring of one; when a substring matches several
files the matches are listed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []string
		if showEntry != "" {
			entries = []string{showEntry}
		}
		result, err := showFlags.loadResult(cmd.Context(), entries)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		matches := matchFiles(result.Map, args[0])
		switch len(matches) {
		case 0:
			return fmt.Errorf("no mapped file matches %q", args[0])
		case 1:
		default:
			fmt.Fprintf(out, "%d files match %q:\n", len(matches), args[0])
			for _, m := range matches {
				fmt.Fprintf(out, "    %s\n", m)
			}
			return nil
		}

		file := matches[0]
		view := report.FileView{File: file, Transitive: showTransitive}
		if showTransitive {
			view.Imports = analysis.Reachable(result.Map, file)
			view.ImportedBy = analysis.Dependents(result.Map, file)
		} else {
			view.Imports = append([]string{}, result.Map[file]...)
			sort.Strings(view.Imports)
			view.ImportedBy = result.Reverse[file]
		}
		return report.WriteFileView(out, view)
	},
}

// matchFiles returns the exact node if present, otherwise every node
// containing query, sorted.
func matchFiles(m models.DependencyMap, query string) []string {
	query = strings.TrimPrefix(strings.ReplaceAll(query, "\\", "/"), "./")
	nodes := m.Nodes()
	for _, node := range nodes {
		if node == query {
			return []string{node}
		}
	}

	lower := strings.ToLower(query)
	var matches []string
	for _, node := range nodes {
		if strings.Contains(strings.ToLower(node), lower) {
			matches = append(matches, node)
		}
	}
	return matches
}

func init() {
	rootCmd.AddCommand(showCmd)
	showFlags.register(showCmd)
	showCmd.Flags().BoolVarP(&showTransitive, "transitive", "t", false, "Follow imports transitively in both directions")
	showCmd.Flags().StringVar(&showEntry, "entry", "", "Entry point to map from (default from config)")
}
