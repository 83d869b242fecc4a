package analysis

import (
	"time"

	"github.com/tristendillon/pydeps/core/diagnostics"
	"github.com/tristendillon/pydeps/core/models"
)

// ComputeStats summarizes a map and what was derived from it. The file with
// the most dependencies is the lexicographically first among ties.
func ComputeStats(m models.DependencyMap, systems []models.System, unused []string, cycles [][]string, diag diagnostics.Summary, elapsed time.Duration) models.Stats {
	stats := models.Stats{
		TotalFiles:        len(m),
		TotalDependencies: m.EdgeCount(),
		MostDepsFile:      "None",
		Systems:           len(systems),
		UnusedFiles:       len(unused),
		Cycles:            len(cycles),
		ParseErrors:       diag.ParseErrors,
		UnresolvedImports: diag.UnresolvedImports,
		IOFailures:        diag.IOFailures,
		DurationSeconds:   elapsed.Seconds(),
	}

	first := true
	for _, file := range m.Files() {
		deps := m[file]
		if len(deps) == 0 {
			stats.FilesWithNoDeps++
		}
		if first || len(deps) > stats.MostDepsCount {
			stats.MostDepsFile = file
			stats.MostDepsCount = len(deps)
			first = false
		}
	}
	return stats
}
