package models

// System is a connected group of at least two files in the undirected
// closure of a DependencyMap.
type System struct {
	ID        int      `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Files     []string `json:"files" yaml:"files"`
	FileCount int      `json:"file_count" yaml:"file_count"`
}

// Stats summarizes one analysis run.
type Stats struct {
	TotalFiles        int     `json:"total_files"`
	TotalDependencies int     `json:"total_dependencies"`
	FilesWithNoDeps   int     `json:"files_with_no_dependencies"`
	MostDepsFile      string  `json:"most_dependencies_file"`
	MostDepsCount     int     `json:"most_dependencies_count"`
	Systems           int     `json:"systems"`
	UnusedFiles       int     `json:"unused_files"`
	Cycles            int     `json:"cycles"`
	ParseErrors       int     `json:"parse_errors"`
	UnresolvedImports int     `json:"unresolved_imports"`
	IOFailures        int     `json:"io_failures"`
	DurationSeconds   float64 `json:"duration_seconds"`
}
