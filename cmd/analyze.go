package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/mapper"
	"github.com/tristendillon/pydeps/core/report"
)

// analysisFlags are shared by the read-only analysis commands.
type analysisFlags struct {
	mapFile string
	all     bool
	json    bool
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mapFile, "map", "", "Analyze a previously written dependency map instead of parsing")
	cmd.Flags().BoolVar(&f.all, "all", false, "Map every source file instead of following the entry point")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print JSON instead of text")
}

// loadResult analyzes the persisted map named by --map, or builds a fresh map
// without writing any output files.
func (f *analysisFlags) loadResult(ctx context.Context, args []string) (*mapper.Result, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	if f.mapFile != "" {
		m, err := report.LoadDependencyMap(f.mapFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded %d files from %s", len(m), f.mapFile)

		var fsys fs.FS
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			fsys = os.DirFS(root)
		}
		return mapper.Analyze(m, fsys, cfg.EntryNames)
	}

	opts := mapper.OptionsFromConfig(cfg, root)
	opts.Outputs = mapper.Outputs{}
	opts.All = f.all
	if len(args) > 0 {
		opts.Entries = args[:1]
	}
	opts.Sink = logSink()

	mp, err := mapper.New(opts)
	if err != nil {
		return nil, err
	}
	result, err := mp.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return result, nil
}
