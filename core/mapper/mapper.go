// Package mapper runs a full analysis: build the dependency map, derive
// systems, cycles and unused files from it, and persist the outputs.
package mapper

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/tristendillon/pydeps/core/analysis"
	"github.com/tristendillon/pydeps/core/ast"
	"github.com/tristendillon/pydeps/core/cache"
	"github.com/tristendillon/pydeps/core/classify"
	"github.com/tristendillon/pydeps/core/config"
	"github.com/tristendillon/pydeps/core/dependency"
	"github.com/tristendillon/pydeps/core/diagnostics"
	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/models"
	"github.com/tristendillon/pydeps/core/report"
)

// Outputs selects which files Run writes. Empty paths are skipped.
type Outputs struct {
	Map     string
	Unused  string
	Systems string
}

type Options struct {
	Root    string
	Entries []string
	// All maps every source file under Root and ignores Entries.
	All        bool
	Workers    int
	Exclude    []string
	EntryNames []string
	Stdlib     []string
	ThirdParty []string
	MaxFile    int64
	Outputs    Outputs
	// Cache is reused across runs by watch mode. Nil disables caching.
	Cache *cache.ParseCache
	// Sink receives every diagnostic in addition to the run's collector.
	Sink diagnostics.Sink
}

// OptionsFromConfig resolves cfg against root. Output paths are relative to
// cfg.Output, which is itself relative to root.
func OptionsFromConfig(cfg *config.Config, root string) Options {
	outDir := cfg.Output
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}
	join := func(name string) string {
		if name == "" {
			return ""
		}
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(outDir, name)
	}

	opts := Options{
		Root:       root,
		Workers:    cfg.Workers,
		Exclude:    cfg.Exclude,
		EntryNames: cfg.EntryNames,
		Stdlib:     cfg.Classifier.Stdlib,
		ThirdParty: cfg.Classifier.ThirdParty,
		MaxFile:    cfg.Parser.MaxFileSize,
		Outputs: Outputs{
			Map:     join(cfg.Outputs.Map),
			Unused:  join(cfg.Outputs.Unused),
			Systems: join(cfg.Outputs.Systems),
		},
	}
	if cfg.Entry != "" {
		opts.Entries = []string{cfg.Entry}
	}
	return opts
}

type Result struct {
	Root        string
	Map         models.DependencyMap
	Reverse     models.DependencyMap
	Systems     []models.System
	Unused      []string
	Cycles      [][]string
	Stats       models.Stats
	Diagnostics []diagnostics.Diagnostic
}

type Mapper struct {
	opts    Options
	builder *dependency.Builder
	diag    *diagnostics.Collector
}

func New(opts Options) (*Mapper, error) {
	diag := diagnostics.NewCollector()
	sink := diagnostics.Sink(diag)
	if opts.Sink != nil {
		sink = diagnostics.MultiSink{diag, opts.Sink}
	}

	builderOpts := []dependency.Option{
		dependency.WithSink(sink),
		dependency.WithExtractor(ast.NewImportParser(ast.WithMaxFileSize(opts.MaxFile))),
		dependency.WithClassifier(classify.New(
			classify.WithStdlib(opts.Stdlib...),
			classify.WithThirdParty(opts.ThirdParty...),
		)),
		dependency.WithExclude(opts.Exclude),
		dependency.WithWorkers(opts.Workers),
	}
	if opts.Cache != nil {
		builderOpts = append(builderOpts, dependency.WithCache(opts.Cache))
	}

	builder, err := dependency.NewBuilder(opts.Root, builderOpts...)
	if err != nil {
		return nil, err
	}
	return &Mapper{opts: opts, builder: builder, diag: diag}, nil
}

func (mp *Mapper) Root() string { return mp.builder.Root() }

// Run performs one analysis and writes the configured outputs. Diagnostics
// from a previous Run are discarded.
func (mp *Mapper) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	mp.diag.Reset()

	var entries []string
	if !mp.opts.All {
		entries = mp.opts.Entries
	}
	if len(entries) > 0 {
		logger.Info("Mapping dependencies from %v", entries)
	} else {
		logger.Info("Mapping every source file under %s", mp.builder.Root())
	}

	depMap, err := mp.builder.Build(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency map: %w", err)
	}

	result, err := derive(depMap, mp.builder.FS(), mp.opts.EntryNames)
	if err != nil {
		return nil, err
	}
	result.Root = mp.builder.Root()
	summary := mp.diag.Summary()
	if summary.Total() > 0 {
		logger.Info("%d diagnostics: %d parse errors, %d unresolved imports, %d unreadable files",
			summary.Total(), summary.ParseErrors, summary.UnresolvedImports, summary.IOFailures)
	}
	result.Stats = analysis.ComputeStats(depMap, result.Systems, result.Unused, result.Cycles, summary, time.Since(start))
	result.Diagnostics = mp.diag.Diagnostics()

	if err := mp.write(result); err != nil {
		return nil, err
	}

	if mp.opts.Cache != nil {
		mp.opts.Cache.LogStats()
	}
	logger.Debug("Analysis finished in %s", time.Since(start))
	return result, nil
}

func derive(depMap models.DependencyMap, fsys fs.FS, entryNames []string) (*Result, error) {
	systems, err := analysis.Systems(depMap)
	if err != nil {
		return nil, fmt.Errorf("failed to detect systems: %w", err)
	}
	cycles, err := analysis.Cycles(depMap)
	if err != nil {
		return nil, fmt.Errorf("failed to detect cycles: %w", err)
	}
	unused := analysis.UnusedFiles(depMap, fsys, analysis.UnusedOptions{EntryNames: entryNames})

	return &Result{
		Map:     depMap,
		Reverse: analysis.ReverseMap(depMap),
		Systems: systems,
		Unused:  unused,
		Cycles:  cycles,
	}, nil
}

func (mp *Mapper) write(result *Result) error {
	out := mp.opts.Outputs
	if out.Map != "" {
		if err := report.SaveDependencyMap(out.Map, result.Map); err != nil {
			return fmt.Errorf("failed to save dependency map: %w", err)
		}
		logger.Info("Dependency map saved to %s", out.Map)
	}
	if out.Unused != "" {
		if err := report.SaveUnused(out.Unused, result.Unused); err != nil {
			return fmt.Errorf("failed to save unused files: %w", err)
		}
		logger.Debug("Unused file list saved to %s", out.Unused)
	}
	if out.Systems != "" {
		if err := report.SaveSystems(out.Systems, result.Systems); err != nil {
			return fmt.Errorf("failed to save systems: %w", err)
		}
		logger.Debug("Systems saved to %s", out.Systems)
	}
	return nil
}

// Analyze derives systems, cycles, unused files and stats from an existing
// map without parsing anything. fsys is consulted for the script-guard check
// and may be nil, in which case only entry names exempt a file.
func Analyze(depMap models.DependencyMap, fsys fs.FS, entryNames []string) (*Result, error) {
	result, err := derive(depMap, fsys, entryNames)
	if err != nil {
		return nil, err
	}
	result.Stats = analysis.ComputeStats(depMap, result.Systems, result.Unused, result.Cycles, diagnostics.Summary{}, 0)
	return result, nil
}
