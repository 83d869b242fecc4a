package cmd

import (
	"context"
	"errors"
	"sync"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/cache"
	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/mapper"
	"github.com/tristendillon/pydeps/core/report"
	"github.com/tristendillon/pydeps/core/watcher"
)

var watchAll bool

var watchCmd = &cobra.Command{
	Use:   "watch [entry]",
	Short: "Rebuild the dependency map whenever a source file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		parseCache, err := cache.NewParseCache(&cache.CacheConfig{
			MaxEntries: cfg.Cache.MaxEntries,
			DefaultTTL: cfg.Cache.TTL,
		})
		if err != nil {
			return err
		}

		opts := mapper.OptionsFromConfig(cfg, root)
		opts.All = watchAll
		if len(args) == 1 {
			opts.Entries = args
		}
		opts.Cache = parseCache
		opts.Sink = logSink()

		mp, err := mapper.New(opts)
		if err != nil {
			return err
		}

		sw, err := watcher.NewSourceWatcher(mp.Root(), cfg.Exclude, cfg.Watch.Debounce, parseCache)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		var mu sync.Mutex
		rebuild := func() error {
			mu.Lock()
			defer mu.Unlock()

			result, err := mp.Run(ctx)
			if err != nil {
				return err
			}
			return report.WriteSummary(cmd.OutOrStdout(), report.Summary{
				Root:    result.Root,
				MapPath: opts.Outputs.Map,
				Stats:   result.Stats,
			})
		}

		sw.FileWatcher.OnStart = func() error {
			logger.Info("Watching %s for changes", mp.Root())
			return rebuild()
		}
		sw.FileWatcher.OnChange = func(changed []string) error {
			logger.Info("Changed: %v", changed)
			return rebuild()
		}
		sw.FileWatcher.OnClose = func() error {
			logger.Info("Stopped watching %s", mp.Root())
			return nil
		}
		defer sw.Close()

		err = sw.Watch(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchAll, "all", false, "Map every source file instead of following the entry point")
}
