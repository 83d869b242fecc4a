/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tristendillon/pydeps/core/config"
	"github.com/tristendillon/pydeps/core/diagnostics"
	"github.com/tristendillon/pydeps/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pydeps",
	Short: "Map the import dependencies of a Python project.",
	Long: `pydeps statically parses the import statements of a Python project and
records which project files depend on which. The resulting map is used to
find connected systems, circular imports and files nothing imports.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgFile  string
	logfile  string
	rootDir  string
	logLevel string
	verbose  bool

	showUnresolved bool

	cfg *config.Config
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (overrides config source)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Minimum log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().BoolVar(&showUnresolved, "show-unresolved", false, "Log unresolved imports as warnings instead of debug")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if rootDir != "" {
		loaded.Source = rootDir
	}
	cfg = loaded

	logger.Debug("%s called", cmd.CommandPath())
	return nil
}

// setupLogging applies --log-level, --verbose and --logfile.
func setupLogging() error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = logger.DEBUG
	}
	logger.SetLevel(level)

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logger.AddWriterForAll(f)
		logger.SetColor(false)
	}
	return nil
}

// logSink forwards diagnostics to the logger.
func logSink() diagnostics.Sink {
	return diagnostics.LogSink{Loud: showUnresolved}
}

// projectRoot returns the absolute project root from config and flags.
func projectRoot() (string, error) {
	src := cfg.Source
	if src == "" {
		src = "."
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %s: %w", src, err)
	}
	return abs, nil
}
