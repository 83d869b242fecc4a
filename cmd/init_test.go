package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tristendillon/pydeps/core/config"
	"github.com/tristendillon/pydeps/core/logger"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		logLevel, logfile, cfgFile, verbose, force = "info", "", "", false, false
		logger.SetWriterForAll(os.Stderr)
		logger.SetColor(true)
		logger.SetLevel(logger.INFO)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitRejectsUnknownLogLevel(t *testing.T) {
	dir := t.TempDir()

	_, err := runRoot(t, "init", dir, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "loud"`)
	assert.NoFileExists(t, filepath.Join(dir, config.FileName))
}

func TestInitHonorsLogFlagsWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(target, []byte("source: old\n"), 0o644))
	logPath := filepath.Join(t.TempDir(), "pydeps.log")

	// --config names a file that does not exist; loading it would fail.
	out, err := runRoot(t, "init", dir, "--force", "--verbose", "--logfile", logPath, "--config", filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+target)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "DEBUG "+target+" already exists. Overwriting.")

	loaded, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Source, loaded.Source)
	assert.Equal(t, config.Default().EntryNames, loaded.EntryNames)
}
