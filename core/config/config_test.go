package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "main.py", cfg.Entry)
	assert.Equal(t, "dependency_map.json", cfg.Outputs.Map)
	assert.Contains(t, cfg.Exclude, "__pycache__")
	for _, pkg := range []string{"build", "dist", "env"} {
		assert.NotContains(t, cfg.Exclude, pkg)
	}
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := []byte(`source: src
entry: app.py
workers: 4
exclude: [migrations]
classifier:
  third_party: [internal_sdk]
cache:
  ttl: 10m
watch:
  debounce: 2s
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.Source)
	assert.Equal(t, "app.py", cfg.Entry)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"migrations"}, cfg.Exclude)
	assert.Equal(t, []string{"internal_sdk"}, cfg.Classifier.ThirdParty)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 4096, cfg.Cache.MaxEntries)
	// untouched keys keep their defaults
	assert.Equal(t, "unused_files.txt", cfg.Outputs.Unused)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: [1, 2\n"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("workers: -1\n"), 0o644))
	_, err = Load(negative)
	assert.ErrorContains(t, err, "workers")

	noMap := filepath.Join(dir, "nomap.yaml")
	require.NoError(t, os.WriteFile(noMap, []byte("outputs:\n  map: \"\"\n"), 0o644))
	_, err = Load(noMap)
	assert.ErrorContains(t, err, "outputs.map")
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
