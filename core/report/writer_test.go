package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tristendillon/pydeps/core/models"
)

func TestWriteDependencyMapShape(t *testing.T) {
	m := models.DependencyMap{
		"main.py":        {"util.py", "app/<views>.py"},
		"util.py":        nil,
		"app/<views>.py": {},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDependencyMap(&buf, m))

	want := `{
  "app/<views>.py": [],
  "main.py": [
    "app/<views>.py",
    "util.py"
  ],
  "util.py": []
}
`
	assert.Equal(t, want, buf.String())
}

func TestDependencyMapRoundTrip(t *testing.T) {
	m := models.DependencyMap{
		"b.py": {"c.py", "a.py"},
		"a.py": {},
		"c.py": {"a.py"},
	}

	var first bytes.Buffer
	require.NoError(t, WriteDependencyMap(&first, m))

	loaded, err := ReadDependencyMap(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.Sorted(), loaded)

	var second bytes.Buffer
	require.NoError(t, WriteDependencyMap(&second, loaded))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestReadDependencyMapRejectsGarbage(t *testing.T) {
	_, err := ReadDependencyMap(strings.NewReader(`["not", "a", "map"]`))
	assert.Error(t, err)

	m, err := ReadDependencyMap(strings.NewReader(`{"a.py": null}`))
	require.NoError(t, err)
	assert.Equal(t, []string{}, m["a.py"])
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	m := models.DependencyMap{"main.py": {"util.py"}, "util.py": {}}

	mapPath := filepath.Join(dir, "dependency_map.json")
	require.NoError(t, SaveDependencyMap(mapPath, m))
	loaded, err := LoadDependencyMap(mapPath)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)

	unusedPath := filepath.Join(dir, "unused_files.txt")
	require.NoError(t, SaveUnused(unusedPath, []string{"a.py", "pkg/b.py"}))
	data, err := os.ReadFile(unusedPath)
	require.NoError(t, err)
	assert.Equal(t, "a.py\npkg/b.py\n", string(data))

	_, err = LoadDependencyMap(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestWriteSystems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSystems(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSystems(&buf, []models.System{{ID: 1, Name: "System: api", Files: []string{"api/a.py", "api/b.py"}, FileCount: 2}}))
	assert.Contains(t, buf.String(), `"name": "System: api"`)
	assert.Contains(t, buf.String(), `"file_count": 2`)
}
