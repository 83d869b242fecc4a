package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyMapHelpers(t *testing.T) {
	m := DependencyMap{
		"main.py": {"util.py", "db.py"},
		"util.py": nil,
	}

	assert.Equal(t, []string{"main.py", "util.py"}, m.Files())
	assert.Equal(t, []string{"db.py", "main.py", "util.py"}, m.Nodes())
	assert.Equal(t, 2, m.EdgeCount())

	sorted := m.Sorted()
	assert.Equal(t, []string{"db.py", "util.py"}, sorted["main.py"])
	assert.Equal(t, []string{}, sorted["util.py"])
	assert.Equal(t, []string{"util.py", "db.py"}, m["main.py"], "Sorted must leave m untouched")
}

func TestCacheEntryValidity(t *testing.T) {
	entry := NewCacheEntry(&ParsedFile{RelPath: "a.py", ContentHash: HashContent([]byte("import b\n"))})
	assert.True(t, entry.IsValid([]byte("import b\n")))
	assert.False(t, entry.IsValid([]byte("import c\n")))

	var missing *CacheEntry
	assert.False(t, missing.IsValid(nil))
}
