package walker

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	fsys := fstest.MapFS{
		"main.py":                        {},
		"README.md":                      {},
		"pkg/__init__.py":                {},
		"pkg/mod.py":                     {},
		"pkg/data.json":                  {},
		"pkg/__pycache__/mod.cpython.py": {},
		".venv/lib/site.py":              {},
		"build/gen.py":                   {},
		"src/build/keep.py":              {},
		"tools/vendor/lib.py":            {},
	}

	files, err := NewSourceWalker([]string{"__pycache__", ".venv", "tools/vendor", "/build/"}).Walk(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"main.py",
		"pkg/__init__.py",
		"pkg/mod.py",
	}, files)
}

func TestShouldExclude(t *testing.T) {
	w := NewSourceWalker([]string{"venv", "third_party/vendored", ""})

	tests := []struct {
		rel  string
		want bool
	}{
		{"venv", true},
		{"venv/lib/x.py", true},
		{"app/venv/x.py", true},
		{"third_party/vendored/x.py", true},
		{"app/third_party/vendored/x.py", false},
		{"venvs/x.py", false},
		{".", false},
		{"main.py", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, w.ShouldExclude(tt.rel))
		})
	}
}
