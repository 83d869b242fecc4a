package analysis

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/tristendillon/pydeps/core/models"
)

// DefaultEntryNames are file names treated as intentional entry points.
var DefaultEntryNames = []string{"main.py", "__main__.py", "app.py", "run.py", "server.py"}

// ScriptGuard reports whether file content looks like a runnable script.
type ScriptGuard func(content []byte) bool

// TextualScriptGuard is a best-effort scan for the
// `if __name__ == "__main__":` idiom. It only checks that the three tokens
// occur somewhere in the file.
func TextualScriptGuard(content []byte) bool {
	text := string(content)
	return strings.Contains(text, "__name__") &&
		strings.Contains(text, "__main__") &&
		strings.Contains(text, "if")
}

type UnusedOptions struct {
	EntryNames []string
	Guard      ScriptGuard
}

// UnusedFiles lists the files of m that nothing imports and that do not look
// like entry points, either by name or by content. Files that cannot be read
// are reported unused. This is a heuristic and proves nothing.
func UnusedFiles(m models.DependencyMap, fsys fs.FS, opts UnusedOptions) []string {
	entryNames := opts.EntryNames
	if entryNames == nil {
		entryNames = DefaultEntryNames
	}
	names := make(map[string]struct{}, len(entryNames))
	for _, name := range entryNames {
		names[name] = struct{}{}
	}
	guard := opts.Guard
	if guard == nil {
		guard = TextualScriptGuard
	}

	reverse := ReverseMap(m)
	unused := []string{}

	for _, file := range m.Files() {
		if len(reverse[file]) > 0 {
			continue
		}
		if _, ok := names[path.Base(file)]; ok {
			continue
		}
		if fsys != nil {
			if content, err := fs.ReadFile(fsys, file); err == nil && guard(content) {
				continue
			}
		}
		unused = append(unused, file)
	}

	sort.Strings(unused)
	return unused
}
