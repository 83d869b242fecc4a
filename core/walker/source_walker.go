package walker

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/tristendillon/pydeps/core/ast"
	"github.com/tristendillon/pydeps/core/logger"
)

// SourceWalker enumerates Python source files under a project root.
type SourceWalker struct {
	Exclude []string
}

func NewSourceWalker(exclude []string) *SourceWalker {
	cleaned := make([]string, 0, len(exclude))
	for _, ex := range exclude {
		ex = strings.Trim(path.Clean(strings.ReplaceAll(ex, "\\", "/")), "/")
		if ex != "" && ex != "." {
			cleaned = append(cleaned, ex)
		}
	}
	return &SourceWalker{Exclude: cleaned}
}

// Walk returns the sorted project-relative paths of every .py file in fsys,
// skipping excluded directories.
func (w *SourceWalker) Walk(fsys fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			logger.Debug("Skipping unreadable path %s: %v", p, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if p != "." && w.ShouldExclude(p) {
				logger.Info("Excluding directory: %s", p)
				return fs.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ast.Extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ShouldExclude reports whether a project-relative path is, or sits under, an
// excluded entry. Entries without a slash match any path segment; entries
// with a slash match from the root.
func (w *SourceWalker) ShouldExclude(rel string) bool {
	rel = strings.Trim(path.Clean(rel), "/")
	if rel == "." || rel == "" {
		return false
	}
	segments := strings.Split(rel, "/")

	for _, ex := range w.Exclude {
		if strings.Contains(ex, "/") {
			if rel == ex || strings.HasPrefix(rel, ex+"/") {
				return true
			}
			continue
		}
		for _, seg := range segments {
			if seg == ex {
				return true
			}
		}
	}
	return false
}
