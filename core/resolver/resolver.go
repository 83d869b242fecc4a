package resolver

import (
	"io/fs"
	"path"
	"strings"

	"github.com/tristendillon/pydeps/core/ast"
	"github.com/tristendillon/pydeps/core/diagnostics"
)

// Resolver maps internal import specifiers to project files. Paths in and out
// are project-relative with forward slashes; fsys is rooted at the project root.
type Resolver struct {
	fsys fs.FS
	sink diagnostics.Sink
}

func New(fsys fs.FS, sink diagnostics.Sink) *Resolver {
	if sink == nil {
		sink = diagnostics.Discard
	}
	return &Resolver{fsys: fsys, sink: sink}
}

// Candidates lists the paths tried for specifier, in precedence order:
//
//  1. a/b/c.py from the root
//  2. a/b/c/__init__.py from the root
//  3. c.py next to the importing file
//  4. c.py one directory above the importing file (skipped at the root)
func Candidates(specifier, importingFile string) []string {
	specifier = strings.Trim(strings.TrimSpace(specifier), ".")
	if specifier == "" {
		return nil
	}

	modulePath := strings.ReplaceAll(specifier, ".", "/")
	last := specifier
	if i := strings.LastIndexByte(specifier, '.'); i >= 0 {
		last = specifier[i+1:]
	}

	candidates := []string{
		modulePath + ast.Extension,
		path.Join(modulePath, ast.InitFile),
	}

	dir := path.Dir(importingFile)
	candidates = append(candidates, path.Join(dir, last+ast.Extension))
	if dir != "." {
		candidates = append(candidates, path.Join(path.Dir(dir), last+ast.Extension))
	}
	return candidates
}

// Resolve returns the first existing candidate for specifier. A miss is
// reported to the sink as an UnresolvedImport and is not an error.
func (r *Resolver) Resolve(specifier, importingFile string) (string, bool) {
	for _, candidate := range Candidates(specifier, importingFile) {
		if r.isFile(candidate) {
			return candidate, true
		}
	}

	r.sink.Report(diagnostics.Diagnostic{
		Severity:  diagnostics.SeverityWarning,
		Kind:      diagnostics.KindUnresolvedImport,
		File:      importingFile,
		Specifier: specifier,
		Message:   "could not resolve import",
	})
	return "", false
}

func (r *Resolver) isFile(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
