package dependency

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tristendillon/pydeps/core/ast"
	"github.com/tristendillon/pydeps/core/cache"
	"github.com/tristendillon/pydeps/core/classify"
	"github.com/tristendillon/pydeps/core/diagnostics"
	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/models"
	"github.com/tristendillon/pydeps/core/resolver"
	"github.com/tristendillon/pydeps/core/walker"
)

var (
	ErrInvalidRoot   = errors.New("invalid project root")
	ErrEntryNotFound = errors.New("entry point not found")
)

// Extractor turns file content into import specifiers.
type Extractor interface {
	Extract(ctx context.Context, path string, content []byte) ([]string, error)
}

type Classifier interface {
	IsExternal(specifier string) bool
}

type PathResolver interface {
	Resolve(specifier, importingFile string) (string, bool)
}

type Option func(*Builder)

func WithExtractor(e Extractor) Option { return func(b *Builder) { b.extractor = e } }

func WithClassifier(c Classifier) Option { return func(b *Builder) { b.classifier = c } }

func WithResolver(r PathResolver) Option { return func(b *Builder) { b.resolver = r } }

func WithSink(s diagnostics.Sink) Option { return func(b *Builder) { b.sink = s } }

// WithFS replaces the filesystem the builder reads from. It must be rooted
// at the project root; the default is os.DirFS(root).
func WithFS(fsys fs.FS) Option {
	return func(b *Builder) {
		if fsys != nil {
			b.fsys = fsys
		}
	}
}

func WithCache(c *cache.ParseCache) Option { return func(b *Builder) { b.cache = c } }

// WithExclude sets directories skipped by the whole-tree scan.
func WithExclude(exclude []string) Option {
	return func(b *Builder) { b.walker = walker.NewSourceWalker(exclude) }
}

// WithWorkers sets the parallelism of the whole-tree scan. Entry-point
// traversal is always sequential.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithVisitedSet overrides the visited-set implementation. The factory is
// called once per Build.
func WithVisitedSet(newSet func() VisitedSet) Option {
	return func(b *Builder) { b.newVisited = newSet }
}

// Builder walks a project and records which files import which.
type Builder struct {
	root       string
	fsys       fs.FS
	extractor  Extractor
	classifier Classifier
	resolver   PathResolver
	walker     *walker.SourceWalker
	sink       diagnostics.Sink
	cache      *cache.ParseCache
	workers    int
	newVisited func() VisitedSet
}

// NewBuilder validates root and wires the default parser, classifier and
// resolver. A root that does not exist or is not a directory is rejected.
func NewBuilder(root string, opts ...Option) (*Builder, error) {
	abs, err := ValidateRoot(root)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		root:    abs,
		fsys:    os.DirFS(abs),
		workers: 1,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.sink == nil {
		b.sink = diagnostics.Discard
	}
	if b.extractor == nil {
		b.extractor = ast.NewImportParser()
	}
	if b.classifier == nil {
		b.classifier = classify.New()
	}
	if b.resolver == nil {
		b.resolver = resolver.New(b.fsys, b.sink)
	}
	if b.walker == nil {
		b.walker = walker.NewSourceWalker(nil)
	}
	return b, nil
}

func ValidateRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, abs)
	}
	return abs, nil
}

func (b *Builder) Root() string { return b.root }

// FS returns the filesystem rooted at the project root.
func (b *Builder) FS() fs.FS { return b.fsys }

// Build maps dependencies starting from entries, or from every source file
// under the root when entries is empty. Each file is parsed at most once.
// On cancellation the partial map is dropped and ctx.Err() returned.
func (b *Builder) Build(ctx context.Context, entries []string) (models.DependencyMap, error) {
	if len(entries) == 0 {
		return b.buildAll(ctx)
	}

	starts := make([]string, 0, len(entries))
	for _, entry := range entries {
		rel, err := b.RelPath(entry)
		if err != nil {
			return nil, err
		}
		info, err := fs.Stat(b.fsys, rel)
		if err != nil || !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, entry)
		}
		starts = append(starts, rel)
	}
	return b.buildFrom(ctx, starts)
}

func (b *Builder) buildFrom(ctx context.Context, starts []string) (models.DependencyMap, error) {
	result := make(models.DependencyMap)
	visited := b.visitedSet(false)

	stack := make([]string, 0, len(starts))
	for i := len(starts) - 1; i >= 0; i-- {
		stack = append(stack, starts[i])
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visited.Insert(file) {
			continue
		}

		deps, err := b.processFile(ctx, file)
		if err != nil {
			return nil, err
		}
		result[file] = deps

		for i := len(deps) - 1; i >= 0; i-- {
			if !visited.Contains(deps[i]) {
				stack = append(stack, deps[i])
			}
		}
	}

	logger.Debug("Mapped %d files from %d entry points", len(result), len(starts))
	return result, nil
}

func (b *Builder) buildAll(ctx context.Context) (models.DependencyMap, error) {
	files, err := b.walker.Walk(b.fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate source files: %w", err)
	}
	logger.Debug("Found %d source files under %s", len(files), b.root)

	result := make(models.DependencyMap, len(files))

	if b.workers <= 1 {
		visited := b.visitedSet(false)
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !visited.Insert(file) {
				continue
			}
			deps, err := b.processFile(ctx, file)
			if err != nil {
				return nil, err
			}
			result[file] = deps
		}
		return result, nil
	}

	var mu sync.Mutex
	visited := b.visitedSet(true)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		file := file
		g.Go(func() error {
			if !visited.Insert(file) {
				return nil
			}
			deps, err := b.processFile(gctx, file)
			if err != nil {
				return err
			}
			mu.Lock()
			result[file] = deps
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// processFile reads, parses, classifies and resolves one file. Only context
// errors are returned; everything else becomes a diagnostic and the file is
// recorded with no dependencies.
func (b *Builder) processFile(ctx context.Context, file string) ([]string, error) {
	content, err := fs.ReadFile(b.fsys, file)
	if err != nil {
		b.sink.Report(diagnostics.Diagnostic{
			Severity: diagnostics.SeverityError,
			Kind:     diagnostics.KindIOFailure,
			File:     file,
			Message:  err.Error(),
		})
		return []string{}, nil
	}

	specifiers, err := b.specifiers(ctx, file, content)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		b.sink.Report(diagnostics.Diagnostic{
			Severity: diagnostics.SeverityError,
			Kind:     diagnostics.KindParseError,
			File:     file,
			Message:  err.Error(),
		})
		return []string{}, nil
	}

	deps := []string{}
	seen := make(map[string]struct{}, len(specifiers))
	for _, spec := range specifiers {
		if b.classifier.IsExternal(spec) {
			continue
		}
		resolved, ok := b.resolver.Resolve(spec, file)
		if !ok || resolved == file {
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		deps = append(deps, resolved)
	}
	return deps, nil
}

func (b *Builder) specifiers(ctx context.Context, file string, content []byte) ([]string, error) {
	if b.cache != nil {
		if specs, ok := b.cache.Get(file, content); ok {
			return specs, nil
		}
	}
	specs, err := b.extractor.Extract(ctx, file, content)
	if err != nil {
		return nil, err
	}
	if b.cache != nil {
		b.cache.Set(file, content, specs)
	}
	return specs, nil
}

// RelPath converts an absolute path inside the root, or a root-relative
// path, to the canonical project-relative form.
func (b *Builder) RelPath(p string) (string, error) {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(b.root, p)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrEntryNotFound, p)
		}
		p = rel
	}
	rel := path.Clean(filepath.ToSlash(p))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") || !fs.ValidPath(rel) {
		return "", fmt.Errorf("%w: %s is outside %s", ErrEntryNotFound, p, b.root)
	}
	return rel, nil
}

func (b *Builder) visitedSet(concurrent bool) VisitedSet {
	if b.newVisited != nil {
		return b.newVisited()
	}
	if concurrent {
		return NewSyncVisited()
	}
	return NewMapVisited()
}
