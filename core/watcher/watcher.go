package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tristendillon/pydeps/core/ast"
	"github.com/tristendillon/pydeps/core/cache"
	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/models"
	"github.com/tristendillon/pydeps/core/walker"
)

var ErrClosed = errors.New("watcher closed")

// SourceWatcher rebuilds on changes to Python files under a project root.
// Bursts of events are coalesced: OnChange runs once per quiet period with
// every path touched during the burst.
type SourceWatcher struct {
	FileWatcher *models.FileWatcher
	walker      *walker.SourceWalker
	cache       *cache.ParseCache
}

// NewSourceWatcher watches rootDir. Paths matching exclude are ignored. If
// parseCache is non-nil, entries for changed files are invalidated before
// OnChange runs.
func NewSourceWatcher(rootDir string, exclude []string, debounce time.Duration, parseCache *cache.ParseCache) (*SourceWatcher, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", rootDir, err)
	}
	fw, err := models.NewFileWatcher(abs, debounce)
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &SourceWatcher{
		FileWatcher: fw,
		walker:      walker.NewSourceWalker(exclude),
		cache:       parseCache,
	}, nil
}

// Watch blocks until ctx is done or the underlying watcher fails. OnStart
// runs once after the directory watches are installed.
func (sw *SourceWatcher) Watch(ctx context.Context) error {
	if err := sw.addWatchersRecursively(sw.FileWatcher.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	if err := sw.FileWatcher.OnStart(); err != nil {
		logger.Error("Watcher.OnStart failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-sw.FileWatcher.Watcher.Events:
			if !ok {
				return ErrClosed
			}
			sw.handle(event)

		case err, ok := <-sw.FileWatcher.Watcher.Errors:
			if !ok {
				return ErrClosed
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (sw *SourceWatcher) handle(event fsnotify.Event) {
	rel, ok := sw.relPath(event.Name)
	if !ok || sw.walker.ShouldExclude(rel) {
		return
	}
	logger.Debug("File event: %s %s", event.Op, rel)

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := sw.addWatchersRecursively(event.Name); err != nil {
				logger.Warn("Failed to watch new directory %s: %v", rel, err)
			}
			return
		}
	}

	if filepath.Ext(rel) != ast.Extension {
		return
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	if sw.cache != nil {
		sw.cache.Invalidate(rel)
	}
	sw.schedule(rel)
}

func (sw *SourceWatcher) schedule(rel string) {
	fw := sw.FileWatcher
	fw.Mutex.Lock()
	defer fw.Mutex.Unlock()

	fw.Pending[rel] = struct{}{}
	if fw.DebounceTimer != nil {
		fw.DebounceTimer.Stop()
	}
	fw.DebounceTimer = time.AfterFunc(fw.Debounce, sw.flush)
}

func (sw *SourceWatcher) flush() {
	fw := sw.FileWatcher
	fw.Mutex.Lock()
	changed := fw.DrainPending()
	fw.Mutex.Unlock()

	if len(changed) == 0 {
		return
	}
	sort.Strings(changed)
	logger.Debug("%d source files changed, rebuilding...", len(changed))
	if err := fw.OnChange(changed); err != nil {
		logger.Error("Watcher.OnChange failed: %v", err)
	}
}

func (sw *SourceWatcher) Close() error {
	fw := sw.FileWatcher
	fw.Mutex.Lock()
	if fw.DebounceTimer != nil {
		fw.DebounceTimer.Stop()
	}
	fw.Mutex.Unlock()

	if err := fw.OnClose(); err != nil {
		logger.Error("Watcher.OnClose failed: %v", err)
	}
	return fw.Watcher.Close()
}

func (sw *SourceWatcher) relPath(name string) (string, bool) {
	rel, err := filepath.Rel(sw.FileWatcher.RootDir, name)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

func (sw *SourceWatcher) addWatchersRecursively(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		if rel, ok := sw.relPath(p); ok && rel != "." && sw.walker.ShouldExclude(rel) {
			logger.Debug("Excluding directory: %s", rel)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", p)
		if err := sw.FileWatcher.Watcher.Add(p); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", p, err)
		}
		return nil
	})
}
