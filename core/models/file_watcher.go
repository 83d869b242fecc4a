package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher holds the state of one watch session over a project root.
type FileWatcher struct {
	Watcher       *fsnotify.Watcher
	RootDir       string
	Debounce      time.Duration
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	Pending       map[string]struct{}
	OnStart       func() error
	OnChange      func(changed []string) error
	OnClose       func() error
}

func NewFileWatcher(rootDir string, debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &FileWatcher{
		Watcher:  watcher,
		RootDir:  rootDir,
		Debounce: debounce,
		Pending:  make(map[string]struct{}),
		OnStart:  func() error { return nil },
		OnChange: func([]string) error { return nil },
		OnClose:  func() error { return nil },
	}, nil
}

// DrainPending returns and clears the changed paths collected since the
// last rebuild. Caller must hold Mutex.
func (fw *FileWatcher) DrainPending() []string {
	changed := make([]string, 0, len(fw.Pending))
	for p := range fw.Pending {
		changed = append(changed, p)
	}
	fw.Pending = make(map[string]struct{})
	return changed
}
