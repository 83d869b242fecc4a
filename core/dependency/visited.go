package dependency

import "sync"

// VisitedSet records which files a build has already claimed.
type VisitedSet interface {
	Contains(path string) bool
	// Insert adds path and reports whether it was newly added.
	Insert(path string) bool
}

// MapVisited is the single-goroutine VisitedSet.
type MapVisited map[string]struct{}

func NewMapVisited() MapVisited {
	return make(MapVisited)
}

func (v MapVisited) Contains(path string) bool {
	_, ok := v[path]
	return ok
}

func (v MapVisited) Insert(path string) bool {
	if _, ok := v[path]; ok {
		return false
	}
	v[path] = struct{}{}
	return true
}

// SyncVisited is safe for concurrent use; Insert is atomic with respect to
// Contains so two workers can never both claim a file.
type SyncVisited struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

func NewSyncVisited() *SyncVisited {
	return &SyncVisited{paths: make(map[string]struct{})}
}

func (v *SyncVisited) Contains(path string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.paths[path]
	return ok
}

func (v *SyncVisited) Insert(path string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.paths[path]; ok {
		return false
	}
	v.paths[path] = struct{}{}
	return true
}
