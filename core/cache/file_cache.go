package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tristendillon/pydeps/core/logger"
	"github.com/tristendillon/pydeps/core/models"
)

// ParseCache keeps extracted import specifiers per project-relative path.
// An entry is only served when the file content still hashes to the value it
// was parsed from, so a stale entry can never leak into a rebuild.
type ParseCache struct {
	entries *lru.Cache[string, *models.CacheEntry]
	config  *CacheConfig
	metrics CacheMetrics
	mutex   sync.Mutex
}

func NewParseCache(config *CacheConfig) (*ParseCache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	pc := &ParseCache{config: config}

	entries, err := lru.NewWithEvict[string, *models.CacheEntry](config.MaxEntries, func(string, *models.CacheEntry) {
		pc.mutex.Lock()
		pc.metrics.Invalidations++
		pc.mutex.Unlock()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	pc.entries = entries

	logger.Debug("Created parse cache: MaxEntries=%d, TTL=%v", config.MaxEntries, config.DefaultTTL)
	return pc, nil
}

// Get returns the cached specifiers for relPath if they were parsed from content.
func (pc *ParseCache) Get(relPath string, content []byte) ([]string, bool) {
	entry, ok := pc.entries.Get(relPath)
	if !ok {
		pc.count(false)
		return nil, false
	}

	if !entry.IsValid(content) {
		logger.Debug("Cache miss for %s - file modified", relPath)
		pc.entries.Remove(relPath)
		pc.count(false)
		return nil, false
	}

	if pc.isExpired(entry) {
		logger.Debug("Cache miss for %s - entry expired", relPath)
		pc.entries.Remove(relPath)
		pc.count(false)
		return nil, false
	}

	pc.count(true)
	specifiers := make([]string, len(entry.ParsedFile.Specifiers))
	copy(specifiers, entry.ParsedFile.Specifiers)
	return specifiers, true
}

func (pc *ParseCache) Set(relPath string, content []byte, specifiers []string) {
	stored := make([]string, len(specifiers))
	copy(stored, specifiers)

	pc.entries.Add(relPath, models.NewCacheEntry(&models.ParsedFile{
		RelPath:     relPath,
		ContentHash: models.HashContent(content),
		Specifiers:  stored,
	}))
}

func (pc *ParseCache) Invalidate(relPath string) {
	if pc.entries.Remove(relPath) {
		logger.Debug("Invalidated cache entry for %s", relPath)
	}
}

func (pc *ParseCache) Len() int {
	return pc.entries.Len()
}

func (pc *ParseCache) GetMetrics() *CacheMetrics {
	pc.mutex.Lock()
	metrics := pc.metrics
	pc.mutex.Unlock()

	metrics.TotalEntries = pc.entries.Len()
	metrics.CalculateHitRate()
	return &metrics
}

func (pc *ParseCache) LogStats() {
	metrics := pc.GetMetrics()
	logger.Debug("Cache stats: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Total Entries=%d, Invalidations=%d",
		metrics.Hits, metrics.Misses, metrics.HitRate, metrics.TotalEntries, metrics.Invalidations)
}

func (pc *ParseCache) isExpired(entry *models.CacheEntry) bool {
	return pc.config.DefaultTTL > 0 && time.Since(entry.CreatedAt) > pc.config.DefaultTTL
}

func (pc *ParseCache) count(hit bool) {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()
	if hit {
		pc.metrics.Hits++
	} else {
		pc.metrics.Misses++
	}
}
