package cache

import (
	"fmt"
	"time"
)

// CacheConfig bounds the parse cache. A zero DefaultTTL keeps entries until
// they are evicted, invalidated or their file content changes.
type CacheConfig struct {
	MaxEntries int           `json:"max_entries"`
	DefaultTTL time.Duration `json:"default_ttl"`
}

func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{MaxEntries: 4096}
}

func (c *CacheConfig) Validate() error {
	if c.MaxEntries <= 0 {
		return fmt.Errorf("cache max entries must be positive, got %d", c.MaxEntries)
	}
	if c.DefaultTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", c.DefaultTTL)
	}
	return nil
}

// CacheMetrics is a snapshot of cache activity since creation.
type CacheMetrics struct {
	Hits          int64   `json:"hits"`
	Misses        int64   `json:"misses"`
	Invalidations int64   `json:"invalidations"`
	TotalEntries  int     `json:"total_entries"`
	HitRate       float64 `json:"hit_rate"`
}

// CalculateHitRate fills HitRate as a percentage of lookups.
func (m *CacheMetrics) CalculateHitRate() {
	m.HitRate = 0
	if lookups := m.Hits + m.Misses; lookups > 0 {
		m.HitRate = float64(m.Hits) / float64(lookups) * 100
	}
}
