package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCacheHitAndMiss(t *testing.T) {
	pc, err := NewParseCache(nil)
	require.NoError(t, err)

	content := []byte("import util\n")
	_, ok := pc.Get("main.py", content)
	assert.False(t, ok)

	pc.Set("main.py", content, []string{"util"})
	specs, ok := pc.Get("main.py", content)
	require.True(t, ok)
	assert.Equal(t, []string{"util"}, specs)

	specs[0] = "mutated"
	again, _ := pc.Get("main.py", content)
	assert.Equal(t, []string{"util"}, again)

	m := pc.GetMetrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.TotalEntries)
	assert.InDelta(t, 66.6, m.HitRate, 0.1)
}

func TestParseCacheRejectsChangedContent(t *testing.T) {
	pc, err := NewParseCache(nil)
	require.NoError(t, err)

	pc.Set("main.py", []byte("import a\n"), []string{"a"})
	_, ok := pc.Get("main.py", []byte("import b\n"))
	assert.False(t, ok)
	assert.Zero(t, pc.Len())
}

func TestParseCacheInvalidate(t *testing.T) {
	pc, err := NewParseCache(nil)
	require.NoError(t, err)

	pc.Set("a.py", nil, nil)
	pc.Set("b.py", nil, nil)
	pc.Invalidate("a.py")
	assert.Equal(t, 1, pc.Len())
	_, ok := pc.Get("a.py", nil)
	assert.False(t, ok)

	pc.Invalidate("not-cached.py")
	assert.Equal(t, 1, pc.Len())
}

func TestParseCacheEvicts(t *testing.T) {
	pc, err := NewParseCache(&CacheConfig{MaxEntries: 2})
	require.NoError(t, err)

	pc.Set("a.py", nil, nil)
	pc.Set("b.py", nil, nil)
	pc.Set("c.py", nil, nil)

	assert.Equal(t, 2, pc.Len())
	_, ok := pc.Get("a.py", nil)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, pc.GetMetrics().Invalidations, int64(1))
}

func TestParseCacheTTL(t *testing.T) {
	pc, err := NewParseCache(&CacheConfig{MaxEntries: 4, DefaultTTL: time.Nanosecond})
	require.NoError(t, err)

	pc.Set("a.py", nil, []string{"x"})
	time.Sleep(time.Millisecond)
	_, ok := pc.Get("a.py", nil)
	assert.False(t, ok)
}

func TestNewParseCacheRejectsBadSize(t *testing.T) {
	_, err := NewParseCache(&CacheConfig{MaxEntries: 0})
	assert.Error(t, err)
}
