package api

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	_, ok := c.Get("k")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", "v"))
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheDropsOldestPastCapacity(t *testing.T) {
	c := NewMemoryCacheWithLimits(time.Hour, 3)
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Set(fmt.Sprintf("k%d", i), "v"))
	}
	assert.Equal(t, 3, c.Len())
	for i := 0; i < 7; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.False(t, ok, "k%d should be evicted", i)
	}
	for i := 7; i < 10; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.True(t, ok, "k%d should be kept", i)
	}

	// Rewriting a key makes it the newest.
	require.NoError(t, c.Set("k7", "v2"))
	require.NoError(t, c.Set("k10", "v"))
	_, ok := c.Get("k8")
	assert.False(t, ok)
	got, ok := c.Get("k7")
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestMemoryCacheExpiresEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCacheWithLimits(time.Minute, 10)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set("a", "1"))
	now = now.Add(30 * time.Second)
	require.NoError(t, c.Set("b", "2"))

	now = now.Add(31 * time.Second)
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())

	now = now.Add(time.Minute)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCacheDefaults(t *testing.T) {
	c := NewMemoryCacheWithLimits(0, -1)
	assert.Equal(t, DefaultCacheTTL, c.ttl)
	assert.Equal(t, DefaultCacheEntries, c.maxEntries)
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("projection", []byte(`{"years":1}`))
	assert.True(t, strings.HasPrefix(a, cacheKeyPrefix))
	assert.Len(t, a, len(cacheKeyPrefix)+64)
	assert.Equal(t, a, cacheKey("projection", []byte(`{"years":1}`)))
	assert.NotEqual(t, a, cacheKey("goal", []byte(`{"years":1}`)))
	assert.NotEqual(t, a, cacheKey("projection", []byte(`{"years":2}`)))
}

func TestRedisCacheUnreachable(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", 0)
	defer c.Close()
	assert.Equal(t, DefaultCacheTTL, c.ttl)

	_, ok := c.Get("k")
	assert.False(t, ok, "an unreachable redis is a miss")
	assert.Error(t, c.Set("k", "v"))

	c = NewRedisCache("127.0.0.1:1", time.Second)
	defer c.Close()
	assert.Equal(t, time.Second, c.ttl)
}
