package api

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository stores serialized responses by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// cacheKey derives a stable key from the endpoint and the raw request body.
func cacheKey(endpoint string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(endpoint))
	h.Write([]byte{'\n'})
	h.Write(body)
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// MemoryCache is an in-process cache with a fixed TTL and a bound on the
// number of entries. When full, the least recently written entry is dropped.
// It is safe for concurrent use.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	order      *list.List
	items      map[string]*list.Element
	now        func() time.Time
}

type memoryEntry struct {
	key     string
	value   string
	expires time.Time
}

// NewMemoryCache uses DefaultCacheTTL and DefaultCacheEntries.
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithLimits(DefaultCacheTTL, DefaultCacheEntries)
}

// NewMemoryCacheWithLimits falls back to the defaults for values <= 0.
func NewMemoryCacheWithLimits(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.items[key]
	if !ok {
		return "", false
	}
	e := el.Value.(*memoryEntry)
	if !m.now().Before(e.expires) {
		m.remove(el)
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	expires := m.now().Add(m.ttl)
	if el, ok := m.items[key]; ok {
		e := el.Value.(*memoryEntry)
		e.value, e.expires = value, expires
		m.order.MoveToBack(el)
	} else {
		m.items[key] = m.order.PushBack(&memoryEntry{key: key, value: value, expires: expires})
	}
	m.purgeExpired()
	for m.order.Len() > m.maxEntries {
		m.remove(m.order.Front())
	}
	return nil
}

// Len reports the number of live entries.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired()
	return m.order.Len()
}

// purgeExpired drops expired entries from the front. Entries are ordered by
// write time and share one TTL, so the first live entry ends the scan.
func (m *MemoryCache) purgeExpired() {
	now := m.now()
	for el := m.order.Front(); el != nil; el = m.order.Front() {
		if now.Before(el.Value.(*memoryEntry).expires) {
			return
		}
		m.remove(el)
	}
}

func (m *MemoryCache) remove(el *list.Element) {
	m.order.Remove(el)
	delete(m.items, el.Value.(*memoryEntry).key)
}

// RedisCache stores responses in Redis with a fixed TTL.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		MaxRetries:  1,
	})
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: rdb, ttl: ttl, timeout: 2 * time.Second}
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Close releases the connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
