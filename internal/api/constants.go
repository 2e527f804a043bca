package api

import "time"

const (
	// MaxRequestBytes caps JSON request bodies.
	MaxRequestBytes = 1 << 20
	// MaxImageBytes caps raw image uploads to /v1/qr/scan.
	MaxImageBytes = 5 << 20

	DefaultRateLimit  = 60
	DefaultRateWindow = time.Minute
	DefaultCacheTTL   = 10 * time.Minute

	// DefaultCacheEntries bounds the in-memory response cache.
	DefaultCacheEntries = 1024

	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute

	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second

	cacheKeyPrefix = "calckit:"
)
