// Package cachemanager provides small generic caches backed by go-cache.
package cachemanager

import "time"

// CacheManager is a keyed cache with per-entry TTLs.
type CacheManager[K ~string, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(keys ...K)
	Flush()
	Len() int
}
