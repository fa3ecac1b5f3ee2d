package cachemanager

import "time"

// ReadThroughCache memoises fn results by key. Errors are never cached.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache CacheManager[K, V]
	fn    func(input I) (V, error)
	ttl   time.Duration
}

// NewReadThroughCache wraps fn with cache. A nil cache disables memoisation.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(input I) (V, error),
	ttl time.Duration,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache: cache,
		fn:    fn,
		ttl:   ttl,
	}
}

// Get returns the cached value for key or computes it from input.
func (r *ReadThroughCache[K, V, I]) Get(key K, input I) (V, error) {
	if r.cache == nil {
		return r.fn(input)
	}

	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	value, err := r.fn(input)
	if err != nil {
		return value, err
	}

	r.cache.Set(key, value, r.ttl)
	return value, nil
}

// Invalidate drops every memoised value.
func (r *ReadThroughCache[K, V, I]) Invalidate() {
	if r.cache != nil {
		r.cache.Flush()
	}
}
