package cache

// EvictCallback is called when an entry is evicted from the cache.
// The redis provider reports evictions it performs itself only, never TTL expiry.
type EvictCallback func(key string, value []byte)

// Logger receives errors from backends whose operations can fail at runtime.
type Logger interface {
	Error(msg string, err error)
}

// Cache stores raw upstream response bodies keyed by request URL.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte)

	// Contains reports whether key is present without touching recency.
	Contains(key string) bool

	// Len returns the number of live entries.
	Len() int

	// Close releases connections held by the backend.
	Close() error
}
