package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderConfig holds the configuration needed to create a cache instance.
type ProviderConfig struct {
	// Size is the maximum number of entries.
	Size int

	// TTL is the time-to-live for cache entries.
	TTL time.Duration

	// OnEvict is called when an entry is evicted. Not all providers support this.
	OnEvict EvictCallback

	// Logger receives error reports from cache operations. May be nil.
	Logger Logger

	// KeyPrefix namespaces keys in shared backends. Defaults to "showfinder:".
	KeyPrefix string

	// MaxEntryBytes caps the size of a single stored value. Zero means no limit.
	MaxEntryBytes int

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// Group labels the cache_* Prometheus metrics. When non-empty the cache
	// is wrapped with metric instrumentation.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a Cache using the named provider. An empty name selects "none".
// When cfg.Group is set, hits, misses, evictions and stored bytes are counted
// under that group and the entry count is collected lazily at scrape time.
// Values over cfg.MaxEntryBytes are silently dropped on Set.
func New(name string, cfg ProviderConfig) (Cache, error) {
	if name == "" {
		name = "none"
	}

	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}

	if cfg.Group == "" {
		c, err := p(cfg)
		if err != nil {
			return nil, err
		}
		return withEntryLimit(c, cfg, nil), nil
	}

	group := cfg.Group
	original := cfg.OnEvict
	cfg.OnEvict = func(key string, value []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if original != nil {
			original(key, value)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}

	return withEntryLimit(newInstrumentedCache(inner, group), cfg, func(string, int) {
		SkippedTotal.WithLabelValues(group).Inc()
	}), nil
}

func withEntryLimit(c Cache, cfg ProviderConfig, onSkip func(key string, size int)) Cache {
	if cfg.MaxEntryBytes <= 0 {
		return c
	}
	return newLimitedCache(c, cfg.MaxEntryBytes, onSkip)
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
