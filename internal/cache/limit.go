package cache

// limitedCache drops values larger than max bytes instead of storing them.
type limitedCache struct {
	Cache
	max    int
	onSkip func(key string, size int)
}

func newLimitedCache(inner Cache, max int, onSkip func(key string, size int)) *limitedCache {
	return &limitedCache{Cache: inner, max: max, onSkip: onSkip}
}

func (c *limitedCache) Set(key string, value []byte) {
	if len(value) > c.max {
		if c.onSkip != nil {
			c.onSkip(key, len(value))
		}
		return
	}
	c.Cache.Set(key, value)
}
