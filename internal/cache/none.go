package cache

func init() {
	Register("none", newNoneCache)
}

// noneCache never stores anything; every Get is a miss.
type noneCache struct{}

func newNoneCache(ProviderConfig) (Cache, error) {
	return noneCache{}, nil
}

func (noneCache) Get(string) ([]byte, bool) { return nil, false }
func (noneCache) Set(string, []byte)        {}
func (noneCache) Contains(string) bool      { return false }
func (noneCache) Len() int                  { return 0 }
func (noneCache) Close() error              { return nil }
