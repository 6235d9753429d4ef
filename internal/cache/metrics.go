package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Response cache metrics carry a "cache" label set from ProviderConfig.Group.
var (
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showfinder_cache_hits_total",
			Help: "Upstream responses served from the cache.",
		},
		[]string{"cache"},
	)

	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showfinder_cache_misses_total",
			Help: "Cache lookups that fell through to the upstream API.",
		},
		[]string{"cache"},
	)

	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showfinder_cache_evictions_total",
			Help: "Responses evicted from the cache by size or TTL.",
		},
		[]string{"cache"},
	)

	StoredBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showfinder_cache_stored_bytes_total",
			Help: "Bytes of response bodies written to the cache.",
		},
		[]string{"cache"},
	)

	SkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showfinder_cache_skipped_total",
			Help: "Response bodies not cached because they exceeded the entry size limit.",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
		EvictionsTotal,
		StoredBytesTotal,
		SkippedTotal,
	)
}

// entriesCollector reports a group's entry count by calling lenFunc at
// scrape time, so TTL expiry in the backend is reflected.
type entriesCollector struct {
	desc    *prometheus.Desc
	lenFunc func() int
}

func (c *entriesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *entriesCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.lenFunc()))
}

var (
	entriesCollectorMu sync.Mutex
	entriesCollectors  = make(map[string]*entriesCollector)
	// entriesReg is swapped for an isolated registry in tests.
	entriesReg prometheus.Registerer = prometheus.DefaultRegisterer
)

// registerEntriesCollector registers the entries gauge for group, replacing
// any collector left by a previous cache of the same group.
func registerEntriesCollector(group string, lenFunc func() int) {
	desc := prometheus.NewDesc(
		"showfinder_cache_entries",
		"Responses currently held in the cache.",
		nil,
		prometheus.Labels{"cache": group},
	)
	c := &entriesCollector{desc: desc, lenFunc: lenFunc}

	entriesCollectorMu.Lock()
	defer entriesCollectorMu.Unlock()

	if old, ok := entriesCollectors[group]; ok {
		entriesReg.Unregister(old)
	}
	entriesCollectors[group] = c
	_ = entriesReg.Register(c)
}

func unregisterEntriesCollector(group string) {
	entriesCollectorMu.Lock()
	defer entriesCollectorMu.Unlock()

	if c, ok := entriesCollectors[group]; ok {
		entriesReg.Unregister(c)
		delete(entriesCollectors, group)
	}
}
