package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upstream (TVMaze) request metrics
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_requests_total",
			Help: "Total number of HTTP requests sent to TVMaze, by endpoint and status code (\"error\" on transport failure).",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_request_duration_seconds",
			Help:    "Latency of HTTP requests sent to TVMaze.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Widget flow metrics
var (
	FlowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showfinder_flows_total",
			Help: "Total number of search and episode flows, by outcome.",
		},
		[]string{"flow", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		FlowsTotal,
	)
}
