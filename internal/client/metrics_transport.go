package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Belphemur/ShowFinder/internal/metrics"
)

type endpointKey struct{}

// withEndpoint labels the upstream requests made with ctx for metrics.
func withEndpoint(ctx context.Context, endpoint string) context.Context {
	return context.WithValue(ctx, endpointKey{}, endpoint)
}

func endpointFrom(ctx context.Context) string {
	if e, ok := ctx.Value(endpointKey{}).(string); ok {
		return e
	}
	return "unknown"
}

// metricsTransport records every attempt, including retried ones.
type metricsTransport struct {
	transport http.RoundTripper
}

func newMetricsTransport(base http.RoundTripper) http.RoundTripper {
	return &metricsTransport{transport: base}
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := endpointFrom(req.Context())
	start := time.Now()

	resp, err := t.transport.RoundTrip(req)

	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()

	return resp, err
}
