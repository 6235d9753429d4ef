package reporting

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoDSN(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, r)
	assert.True(t, r.Flush(time.Millisecond))
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(Options{DSN: "::not a dsn"})
	assert.Error(t, err)
}

func TestSentryReporter_Report(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)
	r, err := New(Options{
		DSN:         "https://public@example.com/1",
		Environment: "test",
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
			return nil
		},
	})
	require.NoError(t, err)

	r.Report(errors.New("upstream exploded"), map[string]string{"flow": "search"})
	r.Report(nil, nil)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, "search", events[0].Tags["flow"])
	assert.Equal(t, "test", events[0].Environment)
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "upstream exploded", events[0].Exception[0].Value)
}
