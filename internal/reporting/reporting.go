// Package reporting forwards flow failures to Sentry.
package reporting

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter records failures that reached the user as an error banner.
type Reporter interface {
	Report(err error, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// Options configures the Sentry reporter.
type Options struct {
	DSN         string
	Environment string
	Release     string
	// BeforeSend is passed through to the Sentry client.
	BeforeSend func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event
}

// New returns a Sentry-backed reporter, or a no-op one when no DSN is configured.
func New(opts Options) (Reporter, error) {
	if opts.DSN == "" {
		return Noop{}, nil
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Environment: opts.Environment,
		Release:     opts.Release,
		BeforeSend:  opts.BeforeSend,
	})
	if err != nil {
		return nil, err
	}
	return &sentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

type sentryReporter struct {
	hub *sentry.Hub
}

func (r *sentryReporter) Report(err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

func (r *sentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// Noop discards every report.
type Noop struct{}

func (Noop) Report(error, map[string]string) {}

func (Noop) Flush(time.Duration) bool { return true }
