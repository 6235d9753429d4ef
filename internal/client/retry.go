package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/Belphemur/ShowFinder/internal/config"
)

// isRetryable reports whether an attempt failed in a way worth repeating:
// transport errors (other than cancellation), 429 and 5xx.
func isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
}

func newRetryPolicy(maxRetries int, delay, maxDelay time.Duration) retrypolicy.RetryPolicy[*http.Response] {
	if maxDelay < delay {
		maxDelay = delay
	}
	return retrypolicy.NewBuilder[*http.Response]().
		HandleIf(isRetryable).
		WithBackoff(delay, maxDelay).
		WithMaxRetries(maxRetries).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[*http.Response]) {
			logger := config.GetLogger()
			event := logger.Warn().Int("attempt", e.Attempts())
			if err := e.LastError(); err != nil {
				event = event.Err(err)
			} else if resp := e.LastResult(); resp != nil {
				event = event.Int("status", resp.StatusCode)
				// the discarded response is never handed to the caller
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}
			event.Msg("Retrying TVMaze request")
		}).
		Build()
}

// newRetryTransport wraps base with the retry policy; maxRetries <= 0 disables it.
func newRetryTransport(base http.RoundTripper, maxRetries int, delay, maxDelay time.Duration) http.RoundTripper {
	if maxRetries <= 0 {
		return base
	}
	return failsafehttp.NewRoundTripper(base, newRetryPolicy(maxRetries, delay, maxDelay))
}
