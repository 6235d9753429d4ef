package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
)

// fetch performs a GET against TVMaze and returns the body of a 200 response.
// Bodies are served from and stored in the response cache keyed by URL.
// A 404 is reported as notFound when it is non-nil.
func (c *client) fetch(ctx context.Context, endpoint, url string, notFound error) ([]byte, error) {
	logger := config.GetLogger()

	if body, ok := c.cache.Get(url); ok {
		logger.Debug().Str("url", url).Int("size", len(body)).Msg("Served TVMaze response from cache")
		return body, nil
	}

	req, err := http.NewRequestWithContext(withEndpoint(ctx, endpoint), http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return nil, notFound
	default:
		return nil, &apperrors.ErrUpstreamStatus{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	logger.Debug().
		Str("url", url).
		Int("size", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched TVMaze response")

	c.cache.Set(url, body)
	return body, nil
}
