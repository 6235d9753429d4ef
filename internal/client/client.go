package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowFinder/internal/cache"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// Client defines the interface for querying the TVMaze catalog
type Client interface {
	// SearchShows returns the shows matching term in TVMaze's order.
	// No match yields an empty slice and a nil error.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// ListEpisodes returns every episode of the show, ordered by season and number.
	ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient  *http.Client
	baseURL     string
	placeholder string
	userAgent   string
	cache       cache.Cache
}

// cacheLogger forwards cache backend errors to zerolog
type cacheLogger struct {
	logger zerolog.Logger
}

func (l cacheLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

// NewClient creates a new client instance from the configuration. Invalid
// optional settings (proxy, durations, cache backend) are logged and replaced
// by their defaults rather than failing.
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := config.ParseDuration("client_timeout", cfg.ClientTimeout, 30*time.Second)

	// Clone DefaultTransport to preserve its pooling, HTTP/2 and dial settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	// retry -> decompression -> metrics -> network
	transport := newRetryTransport(
		newCompressionTransport(newMetricsTransport(baseTransport)),
		cfg.Retry.MaxRetries,
		config.ParseDuration("retry.delay", cfg.Retry.Delay, 500*time.Millisecond),
		config.ParseDuration("retry.max_delay", cfg.Retry.MaxDelay, 5*time.Second),
	)

	baseURL := strings.TrimRight(cfg.TVMazeBaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultTVMazeBaseURL
	}
	placeholder := cfg.PlaceholderImageURL
	if placeholder == "" {
		placeholder = config.DefaultPlaceholderImageURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:     baseURL,
		placeholder: placeholder,
		userAgent:   userAgent,
		cache:       newResponseCache(cfg, logger),
	}
}

func newResponseCache(cfg *config.Config, logger zerolog.Logger) cache.Cache {
	providerCfg := cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           config.ParseDuration("cache.ttl", cfg.Cache.TTL, time.Hour),
		MaxEntryBytes: cfg.Cache.MaxEntryBytes,
		Logger:        cacheLogger{logger: logger},
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         "tvmaze",
	}

	c, err := cache.New(cfg.Cache.Provider, providerCfg)
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.Cache.Provider).Msg("Failed to create response cache, continuing without cache")
		c, _ = cache.New("none", cache.ProviderConfig{})
		return c
	}

	logger.Debug().Str("provider", cfg.Cache.Provider).Msg("Response cache ready")
	return c
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	return c.cache.Close()
}
