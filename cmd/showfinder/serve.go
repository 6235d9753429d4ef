package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/controller"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/reporting"
	"github.com/Belphemur/ShowFinder/internal/server"
)

func newServeCmd(loaded func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the widget HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loaded()
			logger := config.GetLogger()

			logger.Info().
				Str("tvmaze_base_url", cfg.TVMazeBaseURL).
				Str("proxy_connection_string", cfg.ProxyConnectionString).
				Str("cache_provider", cfg.Cache.Provider).
				Int("server_port", cfg.Server.Port).
				Str("server_address", cfg.Server.Address).
				Msg("Application started with configuration")

			reporter, err := reporting.New(reporting.Options{
				DSN:         cfg.Sentry.DSN,
				Environment: cfg.Sentry.Environment,
			})
			if err != nil {
				logger.Warn().Err(err).Msg("Invalid Sentry configuration, failure reporting disabled")
				reporter = reporting.Noop{}
			}
			defer reporter.Flush(2 * time.Second)

			tvmaze := client.NewClient(cfg)
			defer func() {
				if err := tvmaze.Close(); err != nil {
					logger.Error().Err(err).Msg("Failed to close client")
				}
			}()

			// Start Prometheus metrics HTTP server
			if cfg.Metrics.Enabled {
				metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
				go func() {
					logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
					if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error().Err(err).Msg("Failed to serve metrics")
					}
				}()
				defer func() {
					if err := metricsServer.Shutdown(context.Background()); err != nil {
						logger.Error().Err(err).Msg("Failed to shutdown metrics server")
					}
				}()
			}

			ctrl := controller.New(tvmaze, render.NewRenderer(render.DefaultContainers(), render.DefaultRoutes()), reporter)
			srv := server.NewHTTPServer(cfg.Server.Address, cfg.Server.Port, server.NewRouter(ctrl, logger))
			return server.Run(cmd.Context(), srv, logger)
		},
	}
}
