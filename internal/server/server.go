// Package server wires the controller into an HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowFinder/internal/controller"
)

const shutdownTimeout = 5 * time.Second

// NewRouter builds the handler chain: request logging, routes, panic
// recovery, response compression and CORS.
func NewRouter(ctrl *controller.Controller, logger zerolog.Logger) http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(LogMiddleware(logger))
	ctrl.Register(rtr)

	var h http.Handler = rtr
	h = handlers.CompressHandler(h)
	h = recoveryWrap(h, logger)
	h = handlers.CORS(handlers.AllowedOrigins([]string{"*"}))(h)
	return h
}

// NewHTTPServer creates the widget HTTP server.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves srv until ctx is cancelled or SIGINT/SIGTERM is received, then
// shuts it down gracefully.
func Run(ctx context.Context, srv *http.Server, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", srv.Addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info().Msg("Server stopped gracefully")
	return nil
}

func recoveryWrap(h http.Handler, logger zerolog.Logger) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: logger}),
	)(h)
}

type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error().Msg(fmt.Sprint(v...))
}
