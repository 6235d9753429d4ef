package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

// LogMiddleware attaches a request-scoped logger carrying a request id and the
// path, and logs each completed request.
func LogMiddleware(base zerolog.Logger) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(requestIDHeader, id)

			log := base.With().Str("request_path", r.URL.Path).Str("id", id).Logger()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(sw, r.WithContext(log.WithContext(r.Context())))

			log.Debug().
				Str("method", r.Method).
				Int("status", sw.status).
				Bool("htmx", r.Header.Get("HX-Request") == "true").
				Msg("Request served")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
