// Package controller binds the search and episode flows to HTTP routes.
package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/reporting"
)

const (
	flowSearch   = "search"
	flowEpisodes = "episodes"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Controller sequences client calls and rendering for each flow.
type Controller struct {
	client   client.Client
	renderer *render.Renderer
	reporter reporting.Reporter
}

// New creates a controller. A nil reporter disables failure reporting.
func New(c client.Client, r *render.Renderer, reporter reporting.Reporter) *Controller {
	if reporter == nil {
		reporter = reporting.Noop{}
	}
	return &Controller{client: c, renderer: r, reporter: reporter}
}

// Register mounts every route on the router.
func (c *Controller) Register(rtr *mux.Router) {
	rtr.HandleFunc("/", c.Index()).Methods(http.MethodGet)
	rtr.HandleFunc("/search", c.Search()).Methods(http.MethodGet)
	rtr.HandleFunc("/shows/{id}/episodes", c.Episodes()).Methods(http.MethodGet)
	rtr.HandleFunc("/healthz", c.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	api.HandleFunc("/shows", c.APISearch()).Methods(http.MethodGet)
	api.HandleFunc("/shows/{id}/episodes", c.APIEpisodes()).Methods(http.MethodGet)
}

func (c *Controller) searchShows(ctx context.Context, term string) mo.Result[[]models.Show] {
	return mo.TupleToResult(c.client.SearchShows(ctx, strings.TrimSpace(term)))
}

func (c *Controller) listEpisodes(ctx context.Context, rawID string) mo.Result[[]models.Episode] {
	id := parseShowID(rawID)
	if id.IsError() {
		return mo.Err[[]models.Episode](id.Error())
	}
	return mo.TupleToResult(c.client.ListEpisodes(ctx, id.MustGet()))
}

func parseShowID(raw string) mo.Result[int] {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return mo.Err[int](&apperrors.ErrInvalidShowID{Raw: raw})
	}
	return mo.Ok(id)
}

// record counts the flow outcome and, on failure, logs and reports the error.
func (c *Controller) record(ctx context.Context, flow string, err error) {
	if err == nil {
		metrics.FlowsTotal.WithLabelValues(flow, outcomeSuccess).Inc()
		return
	}
	metrics.FlowsTotal.WithLabelValues(flow, outcomeFailure).Inc()

	logFromCtx(ctx).Error().Err(err).Str("flow", flow).Msg("Flow failed")

	// Client disconnects and bad input are not worth an alert
	if errors.Is(err, context.Canceled) || errors.Is(err, &apperrors.ErrInvalidShowID{}) {
		return
	}
	c.reporter.Report(err, map[string]string{"flow": flow})
}

// statusFor maps a flow error to the HTTP status returned to the browser.
func statusFor(err error) int {
	switch {
	case errors.Is(err, &apperrors.ErrInvalidShowID{}):
		return http.StatusBadRequest
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// userMessage is the banner text for a failed flow.
func userMessage(flow string, err error) string {
	switch {
	case errors.Is(err, &apperrors.ErrInvalidShowID{}):
		return "Invalid show id."
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return "Show not found."
	case flow == flowSearch:
		return "Could not search shows. Please try again."
	default:
		return "Could not load episodes. Please try again."
	}
}

func logFromCtx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	logger := config.GetLogger()
	return &logger
}
