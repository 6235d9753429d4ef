package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// GenericResponse wraps every JSON API answer.
type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response,omitempty"`
}

// APISearch returns the search flow result as JSON.
func (c *Controller) APISearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := c.searchShows(r.Context(), r.URL.Query().Get("q"))
		c.record(r.Context(), flowSearch, res.Error())

		if res.IsError() {
			c.writeJSON(w, r, statusFor(res.Error()), GenericResponse{Error: res.Error().Error()})
			return
		}
		c.writeJSON(w, r, http.StatusOK, GenericResponse{Response: res.MustGet()})
	}
}

// APIEpisodes returns the episode flow result as JSON.
func (c *Controller) APIEpisodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := c.listEpisodes(r.Context(), mux.Vars(r)["id"])
		c.record(r.Context(), flowEpisodes, res.Error())

		if res.IsError() {
			c.writeJSON(w, r, statusFor(res.Error()), GenericResponse{Error: res.Error().Error()})
			return
		}
		c.writeJSON(w, r, http.StatusOK, GenericResponse{Response: res.MustGet()})
	}
}

// Healthz is an endpoint that can be used for probes
func (c *Controller) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.writeJSON(w, r, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

func (c *Controller) writeJSON(w http.ResponseWriter, r *http.Request, status int, body GenericResponse) {
	b, err := json.Marshal(body)
	if err != nil {
		logFromCtx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
