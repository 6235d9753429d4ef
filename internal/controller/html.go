package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	g "maragu.dev/gomponents"
)

// Index serves the full widget page.
func (c *Controller) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.writeHTML(w, r, http.StatusOK, c.renderer.Page("", nil, nil, ""))
	}
}

// Search runs the search flow. htmx requests get the show list fragment,
// other requests a full page.
func (c *Controller) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("term")
		res := c.searchShows(r.Context(), term)
		c.record(r.Context(), flowSearch, res.Error())

		if res.IsError() {
			c.writeFailure(w, r, flowSearch, term, res.Error())
			return
		}
		shows := res.MustGet()
		if isHTMX(r) {
			c.writeHTML(w, r, http.StatusOK, c.renderer.SearchResults(shows))
			return
		}
		c.writeHTML(w, r, http.StatusOK, c.renderer.Page(term, shows, nil, ""))
	}
}

// Episodes runs the episode flow for the show named in the route.
func (c *Controller) Episodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := c.listEpisodes(r.Context(), mux.Vars(r)["id"])
		c.record(r.Context(), flowEpisodes, res.Error())

		if res.IsError() {
			c.writeFailure(w, r, flowEpisodes, "", res.Error())
			return
		}
		episodes := res.MustGet()
		if isHTMX(r) {
			c.writeHTML(w, r, http.StatusOK, c.renderer.EpisodeResults(episodes))
			return
		}
		c.writeHTML(w, r, http.StatusOK, c.renderer.Page("", nil, episodes, ""))
	}
}

// writeFailure answers with the error banner only. htmx is told to swap the
// banner instead of the original target so the other containers stay as they were.
func (c *Controller) writeFailure(w http.ResponseWriter, r *http.Request, flow, term string, err error) {
	status := statusFor(err)
	msg := userMessage(flow, err)

	if !isHTMX(r) {
		c.writeHTML(w, r, status, c.renderer.Page(term, nil, nil, msg))
		return
	}
	w.Header().Set("HX-Retarget", "#"+c.renderer.Containers().ErrorBanner)
	w.Header().Set("HX-Reswap", "outerHTML")
	c.writeHTML(w, r, status, c.renderer.ErrorBanner(msg))
}

func (c *Controller) writeHTML(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := n.Render(w); err != nil {
		logFromCtx(r.Context()).Error().Err(err).Msg("Failed to write HTML response")
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
