// Package render builds the HTML fragments and pages of the show search widget.
package render

import (
	"fmt"
	"io"

	"github.com/Belphemur/ShowFinder/internal/models"
	. "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets error responses swap so the retargeted banner is shown.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"[45]..","swap":true,"error":true}]}`

// Containers names the DOM elements the widget renders into.
type Containers struct {
	SearchForm   string
	SearchInput  string
	ShowsList    string
	EpisodesArea string
	EpisodesList string
	ErrorBanner  string
}

// DefaultContainers returns the element IDs used by the page.
func DefaultContainers() Containers {
	return Containers{
		SearchForm:   "searchForm",
		SearchInput:  "searchForm-term",
		ShowsList:    "showsList",
		EpisodesArea: "episodesArea",
		EpisodesList: "episodesList",
		ErrorBanner:  "errorBanner",
	}
}

// Routes builds the URLs the rendered controls call back into.
type Routes struct {
	Search   string
	Episodes func(showID int) string
}

// DefaultRoutes returns the routes registered by the controller.
func DefaultRoutes() Routes {
	return Routes{
		Search: "/search",
		Episodes: func(showID int) string {
			return fmt.Sprintf("/shows/%d/episodes", showID)
		},
	}
}

// Renderer turns shows and episodes into HTML nodes bound to a set of containers.
type Renderer struct {
	ids    Containers
	routes Routes
}

// NewRenderer creates a renderer. Empty container IDs and routes fall back to the defaults.
func NewRenderer(ids Containers, routes Routes) *Renderer {
	def := DefaultContainers()
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&ids.SearchForm, def.SearchForm)
	fill(&ids.SearchInput, def.SearchInput)
	fill(&ids.ShowsList, def.ShowsList)
	fill(&ids.EpisodesArea, def.EpisodesArea)
	fill(&ids.EpisodesList, def.EpisodesList)
	fill(&ids.ErrorBanner, def.ErrorBanner)

	defRoutes := DefaultRoutes()
	if routes.Search == "" {
		routes.Search = defRoutes.Search
	}
	if routes.Episodes == nil {
		routes.Episodes = defRoutes.Episodes
	}
	return &Renderer{ids: ids, routes: routes}
}

// Containers returns the element IDs this renderer targets.
func (r *Renderer) Containers() Containers {
	return r.ids
}

// ShowList renders the whole show container, one block per show.
func (r *Renderer) ShowList(shows []models.Show) Node {
	return Div(
		ID(r.ids.ShowsList),
		Class("row"),
		Map(shows, r.show),
	)
}

func (r *Renderer) show(s models.Show) Node {
	return Div(
		Data("show-id", fmt.Sprint(s.ID)),
		Class("Show col-md-12 col-lg-6 mb-4"),
		Div(
			Class("media"),
			Img(Src(s.Image), Alt(s.Name+" poster"), Class("w-25 me-3")),
			Div(
				Class("media-body"),
				H5(Class("text-primary"), Text(s.Name)),
				Div(Small(Raw(s.Summary))),
				Button(
					Class("btn btn-outline-light btn-sm Show-getEpisodes"),
					Type("button"),
					hx.Get(r.routes.Episodes(s.ID)),
					hx.Target("#"+r.ids.EpisodesArea),
					hx.Swap("outerHTML"),
					Text("Episodes"),
				),
			),
		),
	)
}

// EpisodeLine formats a single episode entry.
func EpisodeLine(e models.Episode) string {
	return fmt.Sprintf("%s (Season: %d, Episode: %d)", e.Name, e.Season, e.Number)
}

// EpisodesArea renders the episode section. The list always holds exactly the
// given episodes; a hidden area renders an empty list.
func (r *Renderer) EpisodesArea(episodes []models.Episode, visible bool) Node {
	return r.episodesArea(episodes, visible)
}

func (r *Renderer) episodesArea(episodes []models.Episode, visible bool, extra ...Node) Node {
	return Section(
		ID(r.ids.EpisodesArea),
		If(!visible, Style("display: none")),
		Group(extra),
		H2(Text("Episodes")),
		Ul(
			ID(r.ids.EpisodesList),
			If(visible, Map(episodes, func(e models.Episode) Node {
				return Li(Text(EpisodeLine(e)))
			})),
		),
	)
}

// ErrorBanner renders the error banner. An empty message renders an empty banner.
func (r *Renderer) ErrorBanner(message string) Node {
	return r.errorBanner(message)
}

func (r *Renderer) errorBanner(message string, extra ...Node) Node {
	return Div(
		ID(r.ids.ErrorBanner),
		Role("alert"),
		If(message != "", Class("alert alert-danger")),
		Group(extra),
		If(message != "", Text(message)),
	)
}

// SearchResults is the fragment answering a search: the show list, plus the
// episode area hidden and the banner cleared out of band.
func (r *Renderer) SearchResults(shows []models.Show) Node {
	return Group{
		r.ShowList(shows),
		r.episodesArea(nil, false, hx.SwapOOB("true")),
		r.errorBanner("", hx.SwapOOB("true")),
	}
}

// EpisodeResults is the fragment answering an episode request: the visible
// episode area and a cleared banner out of band.
func (r *Renderer) EpisodeResults(episodes []models.Episode) Node {
	return Group{
		r.EpisodesArea(episodes, true),
		r.errorBanner("", hx.SwapOOB("true")),
	}
}

// Page renders the full document with the search form and every container.
func (r *Renderer) Page(term string, shows []models.Show, episodes []models.Episode, banner string) Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("htmx-config"), Content(htmxConfig)),
				TitleEl(Text("TV Show Search")),
				Script(Src(htmxScriptURL)),
			),
			Body(
				Main(
					Class("container"),
					H1(Text("TV Show Search")),
					r.errorBanner(banner),
					Form(
						ID(r.ids.SearchForm),
						Action(r.routes.Search),
						Method("get"),
						hx.Get(r.routes.Search),
						hx.Target("#"+r.ids.ShowsList),
						hx.Swap("outerHTML"),
						Input(
							ID(r.ids.SearchInput),
							Name("term"),
							Type("text"),
							Placeholder("Show title"),
							Value(term),
						),
						Button(Type("submit"), Text("Go!")),
					),
					r.ShowList(shows),
					r.EpisodesArea(episodes, episodes != nil),
				),
			),
		),
	)
}

// Write renders n to w.
func Write(w io.Writer, n Node) error {
	return n.Render(w)
}
