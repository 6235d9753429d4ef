package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/testutil"
)

const testPlaceholder = "https://example.com/placeholder.png"

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		TVMazeBaseURL:       baseURL,
		PlaceholderImageURL: testPlaceholder,
		ClientTimeout:       "10s",
	}
}

func jsonHandler(t *testing.T, path, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	})
}

func TestClient_SearchShows(t *testing.T) {
	searchJSON := `[
		{"score": 0.91, "show": {"id": 975, "name": "Batman", "summary": "<p>Wealthy entrepreneur <b>Bruce Wayne</b></p>", "image": {"medium": "https://static.tvmaze.com/m/975.jpg", "original": "https://static.tvmaze.com/o/975.jpg"}}},
		{"score": 0.74, "show": {"id": 1, "name": "Batman Beyond", "summary": null, "image": null}},
		{"score": 0.52, "show": {"id": 42, "name": "The Batman", "summary": "<p>Gotham</p>"}}
	]`

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		jsonHandler(t, "/search/shows", searchJSON).ServeHTTP(w, r)
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "batman & robin")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}

	if gotQuery != "batman & robin" {
		t.Errorf("Expected query %q, got %q", "batman & robin", gotQuery)
	}

	expected := []models.Show{
		{ID: 975, Name: "Batman", Summary: "<p>Wealthy entrepreneur <b>Bruce Wayne</b></p>", Image: "https://static.tvmaze.com/m/975.jpg"},
		{ID: 1, Name: "Batman Beyond", Summary: "", Image: testPlaceholder},
		{ID: 42, Name: "The Batman", Summary: "<p>Gotham</p>", Image: testPlaceholder},
	}

	if len(shows) != len(expected) {
		t.Fatalf("Expected %d shows, got %d", len(expected), len(shows))
	}
	for i, want := range expected {
		if shows[i] != want {
			t.Errorf("Show %d: expected %+v, got %+v", i, want, shows[i])
		}
	}
}

func TestClient_SearchShows_PlaceholderScenario(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, "/search/shows",
		`[{"show": {"id": 1, "name": "Batman", "summary": "<p>Hero</p>", "image": null}}]`))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "batman")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}

	want := []models.Show{{ID: 1, Name: "Batman", Summary: "<p>Hero</p>", Image: testPlaceholder}}
	if len(shows) != 1 || shows[0] != want[0] {
		t.Fatalf("Expected %+v, got %+v", want, shows)
	}
}

func TestClient_SearchShows_DefaultPlaceholder(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, "/search/shows",
		`[{"show": {"id": 1, "name": "Batman", "image": null}}]`))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.PlaceholderImageURL = ""
	c := NewClient(cfg)
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "batman")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if shows[0].Image != config.DefaultPlaceholderImageURL {
		t.Errorf("Expected default placeholder, got %q", shows[0].Image)
	}
}

func TestClient_SearchShows_Empty(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, "/search/shows", `[]`))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "zzzzzz")
	if err != nil {
		t.Fatalf("Expected no error for empty results, got %v", err)
	}
	if shows == nil {
		t.Fatal("Expected empty non-nil slice")
	}
	if len(shows) != 0 {
		t.Errorf("Expected 0 shows, got %d", len(shows))
	}
}

func TestClient_SearchShows_BlankTermSkipsUpstream(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("Expected 0 shows, got %d", len(shows))
	}
	if calls.Load() != 0 {
		t.Errorf("Expected no upstream call, got %d", calls.Load())
	}
}

func TestClient_ListEpisodes(t *testing.T) {
	episodesJSON := `[
		{"id": 10, "url": "https://www.tvmaze.com/episodes/10", "name": "Pilot", "season": 1, "number": 1, "airdate": "1966-01-12"},
		{"id": 11, "name": "Batman's Satisfaction", "season": 1, "number": 2},
		{"id": 90, "name": "Return of the Mad Hatter", "season": 2, "number": 1}
	]`
	server := httptest.NewServer(jsonHandler(t, "/shows/975/episodes", episodesJSON))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	episodes, err := c.ListEpisodes(context.Background(), 975)
	if err != nil {
		t.Fatalf("ListEpisodes failed: %v", err)
	}

	expected := []models.Episode{
		{ID: 10, Name: "Pilot", Season: 1, Number: 1},
		{ID: 11, Name: "Batman's Satisfaction", Season: 1, Number: 2},
		{ID: 90, Name: "Return of the Mad Hatter", Season: 2, Number: 1},
	}
	if len(episodes) != len(expected) {
		t.Fatalf("Expected %d episodes, got %d", len(expected), len(episodes))
	}
	for i, want := range expected {
		if episodes[i] != want {
			t.Errorf("Episode %d: expected %+v, got %+v", i, want, episodes[i])
		}
	}
}

func TestClient_ListEpisodes_Empty(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, "/shows/5/episodes", `[]`))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	episodes, err := c.ListEpisodes(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListEpisodes failed: %v", err)
	}
	if episodes == nil || len(episodes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", episodes)
	}
}

func TestClient_ResponseCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		jsonHandler(t, "/shows/1/episodes", `[{"id": 10, "name": "Pilot", "season": 1, "number": 1}]`).ServeHTTP(w, r)
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Cache.Provider = "memory"
	cfg.Cache.Size = 10
	cfg.Cache.TTL = "1m"
	c := NewClient(cfg)
	defer c.Close()

	for i := 0; i < 3; i++ {
		episodes, err := c.ListEpisodes(context.Background(), 1)
		if err != nil {
			t.Fatalf("ListEpisodes call %d failed: %v", i, err)
		}
		if len(episodes) != 1 || episodes[0].Name != "Pilot" {
			t.Fatalf("Call %d: unexpected episodes %+v", i, episodes)
		}
	}

	if calls.Load() != 1 {
		t.Errorf("Expected 1 upstream call with caching, got %d", calls.Load())
	}
}

func TestClient_ResponseCache_SkipsErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Cache.Provider = "memory"
	c := NewClient(cfg)
	defer c.Close()

	for i := 0; i < 2; i++ {
		if _, err := c.SearchShows(context.Background(), "batman"); err == nil {
			t.Fatalf("Call %d: expected error", i)
		}
	}
	if calls.Load() != 2 {
		t.Errorf("Expected failed responses not to be cached, got %d upstream calls", calls.Load())
	}
}

func TestClient_InvalidCacheProviderFallsBack(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, "/search/shows", `[]`))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Cache.Provider = "redis"
	cfg.Cache.Redis.Address = "localhost:59999" // unlikely to have Redis here
	c := NewClient(cfg)
	defer c.Close()

	if _, err := c.SearchShows(context.Background(), "batman"); err != nil {
		t.Fatalf("Expected client to work without cache, got %v", err)
	}
}

func TestClient_SearchShows_PreservesOrderAndCount(t *testing.T) {
	rows := make([]testutil.ShowOptions, 0, 25)
	for i := 0; i < 25; i++ {
		row := testutil.ShowOptions{ShowID: 1000 - i, ShowName: fmt.Sprintf("Show %d", i)}
		if i%3 == 0 {
			row.ImageMedium = fmt.Sprintf("https://static.tvmaze.com/medium_portrait/%d.jpg", i)
		} else if i%3 == 1 {
			row.ImageNull = true
		}
		rows = append(rows, row)
	}

	server := httptest.NewServer(jsonHandler(t, "/search/shows", testutil.GenerateSearchJSON(rows)))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL))
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "show")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(shows) != len(rows) {
		t.Fatalf("Expected %d shows, got %d", len(rows), len(shows))
	}
	for i, s := range shows {
		if s.ID != rows[i].ShowID {
			t.Errorf("Position %d: expected ID %d, got %d", i, rows[i].ShowID, s.ID)
		}
		if s.Image == "" {
			t.Errorf("Position %d: image must never be empty", i)
		}
		if rows[i].ImageMedium == "" && s.Image != testPlaceholder {
			t.Errorf("Position %d: expected placeholder, got %q", i, s.Image)
		}
	}
}
