package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/testutil"
)

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/shows", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, testutil.GenerateSearchJSON([]testutil.ShowOptions{
			{ShowID: 1, ShowName: "Batman", ImageNull: true},
			{ShowID: 2, ShowName: "Batwoman", ImageMedium: "https://img/2.jpg"},
		}))
	})
	mux.HandleFunc("/shows/1/episodes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, testutil.GenerateEpisodesJSON([]testutil.EpisodeOptions{{EpisodeID: 10, Name: "Pilot", Season: 1, Number: 1}}))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("tvmaze_base_url: %s\nplaceholder_image_url: https://example.com/placeholder.png\ncache:\n  provider: none\nretry:\n  max_retries: 0\n", baseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	upstream := newUpstream(t)

	out, err := runCLI(t, upstream.URL, "search", "bat")
	require.NoError(t, err)
	assert.Equal(t, "1\tBatman\n2\tBatwoman\n", out)
}

func TestSearchCommand_JSON(t *testing.T) {
	upstream := newUpstream(t)

	out, err := runCLI(t, upstream.URL, "search", "--json", "bat")
	require.NoError(t, err)

	var shows []models.Show
	require.NoError(t, json.Unmarshal([]byte(out), &shows))
	require.Len(t, shows, 2)
	assert.Equal(t, "https://example.com/placeholder.png", shows[0].Image)
	assert.Equal(t, "https://img/2.jpg", shows[1].Image)
}

func TestEpisodesCommand(t *testing.T) {
	upstream := newUpstream(t)

	out, err := runCLI(t, upstream.URL, "episodes", "1")
	require.NoError(t, err)
	assert.Equal(t, "Pilot (Season: 1, Episode: 1)\n", out)
}

func TestEpisodesCommand_Errors(t *testing.T) {
	upstream := newUpstream(t)

	_, err := runCLI(t, upstream.URL, "episodes", "abc")
	assert.ErrorContains(t, err, "invalid show ID")

	_, err = runCLI(t, upstream.URL, "episodes", "404")
	assert.ErrorContains(t, err, "not found")
}
