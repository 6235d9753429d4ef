package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// SearchShows queries /search/shows and normalizes every result, substituting
// the placeholder image for shows without a medium poster. A blank term
// returns no shows without contacting TVMaze.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()

	term = strings.TrimSpace(term)
	if term == "" {
		logger.Debug().Msg("Blank search term, skipping TVMaze search")
		return []models.Show{}, nil
	}

	endpoint := fmt.Sprintf("%s/search/shows?%s", c.baseURL, url.Values{"q": {term}}.Encode())
	logger.Info().Str("term", term).Msg("Searching TVMaze shows")

	body, err := c.fetch(ctx, "search", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search shows %q: %w", term, err)
	}

	var results []models.TVMazeSearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &apperrors.ErrDecode{Resource: "search results", Err: err}
	}

	if _, idx, found := lo.FindIndexOf(results, func(r models.TVMazeSearchResult) bool { return r.Show == nil }); found {
		return nil, &apperrors.ErrDecode{
			Resource: "search results",
			Err:      fmt.Errorf("result %d has no show object", idx),
		}
	}

	shows := lo.Map(results, func(r models.TVMazeSearchResult, _ int) models.Show {
		return r.Show.ToShow(c.placeholder)
	})

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("TVMaze search completed")
	return shows, nil
}
