package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// ListEpisodes queries /shows/{id}/episodes. A 404 becomes an ErrNotFound for the show.
func (c *client) ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Listing TVMaze episodes")

	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)
	body, err := c.fetch(ctx, "episodes", endpoint, apperrors.NewShowNotFoundError(showID))
	if err != nil {
		return nil, fmt.Errorf("list episodes of show %d: %w", showID, err)
	}

	var raw []models.TVMazeEpisode
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &apperrors.ErrDecode{Resource: "episodes", Err: err}
	}

	episodes := lo.Map(raw, func(e models.TVMazeEpisode, _ int) models.Episode {
		return e.ToEpisode()
	})

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Msg("TVMaze episodes listed")
	return episodes, nil
}
