package testutil

import (
	"fmt"
	"strconv"
	"strings"
)

// BoolPtr is a helper for creating *bool values in tests
func BoolPtr(v bool) *bool {
	return &v
}

// ShowOptions contains options for generating one /search/shows result
type ShowOptions struct {
	ShowID      int
	ShowName    string
	Summary     string // Raw HTML, emitted as JSON null when empty
	ImageMedium string
	ImageNull   bool  // Emit "image": null instead of an image object
	IncludeShow *bool // Defaults to true; false drops the nested show object
	Score       float64
}

// EpisodeOptions contains options for generating one /shows/{id}/episodes entry
type EpisodeOptions struct {
	EpisodeID int
	Name      string
	Season    int
	Number    int
}

// GenerateSearchJSON generates a /search/shows response body shaped like the
// real TVMaze API: an array of {score, show} wrappers
func GenerateSearchJSON(rows []ShowOptions) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(",")
		}
		score := row.Score
		if score == 0 {
			score = 1 - float64(i)*0.01
		}
		sb.WriteString(`{"score":`)
		sb.WriteString(strconv.FormatFloat(score, 'f', -1, 64))

		if row.IncludeShow != nil && !*row.IncludeShow {
			sb.WriteString("}")
			continue
		}

		fmt.Fprintf(&sb, `,"show":{"id":%d,"name":%s,"type":"Scripted","language":"English"`, row.ShowID, strconv.Quote(row.ShowName))
		if row.Summary == "" {
			sb.WriteString(`,"summary":null`)
		} else {
			fmt.Fprintf(&sb, `,"summary":%s`, strconv.Quote(row.Summary))
		}
		switch {
		case row.ImageNull:
			sb.WriteString(`,"image":null`)
		case row.ImageMedium != "":
			fmt.Fprintf(&sb, `,"image":{"medium":%s,"original":%s}`,
				strconv.Quote(row.ImageMedium),
				strconv.Quote(strings.Replace(row.ImageMedium, "medium_portrait", "original_untouched", 1)))
		}
		sb.WriteString("}}")
	}
	sb.WriteString("]")
	return sb.String()
}

// GenerateEpisodesJSON generates a /shows/{id}/episodes response body
func GenerateEpisodesJSON(rows []EpisodeOptions) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":%s,"season":%d,"number":%d,"type":"regular","airdate":"2020-01-01","runtime":60}`,
			row.EpisodeID, strconv.Quote(row.Name), row.Season, row.Number)
	}
	sb.WriteString("]")
	return sb.String()
}
