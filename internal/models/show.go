package models

// Show is a normalized TVMaze catalog entry
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // HTML as returned by TVMaze
	Image   string `json:"image"`   // Medium poster URL, or the placeholder when TVMaze has none
}

// TVMazeImage holds the poster URLs of a show as returned by TVMaze
type TVMazeImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// TVMazeShow is the raw show object nested in a search result
type TVMazeShow struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Summary string       `json:"summary"`
	Image   *TVMazeImage `json:"image"` // null when the show has no poster
}

// TVMazeSearchResult is one element of the /search/shows response array
type TVMazeSearchResult struct {
	Score float64     `json:"score"`
	Show  *TVMazeShow `json:"show"`
}

// ToShow normalizes the raw show, substituting placeholder when no medium image is present
func (s TVMazeShow) ToShow(placeholder string) Show {
	image := placeholder
	if s.Image != nil && s.Image.Medium != "" {
		image = s.Image.Medium
	}
	return Show{
		ID:      s.ID,
		Name:    s.Name,
		Summary: s.Summary,
		Image:   image,
	}
}
