package models

// Episode is a single installment of a show
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// TVMazeEpisode is one element of the /shows/{id}/episodes response array.
// Only the fields ShowFinder uses are decoded.
type TVMazeEpisode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// ToEpisode copies the raw fields into an Episode
func (e TVMazeEpisode) ToEpisode() Episode {
	return Episode(e)
}
