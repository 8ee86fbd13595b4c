package catalog

// Category classifies a stored video. CategoryAll is a filter-only
// pseudo-value and never appears on a persisted record.
type Category string

const (
	CategoryAll    Category = "Tous"
	CategoryFilms  Category = "Films"
	CategorySeries Category = "Séries"
	CategoryMusic  Category = "Musique"
	CategoryOther  Category = "Autres"
)

// Categories returns the category values in display order, CategoryAll first.
func Categories() []Category {
	return []Category{CategoryAll, CategoryFilms, CategorySeries, CategoryMusic, CategoryOther}
}

// validCategory reports whether c may be stored on a video.
func validCategory(c Category) bool {
	switch c {
	case CategoryFilms, CategorySeries, CategoryMusic, CategoryOther:
		return true
	}
	return false
}

// Video is a registered external video link.
//
// SeriesID and EpisodeNumber are set together and cleared together: a
// standalone video carries neither, an episode carries both. AddedAt is
// milliseconds since epoch and doubles as the default recency ordering key.
type Video struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Category      Category `json:"category"`
	AddedAt       int64    `json:"addedAt"`
	SeriesID      string   `json:"seriesId,omitempty"`
	EpisodeNumber int      `json:"episodeNumber,omitempty"`
}

// Series groups videos into ordered episodes. Title is the natural
// deduplication key on import (exact, case-sensitive).
type Series struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// NewVideo carries the caller-supplied fields for a video. ID and AddedAt
// are deliberately absent: the store always assigns them.
type NewVideo struct {
	Title         string
	Description   string
	URL           string
	Thumbnail     string
	Category      Category
	SeriesID      string
	EpisodeNumber int
}

// NewSeries carries the caller-supplied fields for a series.
type NewSeries struct {
	Title       string
	Description string
	Thumbnail   string
}
