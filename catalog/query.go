package catalog

import (
	"sort"
	"strings"
)

// FilterByCategory returns the videos whose category matches exactly, in
// their original order. CategoryAll is the pseudo-value meaning "no
// filtering" and returns the input unchanged.
func FilterByCategory(videos []Video, category Category) []Video {
	if category == CategoryAll {
		return videos
	}

	var out []Video
	for _, v := range videos {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// Search returns the videos whose title, description or category contains
// term, case-insensitively, in their original order. A blank or
// whitespace-only term returns the input unchanged. Composable after
// FilterByCategory.
func Search(videos []Video, term string) []Video {
	term = strings.TrimSpace(term)
	if term == "" {
		return videos
	}
	term = strings.ToLower(term)

	var out []Video
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), term) ||
			strings.Contains(strings.ToLower(v.Description), term) ||
			strings.Contains(strings.ToLower(string(v.Category)), term) {
			out = append(out, v)
		}
	}
	return out
}

// SortEpisodes orders videos ascending by episode number, in place. A video
// without an episode number sorts first. The sort is stable so insertion
// order breaks ties.
func SortEpisodes(videos []Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].EpisodeNumber < videos[j].EpisodeNumber
	})
}
