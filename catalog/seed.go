package catalog

import "time"

// seedVideos is the sample dataset written when the video collection is
// first read. Timestamps are relative so the samples look recently added.
func seedVideos() []Video {
	now := time.Now()
	return []Video{
		{
			ID:          "1",
			Title:       "Big Buck Bunny",
			Description: "Un court métrage d'animation 3D populaire",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Thumbnail:   "https://storage.googleapis.com/gtv-videos-bucket/sample/images/BigBuckBunny.jpg",
			Category:    CategoryFilms,
			AddedAt:     now.Add(-48 * time.Hour).UnixMilli(),
		},
		{
			ID:          "2",
			Title:       "Elephant Dream",
			Description: "Premier film libre de Blender Foundation",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Thumbnail:   "https://storage.googleapis.com/gtv-videos-bucket/sample/images/ElephantsDream.jpg",
			Category:    CategoryFilms,
			AddedAt:     now.Add(-24 * time.Hour).UnixMilli(),
		},
	}
}

// seedSeries is empty: there is no sample series. Persisting the empty
// collection still matters, so a later read is not mistaken for first
// access.
func seedSeries() []Series {
	return []Series{}
}
