package catalog

import (
	"encoding/json"
	"fmt"
	"time"
)

// bundleVideo is the video shape accepted from an import file. It has no id
// or addedAt field on purpose: whatever the source embedded is never
// decoded, so foreign ids cannot enter the collection.
type bundleVideo struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Category      Category `json:"category"`
	SeriesID      string   `json:"seriesId,omitempty"`
	EpisodeNumber int      `json:"episodeNumber,omitempty"`
}

type bundleSeries struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// bundle is the import file format: either key, both, or neither.
type bundle struct {
	Video  *bundleVideo  `json:"video"`
	Series *bundleSeries `json:"series"`
}

// ImportResult reports what an import bundle produced. A skipped entry is a
// normal outcome (duplicate detected), not a failure.
type ImportResult struct {
	Video         *Video  // created video, nil if absent or skipped
	Series        *Series // created series, nil if absent or skipped
	VideoSkipped  bool    // a video with the same URL already exists
	SeriesSkipped bool    // a series with the same title already exists
}

// Imported reports whether anything new was created.
func (r *ImportResult) Imported() bool {
	return r.Video != nil || r.Series != nil
}

// Empty reports whether the bundle contained nothing to import.
func (r *ImportResult) Empty() bool {
	return r.Video == nil && r.Series == nil && !r.VideoSkipped && !r.SeriesSkipped
}

// ImportBundle ingests an exported JSON bundle. The series entry is handled
// before the video entry so an episode can land next to its series. A series
// whose exact title already exists, or a video whose exact URL already
// exists, is skipped. A bundle with neither key yields an empty result, not
// an error.
func (s *Store) ImportBundle(data []byte) (*ImportResult, error) {
	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, &StoreError{Op: "import", Entity: "bundle", Err: fmt.Errorf("%w: %v", ErrInvalidInput, err)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &ImportResult{}

	if b.Series != nil {
		series, err := s.loadSeries()
		if err != nil {
			return nil, err
		}
		exists := false
		for _, sr := range series {
			if sr.Title == b.Series.Title {
				exists = true
				break
			}
		}
		if exists {
			result.SeriesSkipped = true
		} else {
			created, err := s.addSeries("import", NewSeries{
				Title:       b.Series.Title,
				Description: b.Series.Description,
				Thumbnail:   b.Series.Thumbnail,
			})
			if err != nil {
				return nil, err
			}
			result.Series = created
		}
	}

	if b.Video != nil {
		videos, err := s.loadVideos()
		if err != nil {
			return nil, err
		}
		exists := false
		for _, v := range videos {
			if v.URL == b.Video.URL {
				exists = true
				break
			}
		}
		if exists {
			result.VideoSkipped = true
		} else {
			created, err := s.addVideo("import", NewVideo{
				Title:         b.Video.Title,
				Description:   b.Video.Description,
				URL:           b.Video.URL,
				Thumbnail:     b.Video.Thumbnail,
				Category:      b.Video.Category,
				SeriesID:      b.Video.SeriesID,
				EpisodeNumber: b.Video.EpisodeNumber,
			})
			if err != nil {
				return nil, err
			}
			result.Video = created
		}
	}

	return result, nil
}

// exportedVideo renders AddedAt as a calendar time instead of raw epoch
// milliseconds; the rest of the shape matches the stored record.
type exportedVideo struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Category      Category `json:"category"`
	AddedAt       string   `json:"addedAt"`
	SeriesID      string   `json:"seriesId,omitempty"`
	EpisodeNumber int      `json:"episodeNumber,omitempty"`
}

type exportBundle struct {
	Video  exportedVideo `json:"video"`
	Series *Series       `json:"series,omitempty"`
}

// ExportVideo produces a shareable JSON bundle for one video, including its
// series when the reference resolves. A dangling series reference degrades
// to a video-only bundle.
func (s *Store) ExportVideo(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.loadVideos()
	if err != nil {
		return nil, err
	}

	var video *Video
	for i := range videos {
		if videos[i].ID == id {
			video = &videos[i]
			break
		}
	}
	if video == nil {
		return nil, &StoreError{Op: "export", Entity: "video", ID: id, Err: ErrNotFound}
	}

	out := exportBundle{
		Video: exportedVideo{
			ID:            video.ID,
			Title:         video.Title,
			Description:   video.Description,
			URL:           video.URL,
			Thumbnail:     video.Thumbnail,
			Category:      video.Category,
			AddedAt:       time.UnixMilli(video.AddedAt).Format(time.RFC3339),
			SeriesID:      video.SeriesID,
			EpisodeNumber: video.EpisodeNumber,
		},
	}

	if video.SeriesID != "" {
		series, err := s.loadSeries()
		if err != nil {
			return nil, err
		}
		for i := range series {
			if series[i].ID == video.SeriesID {
				out.Series = &series[i]
				break
			}
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
