// Package catalog owns the persisted video and series collections.
//
// Both collections live in a string-keyed store as whole JSON blobs; every
// operation reads the relevant collection, applies an in-memory transform,
// and writes the whole blob back. Collections lazily seed themselves on
// first access. After every mutation the catalog invariants hold: ids are
// unique, an episode's seriesId/episodeNumber travel as a pair, and deleting
// a series never leaves a dangling reference behind.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cliphub/storage"
)

// Storage keys for the two collections.
const (
	videosKey = "clipHub_videos"
	seriesKey = "clipHub_series"
)

// Sentinel errors for expected catalog conditions.
var (
	// ErrNotFound indicates the requested record was not found.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalidInput indicates a record was missing required fields.
	ErrInvalidInput = errors.New("catalog: invalid input")
	// ErrCorrupt indicates a persisted collection could not be decoded.
	ErrCorrupt = errors.New("catalog: data corruption detected")
)

// StoreError wraps catalog errors with operation and entity context.
// Use errors.Is() against the sentinels above for classification.
type StoreError struct {
	Op     string // "read", "write", "add", "import", "delete", "export"
	Entity string // "video", "series", "bundle"
	ID     string
	Err    error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("catalog: %s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("catalog: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store is the catalog's data-access layer over an injected key-value
// store. Safe for concurrent use within a process; cross-process writers
// are not guarded against.
type Store struct {
	kv storage.KV
	mu sync.Mutex
}

// New creates a catalog store over kv. Nothing is read or seeded until the
// first operation touches a collection.
func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// loadVideos reads the video collection, seeding it on first access.
func (s *Store) loadVideos() ([]Video, error) {
	raw, ok, err := s.kv.Get(videosKey)
	if err != nil {
		return nil, &StoreError{Op: "read", Entity: "video", Err: err}
	}
	if !ok {
		videos := seedVideos()
		if err := s.saveVideos(videos); err != nil {
			return nil, err
		}
		return videos, nil
	}

	var videos []Video
	if err := json.Unmarshal([]byte(raw), &videos); err != nil {
		return nil, &StoreError{Op: "read", Entity: "video", Err: ErrCorrupt}
	}
	return videos, nil
}

// loadSeries reads the series collection, seeding it on first access.
// Seeding is independent of the video collection so call order never
// matters.
func (s *Store) loadSeries() ([]Series, error) {
	raw, ok, err := s.kv.Get(seriesKey)
	if err != nil {
		return nil, &StoreError{Op: "read", Entity: "series", Err: err}
	}
	if !ok {
		series := seedSeries()
		if err := s.saveSeries(series); err != nil {
			return nil, err
		}
		return series, nil
	}

	var series []Series
	if err := json.Unmarshal([]byte(raw), &series); err != nil {
		return nil, &StoreError{Op: "read", Entity: "series", Err: ErrCorrupt}
	}
	return series, nil
}

func (s *Store) saveVideos(videos []Video) error {
	raw, err := json.Marshal(videos)
	if err != nil {
		return &StoreError{Op: "write", Entity: "video", Err: err}
	}
	if err := s.kv.Set(videosKey, string(raw)); err != nil {
		return &StoreError{Op: "write", Entity: "video", Err: err}
	}
	return nil
}

func (s *Store) saveSeries(series []Series) error {
	raw, err := json.Marshal(series)
	if err != nil {
		return &StoreError{Op: "write", Entity: "series", Err: err}
	}
	if err := s.kv.Set(seriesKey, string(raw)); err != nil {
		return &StoreError{Op: "write", Entity: "series", Err: err}
	}
	return nil
}

// ListVideos returns all videos in stored (insertion) order.
func (s *Store) ListVideos() ([]Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadVideos()
}

// ListSeries returns all series in stored (insertion) order.
func (s *Store) ListSeries() ([]Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSeries()
}

// GetVideo returns the video with the given id, or ErrNotFound.
func (s *Store) GetVideo(id string) (*Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.loadVideos()
	if err != nil {
		return nil, err
	}
	for i := range videos {
		if videos[i].ID == id {
			v := videos[i]
			return &v, nil
		}
	}
	return nil, &StoreError{Op: "read", Entity: "video", ID: id, Err: ErrNotFound}
}

// GetSeries returns the series with the given id, or ErrNotFound.
func (s *Store) GetSeries(id string) (*Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	series, err := s.loadSeries()
	if err != nil {
		return nil, err
	}
	for i := range series {
		if series[i].ID == id {
			sr := series[i]
			return &sr, nil
		}
	}
	return nil, &StoreError{Op: "read", Entity: "series", ID: id, Err: ErrNotFound}
}

// SeriesVideos returns the videos belonging to a series, ordered ascending
// by episode number. A missing episode number sorts as zero, i.e. first.
// An unknown series id simply yields an empty result; the caller decides
// whether that means "no episodes yet" or a dangling reference.
func (s *Store) SeriesVideos(seriesID string) ([]Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.loadVideos()
	if err != nil {
		return nil, err
	}

	var episodes []Video
	for _, v := range videos {
		if v.SeriesID == seriesID && seriesID != "" {
			episodes = append(episodes, v)
		}
	}
	SortEpisodes(episodes)
	return episodes, nil
}

// SeriesTitleExists reports whether a series with exactly this title exists.
func (s *Store) SeriesTitleExists(title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	series, err := s.loadSeries()
	if err != nil {
		return false, err
	}
	for _, sr := range series {
		if sr.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// VideoURLExists reports whether a video with exactly this URL exists.
func (s *Store) VideoURLExists(url string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.loadVideos()
	if err != nil {
		return false, err
	}
	for _, v := range videos {
		if v.URL == url {
			return true, nil
		}
	}
	return false, nil
}

// AddVideo validates data, assigns a fresh id and the current timestamp,
// appends the record and persists the collection. The created record is
// returned.
func (s *Store) AddVideo(data NewVideo) (*Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addVideo("add", data)
}

// ImportVideo ingests a previously exported video record. Identical to
// AddVideo: whatever id or timestamp the source carried has already been
// stripped by the bundle decoding and is regenerated here.
func (s *Store) ImportVideo(data NewVideo) (*Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addVideo("import", data)
}

func (s *Store) addVideo(op string, data NewVideo) (*Video, error) {
	if err := validateVideo(data); err != nil {
		return nil, &StoreError{Op: op, Entity: "video", Err: err}
	}

	videos, err := s.loadVideos()
	if err != nil {
		return nil, err
	}

	v := Video{
		ID:          uuid.NewString(),
		Title:       data.Title,
		Description: data.Description,
		URL:         data.URL,
		Thumbnail:   data.Thumbnail,
		Category:    data.Category,
		AddedAt:     time.Now().UnixMilli(),
	}
	// The pair travels together: no series, no episode number.
	if data.SeriesID != "" {
		v.SeriesID = data.SeriesID
		v.EpisodeNumber = data.EpisodeNumber
	}

	videos = append(videos, v)
	if err := s.saveVideos(videos); err != nil {
		return nil, err
	}
	return &v, nil
}

func validateVideo(data NewVideo) error {
	if data.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidInput)
	}
	if data.URL == "" {
		return fmt.Errorf("%w: missing url", ErrInvalidInput)
	}
	if !validCategory(data.Category) {
		return fmt.Errorf("%w: category %q is not storable", ErrInvalidInput, data.Category)
	}
	if data.EpisodeNumber < 0 {
		return fmt.Errorf("%w: negative episode number", ErrInvalidInput)
	}
	return nil
}

// AddSeries validates data, assigns a fresh id, appends the record and
// persists the collection. The created record is returned.
func (s *Store) AddSeries(data NewSeries) (*Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addSeries("add", data)
}

// ImportSeries ingests a previously exported series record; the embedded id
// is never trusted.
func (s *Store) ImportSeries(data NewSeries) (*Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addSeries("import", data)
}

func (s *Store) addSeries(op string, data NewSeries) (*Series, error) {
	if data.Title == "" {
		return nil, &StoreError{Op: op, Entity: "series", Err: fmt.Errorf("%w: missing title", ErrInvalidInput)}
	}

	series, err := s.loadSeries()
	if err != nil {
		return nil, err
	}

	sr := Series{
		ID:          uuid.NewString(),
		Title:       data.Title,
		Description: data.Description,
		Thumbnail:   data.Thumbnail,
	}

	series = append(series, sr)
	if err := s.saveSeries(series); err != nil {
		return nil, err
	}
	return &sr, nil
}

// DeleteVideo removes the video with the given id. Returns ErrNotFound if
// no record matches; the collection is left untouched in that case.
func (s *Store) DeleteVideo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.loadVideos()
	if err != nil {
		return err
	}

	kept := videos[:0:0]
	for _, v := range videos {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(videos) {
		return &StoreError{Op: "delete", Entity: "video", ID: id, Err: ErrNotFound}
	}
	return s.saveVideos(kept)
}

// DeleteSeries removes the series with the given id and strips the
// seriesId/episodeNumber pair from every video that referenced it. Both
// resulting collections are computed before either is persisted so a
// subsequent read sees the removal and the cascade together.
func (s *Store) DeleteSeries(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	series, err := s.loadSeries()
	if err != nil {
		return err
	}

	keptSeries := series[:0:0]
	for _, sr := range series {
		if sr.ID != id {
			keptSeries = append(keptSeries, sr)
		}
	}
	if len(keptSeries) == len(series) {
		return &StoreError{Op: "delete", Entity: "series", ID: id, Err: ErrNotFound}
	}

	videos, err := s.loadVideos()
	if err != nil {
		return err
	}
	changed := false
	for i := range videos {
		if videos[i].SeriesID == id {
			videos[i].SeriesID = ""
			videos[i].EpisodeNumber = 0
			changed = true
		}
	}

	if err := s.saveSeries(keptSeries); err != nil {
		return err
	}
	if changed {
		return s.saveVideos(videos)
	}
	return nil
}
