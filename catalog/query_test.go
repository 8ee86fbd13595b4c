package catalog

import (
	"reflect"
	"testing"
)

func sampleVideos() []Video {
	return []Video{
		{ID: "1", Title: "Big Buck Bunny", Description: "Un court métrage d'animation", Category: CategoryFilms},
		{ID: "2", Title: "Elephant Dream", Description: "Premier film libre", Category: CategoryFilms},
		{ID: "3", Title: "Clair de Lune", Description: "Debussy", Category: CategoryMusic},
		{ID: "4", Title: "Cosmos E1", Description: "", Category: CategorySeries},
	}
}

func TestFilterByCategory_AllIsIdentity(t *testing.T) {
	vs := sampleVideos()
	got := FilterByCategory(vs, CategoryAll)
	if !reflect.DeepEqual(got, vs) {
		t.Errorf("FilterByCategory(Tous) = %v, want input unchanged", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(sampleVideos(), CategoryFilms)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("FilterByCategory(Films) = %v, want videos 1 and 2 in order", got)
	}

	if got := FilterByCategory(sampleVideos(), CategoryOther); len(got) != 0 {
		t.Errorf("FilterByCategory(Autres) = %v, want empty", got)
	}
}

func TestSearch_BlankIsIdentity(t *testing.T) {
	vs := sampleVideos()
	for _, term := range []string{"", "   ", "\t\n"} {
		got := Search(vs, term)
		if !reflect.DeepEqual(got, vs) {
			t.Errorf("Search(%q) = %v, want input unchanged", term, got)
		}
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	vs := sampleVideos()
	upper := Search(vs, "ELEPHANT")
	lower := Search(vs, "elephant")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("Search(ELEPHANT) = %v, Search(elephant) = %v, want identical", upper, lower)
	}
	if len(upper) != 1 || upper[0].ID != "2" {
		t.Errorf("Search(ELEPHANT) = %v, want video 2", upper)
	}
}

func TestSearch_MatchesAllFields(t *testing.T) {
	vs := sampleVideos()

	if got := Search(vs, "debussy"); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("Search over description = %v, want video 3", got)
	}
	if got := Search(vs, "musique"); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("Search over category = %v, want video 3", got)
	}
	if got := Search(vs, "zzz"); len(got) != 0 {
		t.Errorf("Search(zzz) = %v, want empty", got)
	}
}

func TestSearch_PreservesOrder(t *testing.T) {
	vs := sampleVideos()
	got := Search(vs, "film") // matches both Films categories and "film libre"
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Errorf("Search() broke input order: %v", got)
		}
	}
}

func TestSortEpisodes(t *testing.T) {
	vs := []Video{
		{ID: "a", EpisodeNumber: 2},
		{ID: "b"}, // absent sorts as 0, first
		{ID: "c", EpisodeNumber: 1},
		{ID: "d"}, // ties keep insertion order
	}
	SortEpisodes(vs)

	want := []string{"b", "d", "c", "a"}
	for i, v := range vs {
		if v.ID != want[i] {
			t.Fatalf("SortEpisodes() order = %v, want %v", vs, want)
		}
	}
}
