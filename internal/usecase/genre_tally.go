package usecase

import (
	"sort"

	"movie-rater/pkg/tmdb"
)

// GenreCount is one genre's occurrences across a set of movies
type GenreCount struct {
	ID    int
	Name  string
	Count int
}

// GenreTally counts genre occurrences and remembers the order in which
// genres were first seen.
type GenreTally struct {
	byID  map[int]int // genre id -> index into counts
	order []GenreCount
}

func NewGenreTally() *GenreTally {
	return &GenreTally{byID: make(map[int]int)}
}

func (t *GenreTally) Add(genres []tmdb.Genre) {
	for _, g := range genres {
		idx, ok := t.byID[g.ID]
		if !ok {
			idx = len(t.order)
			t.byID[g.ID] = idx
			t.order = append(t.order, GenreCount{ID: g.ID, Name: g.Name})
		}
		t.order[idx].Count++
	}
}

func (t *GenreTally) Len() int {
	return len(t.order)
}

// Top returns the n most frequent genres. Equal counts keep first-seen order.
func (t *GenreTally) Top(n int) []GenreCount {
	ranked := make([]GenreCount, len(t.order))
	copy(ranked, t.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
