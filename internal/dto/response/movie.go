package response

import (
	"sort"

	"movie-rater/pkg/tmdb"
)

const maxCast = 5

type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    *string `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate *string `json:"release_date"`
}

type MovieDetail struct {
	MovieSummary
	Runtime  *int     `json:"runtime"`
	Genres   []string `json:"genres"`
	Director []string `json:"director"`
	Cast     []string `json:"cast"`
}

// MovieMeta is the part of a movie the review feeds show next to a review
type MovieMeta struct {
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

type MovieListResponse struct {
	Results []MovieSummary `json:"results"`
}

type SearchResponse struct {
	Results      []MovieSummary `json:"results"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type CountResponse struct {
	Count int `json:"count"`
}

// Helper converters
func SummaryFromResult(m tmdb.MovieResult) MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
	}
}

// SummariesFromResults projects at most limit results, keeping upstream
// order. A limit <= 0 keeps all of them.
func SummariesFromResults(results []tmdb.MovieResult, limit int) []MovieSummary {
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	out := make([]MovieSummary, 0, len(results))
	for _, m := range results {
		out = append(out, SummaryFromResult(m))
	}
	return out
}

func SearchFromPage(page *tmdb.Page) SearchResponse {
	return SearchResponse{
		Results:      SummariesFromResults(page.Results, 0),
		Page:         page.Page,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
}

func DetailFromMovie(m *tmdb.Movie) MovieDetail {
	detail := MovieDetail{
		MovieSummary: SummaryFromResult(m.MovieResult),
		Runtime:      m.Runtime,
		Genres:       make([]string, 0, len(m.Genres)),
		Director:     []string{},
		Cast:         []string{},
	}

	for _, g := range m.Genres {
		detail.Genres = append(detail.Genres, g.Name)
	}

	if m.Credits == nil {
		return detail
	}

	for _, c := range m.Credits.Crew {
		if c.Job == "Director" {
			detail.Director = append(detail.Director, c.Name)
		}
	}

	cast := make([]tmdb.CastMember, len(m.Credits.Cast))
	copy(cast, m.Credits.Cast)
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	for i := 0; i < len(cast) && i < maxCast; i++ {
		detail.Cast = append(detail.Cast, cast[i].Name)
	}

	return detail
}

func MetaFromMovie(m *tmdb.Movie) MovieMeta {
	return MovieMeta{
		Title:      m.Title,
		PosterPath: m.PosterPath,
	}
}
