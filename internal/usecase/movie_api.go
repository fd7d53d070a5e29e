package usecase

import (
	"context"

	"movie-rater/pkg/tmdb"
)

//go:generate mockgen -destination=mocks/mock_movie_api.go -package=mocks movie-rater/internal/usecase MovieAPI

// MovieAPI is the upstream movie catalog. *tmdb.Client implements it.
type MovieAPI interface {
	Trending(ctx context.Context) (*tmdb.Page, error)
	Search(ctx context.Context, p tmdb.SearchParams) (*tmdb.Page, error)
	Movie(ctx context.Context, id int) (*tmdb.Movie, error)
	Discover(ctx context.Context, p tmdb.DiscoverParams) (*tmdb.Page, error)
	NowPlaying(ctx context.Context, page int) (*tmdb.Page, error)
}

var _ MovieAPI = (*tmdb.Client)(nil)
