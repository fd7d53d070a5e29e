package usecase_test

import (
	"testing"
	"time"

	"movie-rater/internal/data/repository"
	repomocks "movie-rater/internal/data/repository/mocks"
	"movie-rater/internal/usecase"
	"movie-rater/internal/usecase/mocks"
	"movie-rater/pkg/tmdb"
	"movie-rater/pkg/utils"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	api     *mocks.MockMovieAPI
	reviews *repomocks.MockReviewRepository
	caches  *usecase.Caches
	svc     *usecase.Service
}

func newFixture(t *testing.T, ttl time.Duration) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		api:     mocks.NewMockMovieAPI(ctrl),
		reviews: repomocks.NewMockReviewRepository(ctrl),
		caches: usecase.NewCaches(utils.CacheConfig{
			TrendingTTL:       ttl,
			MovieMetaTTL:      ttl,
			MovieMetaCapacity: 100,
			RecommendationTTL: ttl,
		}),
	}

	cfg := &utils.Config{Recommendation: utils.RecommendationConfig{LikedThreshold: 3}}
	f.svc = usecase.NewService(&repository.Repository{Review: f.reviews}, f.api, f.caches, cfg, zap.NewNop())
	return f
}

func strPtr(s string) *string { return &s }

func movie(id int, title string, genres ...tmdb.Genre) *tmdb.Movie {
	return &tmdb.Movie{
		MovieResult: tmdb.MovieResult{ID: id, Title: title, PosterPath: strPtr("/" + title + ".jpg")},
		Genres:      genres,
	}
}

func results(ids ...int) []tmdb.MovieResult {
	out := make([]tmdb.MovieResult, len(ids))
	for i, id := range ids {
		out[i] = tmdb.MovieResult{ID: id, Title: "movie"}
	}
	return out
}
