package usecase

import (
	"context"
	"fmt"

	"movie-rater/internal/data/entity"
	"movie-rater/internal/data/repository"
	"movie-rater/internal/dto/response"
	"movie-rater/pkg/tmdb"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLikedThreshold = 3

	topGenreCount      = 3
	maxRecommendations = 10
)

type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) (*response.RecommendationResponse, error)
}

type recommendationService struct {
	reviews   repository.ReviewRepository
	api       MovieAPI
	caches    *Caches
	threshold int
	log       *zap.Logger
}

func NewRecommendationService(reviews repository.ReviewRepository, api MovieAPI, caches *Caches, likedThreshold int, log *zap.Logger) RecommendationService {
	if likedThreshold <= 0 {
		likedThreshold = DefaultLikedThreshold
	}
	return &recommendationService{
		reviews:   reviews,
		api:       api,
		caches:    caches,
		threshold: likedThreshold,
		log:       log.With(zap.String("service", "recommendation")),
	}
}

// GetRecommendations derives movies from the genres the user likes most.
// A cached result is reused only while the user's liked count is unchanged.
func (s *recommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID) (*response.RecommendationResponse, error) {
	likedCount, err := s.reviews.CountByUserMinRating(ctx, userID, s.threshold)
	if err != nil {
		return nil, storeError("count liked reviews", err)
	}

	rec, err := s.caches.Recommendations.GetOrLoad(ctx, userID, likedCount, func(ctx context.Context) (response.RecommendationResponse, error) {
		return s.compute(ctx, userID)
	})
	if err != nil {
		s.log.Error("Failed to compute recommendations",
			zap.String("user_id", userID.String()),
			zap.Int64("liked_count", likedCount),
			zap.Error(err),
		)
		return nil, err
	}

	return &rec, nil
}

func (s *recommendationService) compute(ctx context.Context, userID uuid.UUID) (response.RecommendationResponse, error) {
	reviews, err := s.reviews.FindAllByUserID(ctx, userID)
	if err != nil {
		return response.RecommendationResponse{}, storeError("load user reviews", err)
	}

	rated, liked := partitionReviews(reviews, s.threshold)
	if len(liked) == 0 {
		return response.EmptyRecommendations(), nil
	}

	movies, err := s.fetchMovies(ctx, liked)
	if err != nil {
		return response.RecommendationResponse{}, err
	}

	tally := NewGenreTally()
	for _, m := range movies {
		tally.Add(m.Genres)
	}

	if tally.Len() == 0 {
		// liked movies without any genre give nothing to discover by
		return response.RecommendationResponse{
			Results:   []response.MovieSummary{},
			TopGenres: []string{},
		}, nil
	}

	top := tally.Top(topGenreCount)

	genreIDs := make([]int, len(top))
	genreNames := make([]string, len(top))
	for i, g := range top {
		genreIDs[i] = g.ID
		genreNames[i] = g.Name
	}

	page, err := s.api.Discover(ctx, tmdb.DiscoverParams{
		GenreIDs: genreIDs,
		SortBy:   tmdb.SortPopularityDesc,
		Page:     1,
	})
	if err != nil {
		return response.RecommendationResponse{}, fmt.Errorf("discover by genres %v: %w", genreIDs, err)
	}

	results := make([]response.MovieSummary, 0, maxRecommendations)
	for _, m := range page.Results {
		if _, seen := rated[m.ID]; seen {
			continue
		}
		results = append(results, response.SummaryFromResult(m))
		if len(results) == maxRecommendations {
			break
		}
	}

	s.log.Debug("Recommendations computed",
		zap.String("user_id", userID.String()),
		zap.Int("liked", len(liked)),
		zap.Strings("top_genres", genreNames),
		zap.Int("results", len(results)),
	)

	return response.RecommendationResponse{
		Results:   results,
		TopGenres: genreNames,
	}, nil
}

// fetchMovies loads every movie, returning them in the order of ids. Any
// failure fails the whole call. Each fetched movie also refreshes the
// metadata cache.
func (s *recommendationService) fetchMovies(ctx context.Context, ids []int) ([]*tmdb.Movie, error) {
	movies := make([]*tmdb.Movie, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			m, err := s.api.Movie(gctx, id)
			if err != nil {
				return fmt.Errorf("fetch liked movie %d: %w", id, err)
			}
			s.caches.MovieMeta.Set(id, response.MetaFromMovie(m))
			movies[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return movies, nil
}

// partitionReviews returns the set of every rated movie and the liked movie
// ids in review order, without duplicates.
func partitionReviews(reviews []*entity.Review, threshold int) (map[int]struct{}, []int) {
	rated := make(map[int]struct{}, len(reviews))
	var liked []int

	likedSeen := make(map[int]struct{})
	for _, r := range reviews {
		rated[r.MovieID] = struct{}{}
		if !r.Liked(threshold) {
			continue
		}
		if _, dup := likedSeen[r.MovieID]; dup {
			continue
		}
		likedSeen[r.MovieID] = struct{}{}
		liked = append(liked, r.MovieID)
	}

	return rated, liked
}
