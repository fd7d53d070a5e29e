package usecase

import (
	"movie-rater/internal/data/repository"
	"movie-rater/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie          MovieService
	Review         ReviewService
	Recommendation RecommendationService
}

func NewService(repo *repository.Repository, api MovieAPI, caches *Caches, config *utils.Config, log *zap.Logger) *Service {
	movie := NewMovieService(api, caches, log)

	return &Service{
		Movie:          movie,
		Review:         NewReviewService(repo.Review, movie, caches, log),
		Recommendation: NewRecommendationService(repo.Review, api, caches, config.Recommendation.LikedThreshold, log),
	}
}
