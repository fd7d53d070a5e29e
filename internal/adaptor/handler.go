package adaptor

import (
	"movie-rater/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie          *MovieHandler
	Review         *ReviewHandler
	Recommendation *RecommendationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:          NewMovieHandler(service.Movie, log),
		Review:         NewReviewHandler(service.Review, log),
		Recommendation: NewRecommendationHandler(service.Recommendation, log),
	}
}
