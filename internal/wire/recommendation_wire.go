package wire

import (
	"movie-rater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRecommendation(r chi.Router, recHandler *adaptor.RecommendationHandler, deps routeDeps) {
	// GET /api/movies/recommendations - Picks from the caller's favourite genres
	r.With(deps.auth).Get("/api/movies/recommendations", recHandler.GetRecommendations)
}
