package wire

import (
	"movie-rater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, deps routeDeps) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/{id}/reviews - Reviews of one movie
	r.Get("/api/movies/{id}/reviews", reviewHandler.GetMovieReviews)

	// GET /api/movies/{id}/review-stats - Average rating and distribution
	r.Get("/api/movies/{id}/review-stats", reviewHandler.GetMovieReviewStats)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		// GET /api/movies/reviews/latest - Community feed, newest first
		r.Get("/api/movies/reviews/latest", reviewHandler.GetLatestReviews)

		// GET /api/movies/reviews/mine - Caller's own reviews
		r.Get("/api/movies/reviews/mine", reviewHandler.GetMyReviews)

		// POST /api/movies/{id}/reviews - Rate a movie, once per user
		r.Post("/api/movies/{id}/reviews", reviewHandler.CreateReview)

		// PUT /api/movies/{id}/reviews - Change the caller's rating or comment
		r.Put("/api/movies/{id}/reviews", reviewHandler.UpdateReview)

		// DELETE /api/movies/{id}/reviews - Remove the caller's review
		r.Delete("/api/movies/{id}/reviews", reviewHandler.DeleteReview)
	})
}
