package wire

import (
	"movie-rater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, deps routeDeps) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/trending - Today's top 10, identical for every caller
	r.Get("/api/movies/trending", movieHandler.GetTrending)

	// GET /api/movies/search - Title search, rate limited per client IP
	r.With(deps.searchLimit).Get("/api/movies/search", movieHandler.SearchMovies)

	// GET /api/movies/{id} - Movie details with credits
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		r.Get("/api/movies/now-playing", movieHandler.GetNowPlaying)
		r.Get("/api/movies/now-playing/count", movieHandler.CountNowPlaying)
	})
}
