package adaptor

import (
	"net/http"

	"movie-rater/internal/dto/request"
	"movie-rater/internal/usecase"
	"movie-rater/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetTrending handles GET /api/movies/trending (public)
func (h *MovieHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetTrending(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get trending")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// SearchMovies handles GET /api/movies/search (public)
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	req, err := request.SearchFromQuery(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}
	if req.Query == "" {
		utils.ResponseBadRequest(w, "Missing query parameter")
		return
	}

	movies, err := h.service.Search(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /api/movies/{id} (public)
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := movieIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer")
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetNowPlaying handles GET /api/movies/now-playing (protected)
func (h *MovieHandler) GetNowPlaying(w http.ResponseWriter, r *http.Request) {
	req, err := request.NowPlayingFromQuery(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	movies, err := h.service.GetNowPlaying(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get now playing")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// CountNowPlaying handles GET /api/movies/now-playing/count (protected)
func (h *MovieHandler) CountNowPlaying(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountNowPlaying(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "count now playing")
		return
	}

	utils.ResponseSuccess(w, count)
}
