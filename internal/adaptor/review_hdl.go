package adaptor

import (
	"net/http"

	"movie-rater/internal/dto/request"
	"movie-rater/internal/usecase"
	"movie-rater/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxReviewBodyBytes = 16 << 10

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetLatestReviews handles GET /api/movies/reviews/latest (protected)
func (h *ReviewHandler) GetLatestReviews(w http.ResponseWriter, r *http.Request) {
	req, err := request.PaginationFromQuery(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	feed, err := h.service.GetLatestReviews(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get latest reviews")
		return
	}

	utils.ResponseSuccess(w, feed)
}

// GetMyReviews handles GET /api/movies/reviews/mine (protected)
func (h *ReviewHandler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req, err := request.PaginationFromQuery(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	feed, err := h.service.GetUserReviews(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get my reviews")
		return
	}

	utils.ResponseSuccess(w, feed)
}

// GetMovieReviews handles GET /api/movies/{id}/reviews (public)
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer")
		return
	}

	req, err := request.PaginationFromQuery(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// CreateReview handles POST /api/movies/{id}/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReviewBodyBytes)).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	username := utils.GetUsernameFromContext(r.Context())
	review, err := h.service.CreateReview(r.Context(), userID, username, movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// UpdateReview handles PUT /api/movies/{id}/reviews (protected, own review)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer")
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReviewBodyBytes)).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	review, err := h.service.UpdateReview(r.Context(), userID, movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// GetMovieReviewStats handles GET /api/movies/{id}/review-stats (public)
func (h *ReviewHandler) GetMovieReviewStats(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer")
		return
	}

	stats, err := h.service.GetMovieReviewStats(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie review stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// DeleteReview handles DELETE /api/movies/{id}/reviews (protected, own review)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer")
		return
	}

	if err := h.service.DeleteReview(r.Context(), userID, movieID); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
