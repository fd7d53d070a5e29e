package adaptor

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"movie-rater/internal/usecase"
	"movie-rater/pkg/tmdb"
	"movie-rater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var apiErr *tmdb.APIError

	switch {
	case errors.Is(err, tmdb.ErrMissingAPIKey):
		log.Error(operation+" failed - missing configuration", zap.Error(err))
		utils.ResponseInternalError(w, tmdb.ErrMissingAPIKey.Error())

	case errors.As(err, &apiErr):
		log.Warn(operation+" failed - upstream error",
			zap.Int("upstream_status", apiErr.Status),
			zap.String("endpoint", apiErr.Endpoint))
		utils.ResponseUpstreamError(w, apiErr.Status, apiErr.Body)

	case errors.Is(err, tmdb.ErrUnavailable):
		log.Warn(operation+" failed - upstream circuit open", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "TMDB temporarily unavailable")

	case errors.Is(err, tmdb.ErrRequestFailed):
		log.Error(operation+" failed - upstream unreachable", zap.Error(err))
		utils.ResponseError(w, http.StatusBadGateway, "TMDB request failed")

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyReviewed):
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrReviewNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrStore):
		log.Error(operation+" failed - review store", zap.Error(err))
		utils.ResponseServiceUnavailable(w, usecase.ErrStore.Error())

	case errors.Is(err, context.Canceled):
		log.Debug(operation+" canceled by client")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// movieIDParam reads the positive TMDB id from the {id} path segment
func movieIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
