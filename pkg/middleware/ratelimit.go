package middleware

import (
	"net/http"
	"time"

	"movie-rater/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows requests per window for each client IP. A non-positive
// limit disables it.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseError(w, http.StatusTooManyRequests, "Too many requests, slow down")
		}),
	)
}
