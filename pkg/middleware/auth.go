package middleware

import (
	"net/http"
	"strings"

	"movie-rater/pkg/identity"
	"movie-rater/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier validates a bearer token and returns the caller.
type TokenVerifier interface {
	Verify(token string) (*identity.Identity, error)
}

// Auth rejects requests without a valid bearer token before any handler,
// store or cache is touched, and puts the caller into the request context.
func Auth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			caller, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), caller.Subject, caller.DisplayName())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
