// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"movie-rater/internal/adaptor"
	"movie-rater/internal/data/repository"
	"movie-rater/internal/usecase"
	"movie-rater/pkg/middleware"
	"movie-rater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators built in main and shared by the routes
type Deps struct {
	Repo     *repository.Repository
	MovieAPI usecase.MovieAPI
	Caches   *usecase.Caches
	Verifier middleware.TokenVerifier
}

// App holds the assembled HTTP application
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.MovieAPI, deps.Caches, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps.Verifier, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	verifier middleware.TokenVerifier,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	r.Use(middleware.Metrics)

	routes := routeDeps{
		auth:        middleware.Auth(verifier, logger),
		searchLimit: middleware.RateLimit(config.App.SearchRateLimit, time.Minute),
	}

	// Apply routes
	wireMovie(r, handler.Movie, routes)
	wireReview(r, handler.Review, routes)
	wireRecommendation(r, handler.Recommendation, routes)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"message": "MovieRater backend is running."})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}

type routeDeps struct {
	auth        func(http.Handler) http.Handler
	searchLimit func(http.Handler) http.Handler
}
