// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"movie-rater/cmd"
	"movie-rater/internal/data/repository"
	"movie-rater/internal/usecase"
	"movie-rater/internal/wire"
	"movie-rater/pkg/database"
	"movie-rater/pkg/identity"
	"movie-rater/pkg/tmdb"
	"movie-rater/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Token verification cannot work without the signing secret
	verifier, err := identity.NewVerifier(identity.Config{
		Secret:   config.JWT.Secret,
		Audience: config.JWT.Audience,
		Issuer:   config.JWT.Issuer,
	})
	if err != nil {
		logger.Fatal("Failed to init token verifier", zap.Error(err))
	}

	if config.TMDB.APIKey == "" {
		logger.Warn("TMDB_API_KEY not set; movie endpoints will fail until it is configured")
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	movieAPI := tmdb.NewClient(tmdb.Config{
		APIKey:          config.TMDB.APIKey,
		BaseURL:         config.TMDB.BaseURL,
		Language:        config.TMDB.Language,
		Timeout:         config.TMDB.Timeout,
		BreakerFailures: config.TMDB.BreakerFailures,
		BreakerTimeout:  config.TMDB.BreakerTimeout,
	}, logger)

	caches := usecase.NewCaches(config.Cache)
	caches.Start()
	defer caches.Stop()

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:     repos,
		MovieAPI: movieAPI,
		Caches:   caches,
		Verifier: verifier,
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
