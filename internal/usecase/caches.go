package usecase

import (
	"movie-rater/internal/dto/response"
	"movie-rater/pkg/cache"
	"movie-rater/pkg/utils"

	"github.com/google/uuid"
)

// Caches owns the process-wide caches shared by the services. It is built
// once at startup and injected.
type Caches struct {
	Trending        *cache.Cache[struct{}, response.MovieListResponse]
	MovieMeta       *cache.Cache[int, response.MovieMeta]
	Recommendations *cache.Versioned[uuid.UUID, response.RecommendationResponse]
}

func NewCaches(cfg utils.CacheConfig) *Caches {
	return &Caches{
		Trending:        cache.New[struct{}, response.MovieListResponse]("trending", cfg.TrendingTTL),
		MovieMeta:       cache.New[int, response.MovieMeta]("movie_meta", cfg.MovieMetaTTL, cache.WithCapacity(cfg.MovieMetaCapacity)),
		Recommendations: cache.NewVersioned[uuid.UUID, response.RecommendationResponse]("recommendations", cfg.RecommendationTTL),
	}
}

// Start begins the background sweep of expired entries in every cache.
func (c *Caches) Start() {
	c.Trending.Start()
	c.MovieMeta.Start()
	c.Recommendations.Start()
}

func (c *Caches) Stop() {
	c.Trending.Stop()
	c.MovieMeta.Stop()
	c.Recommendations.Stop()
}
