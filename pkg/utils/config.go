package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	TMDB           TMDBConfig
	Cache          CacheConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	CORSOrigins     []string
	SearchRateLimit int // requests per minute per IP
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	Secret   string
	Audience string
	Issuer   string
}

type TMDBConfig struct {
	APIKey          string
	BaseURL         string
	Language        string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type CacheConfig struct {
	TrendingTTL       time.Duration
	MovieMetaTTL      time.Duration
	MovieMetaCapacity uint64
	RecommendationTTL time.Duration
}

type RecommendationConfig struct {
	LikedThreshold int
}

// LoadConfig reads .env from the working directory and the environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file; environment variables take
// precedence. A missing file is not an error.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-rater")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ORIGINS", "https://ratemyreel.vercel.app")
	v.SetDefault("SEARCH_RATE_LIMIT", 60)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_AUDIENCE", "authenticated")
	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("TMDB_LANGUAGE", "en-US")
	v.SetDefault("TMDB_TIMEOUT", "5s")
	v.SetDefault("TMDB_BREAKER_FAILURES", 5)
	v.SetDefault("TMDB_BREAKER_TIMEOUT", "30s")
	v.SetDefault("TRENDING_TTL", "5m")
	v.SetDefault("MOVIE_META_TTL", "24h")
	v.SetDefault("MOVIE_META_CAPACITY", 10000)
	v.SetDefault("RECOMMENDATION_TTL", "5m")
	v.SetDefault("LIKED_THRESHOLD", 3)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
			SearchRateLimit: v.GetInt("SEARCH_RATE_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("JWT_SECRET"),
			Audience: v.GetString("JWT_AUDIENCE"),
			Issuer:   v.GetString("JWT_ISSUER"),
		},
		TMDB: TMDBConfig{
			// API_KEY is the name the deployed frontend stack already uses
			APIKey:          firstNonEmpty(v.GetString("TMDB_API_KEY"), v.GetString("API_KEY")),
			BaseURL:         v.GetString("TMDB_BASE_URL"),
			Language:        v.GetString("TMDB_LANGUAGE"),
			Timeout:         v.GetDuration("TMDB_TIMEOUT"),
			BreakerFailures: v.GetUint32("TMDB_BREAKER_FAILURES"),
			BreakerTimeout:  v.GetDuration("TMDB_BREAKER_TIMEOUT"),
		},
		Cache: CacheConfig{
			TrendingTTL:       v.GetDuration("TRENDING_TTL"),
			MovieMetaTTL:      v.GetDuration("MOVIE_META_TTL"),
			MovieMetaCapacity: v.GetUint64("MOVIE_META_CAPACITY"),
			RecommendationTTL: v.GetDuration("RECOMMENDATION_TTL"),
		},
		Recommendation: RecommendationConfig{
			LikedThreshold: v.GetInt("LIKED_THRESHOLD"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
