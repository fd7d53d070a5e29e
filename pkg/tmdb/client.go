// Package tmdb is a read-only client for The Movie Database v3 API.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-rater/pkg/metrics"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "en-US"
	DefaultTimeout  = 5 * time.Second

	// upstream error bodies are small; cap what we read and forward
	maxBodyBytes = 4 << 20
)

// Config holds client settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration

	// consecutive failures (5xx or transport) before the breaker opens
	BreakerFailures uint32
	// how long the breaker stays open before probing again
	BreakerTimeout time.Duration
}

// Client issues requests against the API. All methods are safe for
// concurrent use.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	http     *http.Client
	cb       *gobreaker.CircuitBreaker[[]byte]
	log      *zap.Logger
}

// NewClient builds a client. A missing API key is not an error here; every
// call reports ErrMissingAPIKey instead so the process can still serve
// routes that do not need the API.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	log = log.With(zap.String("client", "tmdb"))

	const name = "tmdb"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// 4xx responses are the caller's problem, not an outage.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state change",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		language: cfg.Language,
		http:     &http.Client{Timeout: cfg.Timeout},
		cb:       cb,
		log:      log,
	}
}

// Trending returns today's trending movies.
func (c *Client) Trending(ctx context.Context) (*Page, error) {
	params := url.Values{}
	params.Set("language", c.language)

	var page Page
	if err := c.get(ctx, "trending", "/trending/movie/day", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Search finds movies by title.
func (c *Client) Search(ctx context.Context, p SearchParams) (*Page, error) {
	params := url.Values{}
	params.Set("query", p.Query)
	params.Set("page", strconv.Itoa(max(p.Page, 1)))
	params.Set("language", c.languageOr(p.Language))
	params.Set("include_adult", strconv.FormatBool(p.IncludeAdult))

	var page Page
	if err := c.get(ctx, "search", "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Movie returns the full record of one movie with its credits.
func (c *Client) Movie(ctx context.Context, id int) (*Movie, error) {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("append_to_response", "credits")

	var movie Movie
	if err := c.get(ctx, "movie", "/movie/"+strconv.Itoa(id), params, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Discover lists movies matching every genre in p.GenreIDs.
func (c *Client) Discover(ctx context.Context, p DiscoverParams) (*Page, error) {
	ids := make([]string, len(p.GenreIDs))
	for i, id := range p.GenreIDs {
		ids[i] = strconv.Itoa(id)
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = SortPopularityDesc
	}

	params := url.Values{}
	params.Set("language", c.language)
	params.Set("include_adult", "false")
	params.Set("with_genres", strings.Join(ids, ","))
	params.Set("sort_by", sortBy)
	params.Set("page", strconv.Itoa(max(p.Page, 1)))

	var page Page
	if err := c.get(ctx, "discover", "/discover/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NowPlaying lists movies currently in theatres.
func (c *Client) NowPlaying(ctx context.Context, page int) (*Page, error) {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(max(page, 1)))

	var p Page
	if err := c.get(ctx, "now_playing", "/movie/now_playing", params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	params.Set("api_key", c.apiKey)

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, endpoint, path, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("Request rejected by circuit breaker", zap.String("endpoint", endpoint))
			return fmt.Errorf("%w: %s", ErrUnavailable, endpoint)
		}
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", endpoint, ErrRequestFailed, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		c.log.Error("Request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrRequestFailed, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(endpoint, statusClass(resp.StatusCode)).Inc()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s body: %w", ErrRequestFailed, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Unexpected upstream status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: string(body)}
	}

	c.log.Debug("Upstream request",
		zap.String("endpoint", endpoint),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}

func (c *Client) languageOr(lang string) string {
	if lang == "" {
		return c.language
	}
	return lang
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
