package usecase

import (
	"context"
	"fmt"
	"sync"

	"movie-rater/internal/dto/request"
	"movie-rater/internal/dto/response"
	"movie-rater/pkg/tmdb"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	trendingLimit = 10

	// upstream calls in flight per request when resolving several movies
	fetchConcurrency = 8
)

type MovieService interface {
	GetTrending(ctx context.Context) (*response.MovieListResponse, error)
	GetMovieByID(ctx context.Context, id int) (*response.MovieDetail, error)
	Search(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse, error)
	GetNowPlaying(ctx context.Context, req *request.NowPlayingRequest) (*response.SearchResponse, error)
	CountNowPlaying(ctx context.Context) (*response.CountResponse, error)

	// Metadata cache
	GetMovieMeta(ctx context.Context, id int) (response.MovieMeta, error)
	ResolveMeta(ctx context.Context, ids []int) (map[int]response.MovieMeta, error)
}

type movieService struct {
	api    MovieAPI
	caches *Caches
	log    *zap.Logger
}

func NewMovieService(api MovieAPI, caches *Caches, log *zap.Logger) MovieService {
	return &movieService{
		api:    api,
		caches: caches,
		log:    log.With(zap.String("service", "movie")),
	}
}

// GetTrending serves today's top trending movies. The list is the same for
// every caller and is not tied to an identity.
func (s *movieService) GetTrending(ctx context.Context) (*response.MovieListResponse, error) {
	list, err := s.caches.Trending.GetOrLoad(ctx, struct{}{}, func(ctx context.Context) (response.MovieListResponse, error) {
		page, err := s.api.Trending(ctx)
		if err != nil {
			return response.MovieListResponse{}, fmt.Errorf("fetch trending: %w", err)
		}

		s.log.Debug("Trending refreshed", zap.Int("upstream_count", len(page.Results)))
		return response.MovieListResponse{
			Results: response.SummariesFromResults(page.Results, trendingLimit),
		}, nil
	})
	if err != nil {
		s.log.Error("Failed to get trending movies", zap.Error(err))
		return nil, err
	}

	return &list, nil
}

// GetMovieByID returns the full detail and refreshes the metadata cache
// with what was fetched.
func (s *movieService) GetMovieByID(ctx context.Context, id int) (*response.MovieDetail, error) {
	movie, err := s.api.Movie(ctx, id)
	if err != nil {
		s.log.Warn("Failed to get movie", zap.Int("movie_id", id), zap.Error(err))
		return nil, fmt.Errorf("fetch movie %d: %w", id, err)
	}

	s.caches.MovieMeta.Set(id, response.MetaFromMovie(movie))

	detail := response.DetailFromMovie(movie)
	return &detail, nil
}

func (s *movieService) Search(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	page, err := s.api.Search(ctx, tmdb.SearchParams{
		Query:        req.Query,
		Page:         req.Page,
		Language:     req.Language,
		IncludeAdult: req.IncludeAdult,
	})
	if err != nil {
		s.log.Warn("Search failed", zap.String("query", req.Query), zap.Error(err))
		return nil, fmt.Errorf("search %q: %w", req.Query, err)
	}

	resp := response.SearchFromPage(page)
	return &resp, nil
}

func (s *movieService) GetNowPlaying(ctx context.Context, req *request.NowPlayingRequest) (*response.SearchResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	page, err := s.api.NowPlaying(ctx, req.Page)
	if err != nil {
		return nil, fmt.Errorf("fetch now playing page %d: %w", req.Page, err)
	}

	resp := response.SearchFromPage(page)
	return &resp, nil
}

func (s *movieService) CountNowPlaying(ctx context.Context) (*response.CountResponse, error) {
	page, err := s.api.NowPlaying(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("count now playing: %w", err)
	}

	return &response.CountResponse{Count: page.TotalResults}, nil
}

// GetMovieMeta returns title and poster of a movie from the metadata cache,
// fetching the full movie on a miss.
func (s *movieService) GetMovieMeta(ctx context.Context, id int) (response.MovieMeta, error) {
	return s.caches.MovieMeta.GetOrLoad(ctx, id, func(ctx context.Context) (response.MovieMeta, error) {
		movie, err := s.api.Movie(ctx, id)
		if err != nil {
			return response.MovieMeta{}, fmt.Errorf("fetch movie %d: %w", id, err)
		}
		return response.MetaFromMovie(movie), nil
	})
}

// ResolveMeta looks up every distinct id. Either all ids resolve or the
// first error is returned.
func (s *movieService) ResolveMeta(ctx context.Context, ids []int) (map[int]response.MovieMeta, error) {
	out := make(map[int]response.MovieMeta, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			meta, err := s.GetMovieMeta(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = meta
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Warn("Failed to resolve movie metadata", zap.Ints("movie_ids", ids), zap.Error(err))
		return nil, err
	}

	return out, nil
}
