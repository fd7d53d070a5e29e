package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-rater/internal/data/entity"
	"movie-rater/internal/data/repository"
	"movie-rater/internal/dto/request"
	"movie-rater/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const anonymousUsername = "anonymous"

type ReviewService interface {
	// Feeds
	GetLatestReviews(ctx context.Context, req *request.PaginatedRequest) (*response.ReviewFeedResponse, error)
	GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.ReviewFeedResponse, error)
	GetMovieReviews(ctx context.Context, movieID int, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)

	// Stats
	GetMovieReviewStats(ctx context.Context, movieID int) (*response.MovieReviewStats, error)

	// Writes
	CreateReview(ctx context.Context, userID uuid.UUID, username string, movieID int, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID uuid.UUID, movieID int, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID uuid.UUID, movieID int) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	movies  MovieService
	caches  *Caches
	log     *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, movies MovieService, caches *Caches, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		movies:  movies,
		caches:  caches,
		log:     log.With(zap.String("service", "review")),
	}
}

// GetLatestReviews is the community feed: reviews of all users, newest
// first, each merged with its movie's title and poster.
func (s *reviewService) GetLatestReviews(ctx context.Context, req *request.PaginatedRequest) (*response.ReviewFeedResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindLatest(ctx, req.Limit, req.Offset())
	if err != nil {
		return nil, storeError("get latest reviews", err)
	}

	items, err := s.mergeMeta(ctx, reviews)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Latest reviews retrieved",
		zap.Int("page", req.Page),
		zap.Int("limit", req.Limit),
		zap.Int("count", len(items)),
	)

	return &response.ReviewFeedResponse{Results: items, Page: req.Page, Limit: req.Limit}, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.ReviewFeedResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByUserID(ctx, userID, req.Limit, req.Offset())
	if err != nil {
		return nil, storeError("get user reviews", err)
	}

	items, err := s.mergeMeta(ctx, reviews)
	if err != nil {
		return nil, err
	}

	return &response.ReviewFeedResponse{Results: items, Page: req.Page, Limit: req.Limit}, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByMovieID(ctx, movieID, req.Limit, req.Offset())
	if err != nil {
		return nil, storeError("get movie reviews", err)
	}

	total, err := s.reviews.CountByMovieID(ctx, movieID)
	if err != nil {
		return nil, storeError("count movie reviews", err)
	}

	results := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		results[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(results, req.Page, req.Limit, total), nil
}

// CreateReview stores the caller's rating of a movie. The movie must exist
// upstream and a user reviews a movie at most once.
func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, username string, movieID int, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	// Check the movie exists; this also warms the metadata cache for the feed
	if _, err := s.movies.GetMovieMeta(ctx, movieID); err != nil {
		return nil, err
	}

	existing, err := s.reviews.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, storeError("check existing review", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	if username == "" {
		username = anonymousUsername
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		MovieID:  movieID,
		UserID:   userID,
		Username: username,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrAlreadyReviewed
		}
		return nil, storeError("create review", err)
	}

	// Any new rating changes what may be recommended
	s.caches.Recommendations.Delete(userID)

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("movie_id", movieID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// UpdateReview changes the rating or comment of the caller's review of a
// movie. A request without changes returns the review as stored.
func (s *reviewService) UpdateReview(ctx context.Context, userID uuid.UUID, movieID int, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update review validation failed", zap.Error(err))
		return nil, err
	}

	review, err := s.reviews.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, storeError("find review", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	updated := false
	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}
	if req.Comment != nil && *req.Comment != review.Comment {
		review.Comment = *req.Comment
		updated = true
	}

	if !updated {
		resp := response.ReviewToResponse(review)
		return &resp, nil
	}

	err = s.reviews.Update(ctx, review)
	if errors.Is(err, repository.ErrReviewNotFound) {
		// deleted concurrently
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, storeError("update review", err)
	}

	s.caches.Recommendations.Delete(userID)

	s.log.Info("Review updated",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("movie_id", movieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID uuid.UUID, movieID int) error {
	err := s.reviews.DeleteByUserAndMovie(ctx, userID, movieID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return ErrReviewNotFound
	}
	if err != nil {
		return storeError("delete review", err)
	}

	s.caches.Recommendations.Delete(userID)

	s.log.Info("Review deleted",
		zap.String("user_id", userID.String()),
		zap.Int("movie_id", movieID),
	)
	return nil
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID int) (*response.MovieReviewStats, error) {
	avgRating, reviewCount, err := s.reviews.GetMovieReviewStats(ctx, movieID)
	if err != nil {
		return nil, storeError("get movie review stats", err)
	}

	counts := map[int]int64{}
	if reviewCount > 0 {
		if counts, err = s.reviews.CountByRating(ctx, movieID); err != nil {
			return nil, storeError("count movie ratings", err)
		}
	}

	stats := response.NewMovieReviewStats(movieID, avgRating, reviewCount, counts)
	return &stats, nil
}

// mergeMeta attaches cached movie metadata to each review, keeping the
// store's order.
func (s *reviewService) mergeMeta(ctx context.Context, reviews []*entity.Review) ([]response.ReviewFeedItem, error) {
	ids := make([]int, len(reviews))
	for i, r := range reviews {
		ids[i] = r.MovieID
	}

	metas, err := s.movies.ResolveMeta(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve movie metadata: %w", err)
	}

	items := make([]response.ReviewFeedItem, len(reviews))
	for i, r := range reviews {
		items[i] = response.ReviewToFeedItem(r, metas[r.MovieID])
	}
	return items, nil
}
