package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-rater/internal/data/entity"
	"movie-rater/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	ErrDuplicateReview = errors.New("review already exists for this user and movie")
	ErrReviewNotFound  = errors.New("review not found")
)

// unique_violation
const pgUniqueViolation = "23505"

//go:generate mockgen -destination=mocks/mock_review_repo.go -package=mocks movie-rater/internal/data/repository ReviewRepository

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	DeleteByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int) error

	// Ordered range reads
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int, limit, offset int) ([]*entity.Review, error)
	FindLatest(ctx context.Context, limit, offset int) ([]*entity.Review, error)

	// Counts
	CountByUserMinRating(ctx context.Context, userID uuid.UUID, minRating int) (int64, error)
	CountByMovieID(ctx context.Context, movieID int) (int64, error)

	// Business queries
	GetMovieReviewStats(ctx context.Context, movieID int) (float64, int64, error) // rating, count
	CountByRating(ctx context.Context, movieID int) (map[int]int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, movie_id, user_id, username, rating, COALESCE(comment, ''), created_at`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, movie_id, user_id, username, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieID,
		review.UserID,
		review.Username,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateReview
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %s: %w",
			review.MovieID, review.UserID.String(), err)
	}

	return nil
}

// FindByUserAndMovie returns nil without error when the user has not
// reviewed the movie.
func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, userID, movieID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %s and movie %d: %w",
			userID.String(), movieID, err)
	}

	return review, nil
}

// Update rewrites the rating and comment of the review with review.ID.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) DeleteByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int) error {
	query := `DELETE FROM reviews WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", movieID),
		)
		return fmt.Errorf("delete review of movie %d by user %s: %w", movieID, userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// FindAllByUserID returns every review of the user, oldest first.
func (r *reviewRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	reviews, err := r.queryReviews(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find all reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find all reviews by user ID %s: %w", userID.String(), err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	reviews, err := r.queryReviews(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	reviews, err := r.queryReviews(ctx, query, movieID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", movieID, err)
	}

	return reviews, nil
}

// FindLatest reads the community feed: reviews of all users, newest first.
func (r *reviewRepository) FindLatest(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	reviews, err := r.queryReviews(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find latest reviews",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find latest reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByUserMinRating(ctx context.Context, userID uuid.UUID, minRating int) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1 AND rating >= $2`

	var count int64
	err := r.db.QueryRow(ctx, query, userID, minRating).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by user and rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("min_rating", minRating),
		)
		return 0, fmt.Errorf("count reviews of user %s with rating >= %d: %w", userID.String(), minRating, err)
	}

	return count, nil
}

func (r *reviewRepository) CountByMovieID(ctx context.Context, movieID int) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE movie_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by movie ID",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return 0, fmt.Errorf("count reviews by movie ID %d: %w", movieID, err)
	}

	return count, nil
}

func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID int) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE movie_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("get movie review stats for %d: %w", movieID, err)
	}

	return avgRating, reviewCount, nil
}

// CountByRating returns how many reviews of the movie gave each rating.
// Ratings nobody gave are absent from the map.
func (r *reviewRepository) CountByRating(ctx context.Context, movieID int) (map[int]int64, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE movie_id = $1
		GROUP BY rating
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to count reviews by rating",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("count reviews by rating for %d: %w", movieID, err)
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("scan rating count row: %w", err)
		}
		counts[rating] = count
	}

	return counts, rows.Err()
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Username,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
