package response

import (
	"math"
	"time"

	"movie-rater/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	MovieID   int       `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewFeedItem is a review merged with the movie it belongs to
type ReviewFeedItem struct {
	ReviewResponse
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

type ReviewFeedResponse struct {
	Results []ReviewFeedItem `json:"results"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// MovieReviewStats summarizes the community ratings of one movie
type MovieReviewStats struct {
	MovieID       int            `json:"movie_id"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int64          `json:"review_count"`
	Distribution  []RatingBucket `json:"distribution"`
}

type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// NewMovieReviewStats builds the stats with one bucket per rating, highest
// first. Average and percentages are rounded to one decimal.
func NewMovieReviewStats(movieID int, avg float64, total int64, counts map[int]int64) MovieReviewStats {
	buckets := make([]RatingBucket, 0, entity.MaxRating-entity.MinRating+1)
	for rating := entity.MaxRating; rating >= entity.MinRating; rating-- {
		count := counts[rating]
		var pct float64
		if total > 0 {
			pct = roundTenth(float64(count) * 100 / float64(total))
		}
		buckets = append(buckets, RatingBucket{Rating: rating, Count: count, Percentage: pct})
	}

	return MovieReviewStats{
		MovieID:       movieID,
		AverageRating: roundTenth(avg),
		ReviewCount:   total,
		Distribution:  buckets,
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Helper converters
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		MovieID:   review.MovieID,
		UserID:    review.UserID.String(),
		Username:  review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func ReviewToFeedItem(review *entity.Review, meta MovieMeta) ReviewFeedItem {
	return ReviewFeedItem{
		ReviewResponse: ReviewToResponse(review),
		Title:          meta.Title,
		PosterPath:     meta.PosterPath,
	}
}
