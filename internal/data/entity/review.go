package entity

import (
	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user's rating of one TMDB movie
type Review struct {
	BaseSimple
	MovieID  int       `db:"movie_id"` // TMDB id
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Rating   int       `db:"rating"` // 1-5
	Comment  string    `db:"comment"`
}

// Liked reports whether the rating reaches threshold
func (r *Review) Liked(threshold int) bool {
	return r.Rating >= threshold
}
