package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-rater/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var reviewCols = []string{"id", "movie_id", "user_id", "username", "rating", "comment", "created_at"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, ReviewRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewReviewRepository(mock, zap.NewNop())
}

func TestReviewRepository_Create(t *testing.T) {
	mock, repo := newMockRepo(t)
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    550,
		UserID:     uuid.New(),
		Username:   "ann",
		Rating:     5,
		Comment:    "great",
	}

	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(review.ID, 550, review.UserID, "ann", 5, "great", review.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), review))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_Duplicate(t *testing.T) {
	mock, repo := newMockRepo(t)
	review := &entity.Review{BaseSimple: entity.BaseSimple{ID: uuid.New()}, MovieID: 1, UserID: uuid.New(), Rating: 3}

	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_user_id_movie_id_key"})

	err := repo.Create(context.Background(), review)
	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindLatest(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()
	u1, u2 := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM reviews\s+ORDER BY created_at DESC, id DESC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 20).
		WillReturnRows(pgxmock.NewRows(reviewCols).
			AddRow(uuid.NewString(), 10, u1.String(), "ann", 4, "good", now).
			AddRow(uuid.NewString(), 11, u2.String(), "bob", 2, "", now.Add(-time.Minute)))

	reviews, err := repo.FindLatest(context.Background(), 20, 20)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, 10, reviews[0].MovieID)
	assert.Equal(t, u1, reviews[0].UserID)
	assert.Equal(t, "good", reviews[0].Comment)
	assert.Equal(t, "bob", reviews[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindLatest_EmptyIsNotNil(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM reviews`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(reviewCols))

	reviews, err := repo.FindLatest(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewRepository_FindAllByUserID_OldestFirst(t *testing.T) {
	mock, repo := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(`WHERE user_id = \$1\s+ORDER BY created_at ASC`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(reviewCols).
			AddRow(uuid.NewString(), 1, userID.String(), "ann", 5, "", time.Now()))

	reviews, err := repo.FindAllByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 1, reviews[0].MovieID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByUserAndMovie_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(`WHERE user_id = \$1 AND movie_id = \$2`).
		WithArgs(userID, 42).
		WillReturnRows(pgxmock.NewRows(reviewCols))

	review, err := repo.FindByUserAndMovie(context.Background(), userID, 42)
	require.NoError(t, err)
	assert.Nil(t, review)
}

func TestReviewRepository_CountByUserMinRating(t *testing.T) {
	mock, repo := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews WHERE user_id = \$1 AND rating >= \$2`).
		WithArgs(userID, 3).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountByUserMinRating(context.Background(), userID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CountByUserMinRating_Error(t *testing.T) {
	mock, repo := newMockRepo(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(pgxmock.AnyArg(), 3).
		WillReturnError(boom)

	_, err := repo.CountByUserMinRating(context.Background(), uuid.New(), 3)
	assert.ErrorIs(t, err, boom)
}

func TestReviewRepository_DeleteByUserAndMovie(t *testing.T) {
	mock, repo := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM reviews WHERE user_id = \$1 AND movie_id = \$2`).
		WithArgs(userID, 7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM reviews`).
		WithArgs(userID, 8).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteByUserAndMovie(context.Background(), userID, 7))
	assert.ErrorIs(t, repo.DeleteByUserAndMovie(context.Background(), userID, 8), ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Update(t *testing.T) {
	mock, repo := newMockRepo(t)
	review := &entity.Review{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Rating: 2, Comment: "changed my mind"}

	mock.ExpectExec(`UPDATE reviews\s+SET rating = \$2, comment = \$3\s+WHERE id = \$1`).
		WithArgs(review.ID, 2, "changed my mind").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE reviews`).
		WithArgs(review.ID, 2, "changed my mind").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.Update(context.Background(), review))
	assert.ErrorIs(t, repo.Update(context.Background(), review), ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetMovieReviewStats(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT\s+COALESCE\(AVG\(rating\), 0\)::float8 AS avg_rating,\s+COUNT\(\*\) AS review_count\s+FROM reviews\s+WHERE movie_id = \$1`).
		WithArgs(550).
		WillReturnRows(pgxmock.NewRows([]string{"avg_rating", "review_count"}).AddRow(4.25, int64(4)))

	avg, count, err := repo.GetMovieReviewStats(context.Background(), 550)
	require.NoError(t, err)
	assert.InDelta(t, 4.25, avg, 1e-9)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetMovieReviewStats_Error(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`AVG\(rating\)`).
		WithArgs(550).
		WillReturnError(errors.New("conn closed"))

	_, _, err := repo.GetMovieReviewStats(context.Background(), 550)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CountByRating(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT rating, COUNT\(\*\)\s+FROM reviews\s+WHERE movie_id = \$1\s+GROUP BY rating`).
		WithArgs(550).
		WillReturnRows(pgxmock.NewRows([]string{"rating", "count"}).
			AddRow(5, int64(3)).
			AddRow(2, int64(1)))

	counts, err := repo.CountByRating(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{5: 3, 2: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
