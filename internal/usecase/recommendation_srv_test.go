package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"movie-rater/internal/data/entity"
	"movie-rater/internal/dto/request"
	"movie-rater/internal/dto/response"
	"movie-rater/internal/usecase"
	"movie-rater/pkg/tmdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	action    = tmdb.Genre{ID: 28, Name: "Action"}
	adventure = tmdb.Genre{ID: 12, Name: "Adventure"}
	drama     = tmdb.Genre{ID: 18, Name: "Drama"}
	comedy    = tmdb.Genre{ID: 35, Name: "Comedy"}
)

func rating(userID uuid.UUID, movieID, stars int) *entity.Review {
	return &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		MovieID:    movieID,
		UserID:     userID,
		Rating:     stars,
	}
}

func TestRecommendations_NoLikedMovies(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(0), nil).Times(2)
	f.reviews.EXPECT().
		FindAllByUserID(gomock.Any(), userID).
		Return([]*entity.Review{rating(userID, 1, 2), rating(userID, 2, 1)}, nil).
		Times(1)

	ctx := context.Background()
	rec, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, response.RecommendationResponse{
		Results:   []response.MovieSummary{},
		TopGenres: []string{},
		Message:   "no high-rated movies yet",
	}, *rec)

	// served from cache under the same liked count
	again, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestRecommendations_TopGenresAndExclusions(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()

	reviews := []*entity.Review{
		rating(userID, 100, 5), // Action, Adventure
		rating(userID, 200, 4), // Drama, Action
		rating(userID, 300, 1), // disliked, still excluded from results
		rating(userID, 400, 3), // Adventure, Comedy
	}

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(3), nil)
	f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).Return(reviews, nil)

	f.api.EXPECT().Movie(gomock.Any(), 100).Return(movie(100, "a", action, adventure), nil)
	f.api.EXPECT().Movie(gomock.Any(), 200).Return(movie(200, "b", drama, action), nil)
	f.api.EXPECT().Movie(gomock.Any(), 400).Return(movie(400, "c", adventure, comedy), nil)

	// Action 2, Adventure 2, Drama 1, Comedy 1: Drama wins the tie by first encounter
	candidates := results(100, 1, 300, 2, 3, 400, 4, 5, 6, 200, 7, 8, 9, 10, 11, 12)
	f.api.EXPECT().
		Discover(gomock.Any(), tmdb.DiscoverParams{
			GenreIDs: []int{28, 12, 18},
			SortBy:   "popularity.desc",
			Page:     1,
		}).
		Return(&tmdb.Page{Page: 1, Results: candidates}, nil)

	rec, err := f.svc.Recommendation.GetRecommendations(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Adventure", "Drama"}, rec.TopGenres)
	assert.Empty(t, rec.Message)

	var ids []int
	for _, m := range rec.Results {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids)

	rated := map[int]bool{100: true, 200: true, 300: true, 400: true}
	for _, id := range ids {
		assert.False(t, rated[id], "rated movie %d recommended", id)
	}

	// liked movies fetched for the tally also land in the metadata cache
	meta, ok := f.caches.MovieMeta.Get(200)
	require.True(t, ok)
	assert.Equal(t, "b", meta.Title)
}

func TestRecommendations_FewerThanThreeGenres(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(1), nil)
	f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).Return([]*entity.Review{rating(userID, 100, 4)}, nil)
	f.api.EXPECT().Movie(gomock.Any(), 100).Return(movie(100, "a", comedy, drama), nil)
	f.api.EXPECT().
		Discover(gomock.Any(), tmdb.DiscoverParams{GenreIDs: []int{35, 18}, SortBy: "popularity.desc", Page: 1}).
		Return(&tmdb.Page{Results: results(100, 7)}, nil)

	rec, err := f.svc.Recommendation.GetRecommendations(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Comedy", "Drama"}, rec.TopGenres)
	require.Len(t, rec.Results, 1)
	assert.Equal(t, 7, rec.Results[0].ID)
}

func TestRecommendations_LikedCountChangeForcesRecompute(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()

	gomock.InOrder(
		f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(1), nil),
		f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(1), nil),
		f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(2), nil),
	)

	gomock.InOrder(
		f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).
			Return([]*entity.Review{rating(userID, 100, 4)}, nil),
		f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).
			Return([]*entity.Review{rating(userID, 100, 4), rating(userID, 200, 5)}, nil),
	)

	f.api.EXPECT().Movie(gomock.Any(), 100).Return(movie(100, "a", action), nil).Times(2)
	f.api.EXPECT().Movie(gomock.Any(), 200).Return(movie(200, "b", action), nil).Times(1)
	f.api.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(&tmdb.Page{Results: results(1, 2)}, nil).Times(2)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
		require.NoError(t, err)
	}
}

func TestRecommendations_ExpiresAfterTTL(t *testing.T) {
	f := newFixture(t, 40*time.Millisecond)
	userID := uuid.New()

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(0), nil).Times(2)
	f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).Return(nil, nil).Times(2)

	ctx := context.Background()
	_, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)

	_, err = f.svc.Recommendation.GetRecommendations(ctx, userID)
	require.NoError(t, err)
}

func TestRecommendations_UpstreamFailureIsNotPartial(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(2), nil).Times(2)
	f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).
		Return([]*entity.Review{rating(userID, 100, 4), rating(userID, 200, 4)}, nil).
		Times(2)

	f.api.EXPECT().Movie(gomock.Any(), 100).Return(movie(100, "a", action), nil).AnyTimes()
	gomock.InOrder(
		f.api.EXPECT().Movie(gomock.Any(), 200).Return(nil, &tmdb.APIError{Endpoint: "movie", Status: http.StatusNotFound}),
		f.api.EXPECT().Movie(gomock.Any(), 200).Return(movie(200, "b", drama), nil),
	)
	f.api.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(&tmdb.Page{Results: results(5)}, nil).Times(1)

	ctx := context.Background()
	rec, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
	var apiErr *tmdb.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Nil(t, rec)

	// the failure was not cached
	rec, err = f.svc.Recommendation.GetRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Drama"}, rec.TopGenres)
}

func TestRecommendations_StoreFailure(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(0), errors.New("dial tcp: connection refused"))

	_, err := f.svc.Recommendation.GetRecommendations(context.Background(), userID)
	assert.ErrorIs(t, err, usecase.ErrStore)
}

func TestRecommendations_ConcurrentMissesComputeOnce(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()
	release := make(chan struct{})

	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(1), nil).AnyTimes()
	f.reviews.EXPECT().
		FindAllByUserID(gomock.Any(), userID).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) ([]*entity.Review, error) {
			<-release
			return []*entity.Review{rating(userID, 100, 5)}, nil
		}).
		Times(1)
	f.api.EXPECT().Movie(gomock.Any(), 100).Return(movie(100, "a", action), nil).Times(1)
	f.api.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(&tmdb.Page{Results: results(1)}, nil).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := f.svc.Recommendation.GetRecommendations(context.Background(), userID)
			assert.NoError(t, err)
			if assert.NotNil(t, rec) {
				assert.Equal(t, []string{"Action"}, rec.TopGenres)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestRecommendations_ReviewDuringComputeIsNotServedLater(t *testing.T) {
	f := newFixture(t, time.Minute)
	userID := uuid.New()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	// a low rating leaves the liked count unchanged
	f.reviews.EXPECT().CountByUserMinRating(gomock.Any(), userID, 3).Return(int64(1), nil).AnyTimes()
	gomock.InOrder(
		f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) ([]*entity.Review, error) {
				close(started)
				<-release
				return []*entity.Review{rating(userID, 100, 5)}, nil
			}),
		f.reviews.EXPECT().FindAllByUserID(gomock.Any(), userID).
			Return([]*entity.Review{rating(userID, 100, 5), rating(userID, 200, 1)}, nil),
	)
	f.api.EXPECT().Movie(gomock.Any(), 100).Return(movie(100, "a", action), nil).Times(2)
	f.api.EXPECT().Movie(gomock.Any(), 200).Return(movie(200, "b", action), nil).Times(1)
	f.api.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(&tmdb.Page{Results: results(200, 300)}, nil).Times(2)
	f.reviews.EXPECT().FindByUserAndMovie(gomock.Any(), userID, 200).Return(nil, nil)
	f.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	first := make(chan struct{})
	go func() {
		defer close(first)
		_, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
		assert.NoError(t, err)
	}()

	<-started
	_, err := f.svc.Review.CreateReview(ctx, userID, "ann", 200, &request.CreateReviewRequest{Rating: 1})
	require.NoError(t, err)

	close(release)
	<-first

	rec, err := f.svc.Recommendation.GetRecommendations(ctx, userID)
	require.NoError(t, err)

	var ids []int
	for _, m := range rec.Results {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{300}, ids, "a movie rated after the compute started must not be recommended")
}

func TestGenreTally_Top(t *testing.T) {
	tally := usecase.NewGenreTally()
	tally.Add([]tmdb.Genre{comedy, drama})
	tally.Add([]tmdb.Genre{action})
	tally.Add([]tmdb.Genre{action, adventure})
	tally.Add([]tmdb.Genre{drama})

	assert.Equal(t, 4, tally.Len())

	top := tally.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, usecase.GenreCount{ID: 18, Name: "Drama", Count: 2}, top[0])
	assert.Equal(t, usecase.GenreCount{ID: 28, Name: "Action", Count: 2}, top[1])
	assert.Equal(t, usecase.GenreCount{ID: 35, Name: "Comedy", Count: 1}, top[2])

	assert.Len(t, tally.Top(10), 4)
	assert.Empty(t, usecase.NewGenreTally().Top(3))
}
