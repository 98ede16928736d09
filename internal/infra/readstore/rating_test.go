//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/infra/readstore"
	"court-reservation/internal/pkg/pgconv"
	readstoremock "court-reservation/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingReadStore_ListByVenue(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()
	now := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRatingViewQueries(ctrl)
	store := readstore.NewRatingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListVenueRatings(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ query.DBTX, arg query.ListVenueRatingsParams) ([]query.Ratings, error) {
			assert.Equal(t, venueID, arg.VenueID)
			assert.Equal(t, int32(6), arg.Limit)
			assert.False(t, arg.AfterCreated.Valid)
			return []query.Ratings{{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				VenueID:   venueID,
				Score:     4,
				Comment:   "solid surface",
				CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
				UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
			}}, nil
		})

	rows, err := store.ListByVenue(ctx, venueID, nil, uuid.Nil, 6)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Score)
	assert.Equal(t, "solid surface", rows[0].Comment)
}

func TestRatingReadStore_GetVenueAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: decodes the cached aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRatingViewQueries(ctrl)
		store := readstore.NewRatingReadStore(mockQueries, &mockDBTX{})
		venueID := uuid.New()

		mockQueries.EXPECT().GetVenueByID(ctx, gomock.Any(), venueID).Return(query.Venues{
			ID:            venueID,
			AverageRating: pgconv.NumericFromFloat64(4.3, 1),
			TotalRatings:  7,
			RatingStale:   true,
		}, nil)

		v, err := store.GetVenueAggregate(ctx, venueID)
		require.NoError(t, err)
		assert.InDelta(t, 4.3, v.AverageRating, 0.0001)
		assert.Equal(t, 7, v.TotalRatings)
		assert.True(t, v.Stale)
		assert.Nil(t, v.UpdatedAt)
	})

	t.Run("error: venue missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRatingViewQueries(ctrl)
		store := readstore.NewRatingReadStore(mockQueries, &mockDBTX{})
		venueID := uuid.New()

		mockQueries.EXPECT().GetVenueByID(ctx, gomock.Any(), venueID).Return(query.Venues{}, pgx.ErrNoRows)

		_, err := store.GetVenueAggregate(ctx, venueID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
