//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/infra/repository"
	"court-reservation/internal/pkg/pgconv"
	repositorymock "court-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVenueRepository_RecomputeRating(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		totals       query.VenueRatingTotals
		expectAvg    float64
		expectTotal  int
		updateResult int64
		updateErr    error
		expectKind   infra.RepositoryErrorKind
	}{
		{name: "three ratings", totals: query.VenueRatingTotals{Count: 3, Sum: 12}, expectAvg: 4.0, expectTotal: 3, updateResult: 1},
		{name: "two ratings", totals: query.VenueRatingTotals{Count: 2, Sum: 9}, expectAvg: 4.5, expectTotal: 2, updateResult: 1},
		{name: "no ratings", totals: query.VenueRatingTotals{}, expectAvg: 0, expectTotal: 0, updateResult: 1},
		{name: "venue vanished", totals: query.VenueRatingTotals{Count: 1, Sum: 5}, updateResult: 0, expectKind: infra.KindNotFound},
		{name: "write fails", totals: query.VenueRatingTotals{Count: 1, Sum: 5}, updateErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockVenueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			venueID := uuid.New()

			mockQueries.EXPECT().SumVenueRatings(ctx, mockDB, venueID).Return(tc.totals, nil)
			mockQueries.EXPECT().UpdateVenueRatingAggregate(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ query.DBTX, arg query.UpdateVenueRatingAggregateParams) (int64, error) {
					avg, err := pgconv.Float64FromNumeric(arg.AverageRating)
					require.NoError(t, err)
					if tc.expectKind == "" {
						assert.InDelta(t, tc.expectAvg, avg, 1e-9)
						assert.Equal(t, int32(tc.expectTotal), arg.TotalRatings)
					}
					assert.Equal(t, now, arg.RatingUpdatedAt.Time)
					return tc.updateResult, tc.updateErr
				})

			agg, err := repository.NewVenueRepository(mockQueries).RecomputeRating(ctx, mockDB, venueID, now)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expectAvg, agg.AverageRating, 1e-9)
			assert.Equal(t, tc.expectTotal, agg.TotalRatings)
			assert.False(t, agg.Stale)
		})
	}
}

func TestVenueRepository_MarkRatingStale(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockVenueWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	venueID := uuid.New()

	mockQueries.EXPECT().MarkVenueRatingStale(ctx, mockDB, venueID).Return(int64(0), nil)

	err := repository.NewVenueRepository(mockQueries).MarkRatingStale(ctx, mockDB, venueID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
