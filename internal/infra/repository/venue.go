package repository

import (
	"context"
	"time"

	"court-reservation/internal/domain/rating"
	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VenueWriteQueries interface {
	LockVenue(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Venues, error)
	MarkVenueRatingStale(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	SumVenueRatings(ctx context.Context, db query.DBTX, venueID uuid.UUID) (query.VenueRatingTotals, error)
	UpdateVenueRatingAggregate(ctx context.Context, db query.DBTX, arg query.UpdateVenueRatingAggregateParams) (int64, error)
	ListStaleVenueIDs(ctx context.Context, db query.DBTX, limit int32) ([]uuid.UUID, error)
}

// VenueRepository owns the rating aggregate columns on the venue row.
type VenueRepository struct {
	queries VenueWriteQueries
}

func NewVenueRepository(queries VenueWriteQueries) *VenueRepository {
	return &VenueRepository{queries: queries}
}

func (r *VenueRepository) Lock(ctx context.Context, tx query.DBTX, venueID uuid.UUID) error {
	if _, err := r.queries.LockVenue(ctx, tx, venueID); err != nil {
		return infra.WrapRepoErr("failed to lock venue", err)
	}
	return nil
}

func (r *VenueRepository) MarkRatingStale(ctx context.Context, tx query.DBTX, venueID uuid.UUID) error {
	n, err := r.queries.MarkVenueRatingStale(ctx, tx, venueID)
	if err != nil {
		return infra.WrapRepoErr("failed to flag venue rating", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "venue not found")
	}
	return nil
}

// RecomputeRating must run after Lock in the same transaction; it reads the
// current rating set and overwrites the aggregate.
func (r *VenueRepository) RecomputeRating(ctx context.Context, tx query.DBTX, venueID uuid.UUID, now time.Time) (rating.Aggregate, error) {
	totals, err := r.queries.SumVenueRatings(ctx, tx, venueID)
	if err != nil {
		return rating.Aggregate{}, infra.WrapRepoErr("failed to sum venue ratings", err)
	}

	agg := rating.ComputeAggregate(venueID, int(totals.Count), totals.Sum, now)

	n, err := r.queries.UpdateVenueRatingAggregate(ctx, tx, query.UpdateVenueRatingAggregateParams{
		ID:              venueID,
		AverageRating:   pgconv.NumericFromFloat64(agg.AverageRating, 1),
		TotalRatings:    pgconv.IntToInt32(agg.TotalRatings),
		RatingUpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		return rating.Aggregate{}, infra.WrapRepoErr("failed to store venue rating", err)
	}
	if n == 0 {
		return rating.Aggregate{}, infra.NewRepoErr(infra.KindNotFound, "venue not found")
	}
	return agg, nil
}

func (r *VenueRepository) ListStale(ctx context.Context, tx query.DBTX, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListStaleVenueIDs(ctx, tx, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale venues", err)
	}
	return ids, nil
}
