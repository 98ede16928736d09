package readstore

import (
	"context"
	"time"

	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/pgconv"
	"court-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RatingViewQueries interface {
	ListVenueRatings(ctx context.Context, db query.DBTX, arg query.ListVenueRatingsParams) ([]query.Ratings, error)
	GetVenueByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Venues, error)
}

type RatingReadStore struct {
	queries RatingViewQueries
	db      query.DBTX
}

func NewRatingReadStore(queries RatingViewQueries, db query.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RatingReadStore) ListByVenue(ctx context.Context, venueID uuid.UUID, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*queries.RatingView, error) {
	params := query.ListVenueRatingsParams{
		VenueID: venueID,
		Limit:   limit,
	}
	if afterCreatedAt != nil {
		params.AfterCreated = pgconv.TimeToPgtype(*afterCreatedAt)
		params.AfterID = pgtype.UUID{Bytes: afterID, Valid: true}
	}

	rows, err := r.queries.ListVenueRatings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue ratings", err)
	}

	result := make([]*queries.RatingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RatingView{
			ID:        row.ID,
			UserID:    row.UserID,
			VenueID:   row.VenueID,
			Score:     int(row.Score),
			Comment:   row.Comment,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

func (r *RatingReadStore) GetVenueAggregate(ctx context.Context, venueID uuid.UUID) (*queries.VenueRatingView, error) {
	row, err := r.queries.GetVenueByID(ctx, r.db, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get venue rating", err)
	}
	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode venue rating", err)
	}
	return &queries.VenueRatingView{
		VenueID:       row.ID,
		AverageRating: avg,
		TotalRatings:  int(row.TotalRatings),
		Stale:         row.RatingStale,
		UpdatedAt:     pgconv.TimePtrFromPgtype(row.RatingUpdatedAt),
	}, nil
}
