package query

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var venueColumns = []string{"id", "owner_id", "name", "average_rating", "total_ratings", "rating_stale", "rating_updated_at"}

func scanVenue(row pgx.Row) (Venues, error) {
	var v Venues
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.AverageRating, &v.TotalRatings, &v.RatingStale, &v.RatingUpdatedAt)
	return v, err
}

func (q *Queries) GetVenueByID(ctx context.Context, db DBTX, id uuid.UUID) (Venues, error) {
	row, err := queryRow(ctx, db, psql.Select(venueColumns...).From("venues").Where(sq.Eq{"id": id}))
	if err != nil {
		return Venues{}, err
	}
	return scanVenue(row)
}

// LockVenue serializes rating writes and aggregate recomputes per venue.
func (q *Queries) LockVenue(ctx context.Context, db DBTX, id uuid.UUID) (Venues, error) {
	row, err := queryRow(ctx, db, psql.Select(venueColumns...).From("venues").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	if err != nil {
		return Venues{}, err
	}
	return scanVenue(row)
}

func (q *Queries) ListVenueIDsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]uuid.UUID, error) {
	return queryAll(ctx, db, psql.Select("id").From("venues").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id"),
		func(row pgx.Row) (uuid.UUID, error) {
			var id uuid.UUID
			err := row.Scan(&id)
			return id, err
		})
}

func (q *Queries) MarkVenueRatingStale(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	return exec(ctx, db, psql.Update("venues").
		Set("rating_stale", true).
		Where(sq.Eq{"id": id}))
}

type UpdateVenueRatingAggregateParams struct {
	ID              uuid.UUID
	AverageRating   pgtype.Numeric
	TotalRatings    int32
	RatingUpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateVenueRatingAggregate(ctx context.Context, db DBTX, arg UpdateVenueRatingAggregateParams) (int64, error) {
	return exec(ctx, db, psql.Update("venues").
		Set("average_rating", arg.AverageRating).
		Set("total_ratings", arg.TotalRatings).
		Set("rating_stale", false).
		Set("rating_updated_at", arg.RatingUpdatedAt).
		Where(sq.Eq{"id": arg.ID}))
}

func (q *Queries) ListStaleVenueIDs(ctx context.Context, db DBTX, limit int32) ([]uuid.UUID, error) {
	return queryAll(ctx, db, psql.Select("id").From("venues").
		Where(sq.Eq{"rating_stale": true}).
		OrderBy("rating_updated_at NULLS FIRST", "id").
		Limit(uint64(limit)),
		func(row pgx.Row) (uuid.UUID, error) {
			var id uuid.UUID
			err := row.Scan(&id)
			return id, err
		})
}

func (q *Queries) GetSportByID(ctx context.Context, db DBTX, id uuid.UUID) (Sports, error) {
	row, err := queryRow(ctx, db, psql.Select("id", "name", "booking_count").From("sports").Where(sq.Eq{"id": id}))
	if err != nil {
		return Sports{}, err
	}
	var s Sports
	err = row.Scan(&s.ID, &s.Name, &s.BookingCount)
	return s, err
}

func (q *Queries) IncrementSportBookingCount(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	return exec(ctx, db, psql.Update("sports").
		Set("booking_count", sq.Expr("booking_count + 1")).
		Where(sq.Eq{"id": id}))
}
