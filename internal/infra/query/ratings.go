package query

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ratingColumns = []string{"id", "user_id", "venue_id", "score", "comment", "created_at", "updated_at"}

func scanRating(row pgx.Row) (Ratings, error) {
	var r Ratings
	err := row.Scan(&r.ID, &r.UserID, &r.VenueID, &r.Score, &r.Comment, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

type CreateRatingParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	Score     int32
	Comment   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateRating(ctx context.Context, db DBTX, arg CreateRatingParams) (uuid.UUID, error) {
	row, err := queryRow(ctx, db, psql.Insert("ratings").
		Columns(ratingColumns...).
		Values(arg.ID, arg.UserID, arg.VenueID, arg.Score, arg.Comment, arg.CreatedAt, arg.UpdatedAt).
		Suffix("RETURNING id"))
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	err = row.Scan(&id)
	return id, err
}

func (q *Queries) GetRatingByID(ctx context.Context, db DBTX, id uuid.UUID) (Ratings, error) {
	row, err := queryRow(ctx, db, psql.Select(ratingColumns...).From("ratings").Where(sq.Eq{"id": id}))
	if err != nil {
		return Ratings{}, err
	}
	return scanRating(row)
}

type GetRatingByUserAndVenueParams struct {
	UserID  uuid.UUID
	VenueID uuid.UUID
}

func (q *Queries) GetRatingByUserAndVenue(ctx context.Context, db DBTX, arg GetRatingByUserAndVenueParams) (Ratings, error) {
	row, err := queryRow(ctx, db, psql.Select(ratingColumns...).From("ratings").
		Where(sq.Eq{"user_id": arg.UserID, "venue_id": arg.VenueID}))
	if err != nil {
		return Ratings{}, err
	}
	return scanRating(row)
}

type UpdateRatingParams struct {
	ID        uuid.UUID
	Score     int32
	Comment   string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateRating(ctx context.Context, db DBTX, arg UpdateRatingParams) (int64, error) {
	return exec(ctx, db, psql.Update("ratings").
		Set("score", arg.Score).
		Set("comment", arg.Comment).
		Set("updated_at", arg.UpdatedAt).
		Where(sq.Eq{"id": arg.ID}))
}

func (q *Queries) DeleteRating(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	return exec(ctx, db, psql.Delete("ratings").Where(sq.Eq{"id": id}))
}

type VenueRatingTotals struct {
	Count int64
	Sum   int64
}

// SumVenueRatings reads the current rating set; COALESCE keeps an empty set at zero.
func (q *Queries) SumVenueRatings(ctx context.Context, db DBTX, venueID uuid.UUID) (VenueRatingTotals, error) {
	row, err := queryRow(ctx, db, psql.Select("COUNT(*)", "COALESCE(SUM(score), 0)").
		From("ratings").
		Where(sq.Eq{"venue_id": venueID}))
	if err != nil {
		return VenueRatingTotals{}, err
	}
	var t VenueRatingTotals
	err = row.Scan(&t.Count, &t.Sum)
	return t, err
}

type ListVenueRatingsParams struct {
	VenueID      uuid.UUID
	AfterCreated pgtype.Timestamptz
	AfterID      pgtype.UUID
	Limit        int32
}

func (q *Queries) ListVenueRatings(ctx context.Context, db DBTX, arg ListVenueRatingsParams) ([]Ratings, error) {
	b := psql.Select(ratingColumns...).From("ratings").
		Where(sq.Eq{"venue_id": arg.VenueID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(arg.Limit))
	if arg.AfterCreated.Valid && arg.AfterID.Valid {
		b = b.Where(sq.Expr("(created_at, id) < (?, ?)", arg.AfterCreated, arg.AfterID))
	}
	return queryAll(ctx, db, b, scanRating)
}
