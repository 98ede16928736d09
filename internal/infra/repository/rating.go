package repository

import (
	"context"

	"court-reservation/internal/domain/rating"
	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type RatingWriteQueries interface {
	CreateRating(ctx context.Context, db query.DBTX, arg query.CreateRatingParams) (uuid.UUID, error)
	GetRatingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Ratings, error)
	GetRatingByUserAndVenue(ctx context.Context, db query.DBTX, arg query.GetRatingByUserAndVenueParams) (query.Ratings, error)
	UpdateRating(ctx context.Context, db query.DBTX, arg query.UpdateRatingParams) (int64, error)
	DeleteRating(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type RatingRepository struct {
	queries RatingWriteQueries
}

func NewRatingRepository(queries RatingWriteQueries) *RatingRepository {
	return &RatingRepository{queries: queries}
}

func (r *RatingRepository) Create(ctx context.Context, tx query.DBTX, rt *rating.Rating) error {
	if _, err := r.queries.CreateRating(ctx, tx, converter.RatingToCreateParams(rt)); err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}

func (r *RatingRepository) FindByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*rating.Rating, error) {
	row, err := r.queries.GetRatingByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating", err)
	}
	return converter.RatingFromRow(row), nil
}

func (r *RatingRepository) ExistsForUserVenue(ctx context.Context, tx query.DBTX, userID, venueID uuid.UUID) (bool, error) {
	_, err := r.queries.GetRatingByUserAndVenue(ctx, tx, query.GetRatingByUserAndVenueParams{UserID: userID, VenueID: venueID})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to look up rating", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return false, nil
		}
		return false, wrapped
	}
	return true, nil
}

func (r *RatingRepository) Update(ctx context.Context, tx query.DBTX, rt *rating.Rating) error {
	n, err := r.queries.UpdateRating(ctx, tx, converter.RatingToUpdateParams(rt))
	if err != nil {
		return infra.WrapRepoErr("failed to update rating", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "rating not found")
	}
	return nil
}

func (r *RatingRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteRating(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rating", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "rating not found")
	}
	return nil
}
