package converter

import (
	"court-reservation/internal/domain/rating"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/pgconv"
)

func RatingToCreateParams(r *rating.Rating) query.CreateRatingParams {
	return query.CreateRatingParams{
		ID:        r.ID(),
		UserID:    r.UserID(),
		VenueID:   r.VenueID(),
		Score:     pgconv.IntToInt32(r.Score().Value()),
		Comment:   r.Comment().String(),
		CreatedAt: timestamptz(r.CreatedAt()),
		UpdatedAt: timestamptz(r.UpdatedAt()),
	}
}

func RatingToUpdateParams(r *rating.Rating) query.UpdateRatingParams {
	return query.UpdateRatingParams{
		ID:        r.ID(),
		Score:     pgconv.IntToInt32(r.Score().Value()),
		Comment:   r.Comment().String(),
		UpdatedAt: timestamptz(r.UpdatedAt()),
	}
}

func RatingFromRow(row query.Ratings) *rating.Rating {
	return rating.ReconstructRating(row.ID, row.UserID, row.VenueID, int(row.Score), row.Comment, row.CreatedAt.Time, row.UpdatedAt.Time)
}
