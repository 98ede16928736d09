package response

import (
	"time"

	"court-reservation/internal/usecase/commands"
	"court-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VenueID   uuid.UUID `json:"venue_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VenueRatingResponse struct {
	VenueID       uuid.UUID  `json:"venue_id"`
	AverageRating float64    `json:"average_rating"`
	TotalRatings  int        `json:"total_ratings"`
	Stale         bool       `json:"stale"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type RatingListResponse struct {
	Items      []*RatingResponse `json:"items"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

// RatingMutationResponse reports the written rating together with the venue
// aggregate. Aggregate is omitted when the recompute did not complete.
type RatingMutationResponse struct {
	Rating         *RatingResponse      `json:"rating,omitempty"`
	Aggregate      *VenueRatingResponse `json:"venue_rating,omitempty"`
	AggregateStale bool                 `json:"venue_rating_stale"`
}

func FromRatingView(v *queries.RatingView) *RatingResponse {
	res := &RatingResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromVenueRatingView(v *queries.VenueRatingView) *VenueRatingResponse {
	if v == nil {
		return nil
	}
	res := &VenueRatingResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromRatingViews(views []*queries.RatingView, next *queries.Cursor) *RatingListResponse {
	items := make([]*RatingResponse, len(views))
	for i, v := range views {
		items[i] = FromRatingView(v)
	}
	return &RatingListResponse{Items: items, NextCursor: cursorOf(next)}
}

func FromRatingResult(r *commands.RatingResult) *RatingMutationResponse {
	res := &RatingMutationResponse{
		Aggregate:      FromVenueRatingView(r.Aggregate),
		AggregateStale: r.AggregateStale,
	}
	if r.Rating != nil {
		res.Rating = FromRatingView(r.Rating)
	}
	return res
}
