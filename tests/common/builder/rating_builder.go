//go:build unit || e2e

package builder

import (
	"time"

	domrating "court-reservation/internal/domain/rating"
	reqdto "court-reservation/internal/handler/dto/request"
	"court-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	Score     int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRatingBuilder() *RatingBuilder {
	now := time.Now()
	return &RatingBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		VenueID:   uuid.New(),
		Score:     5,
		Comment:   "Great courts!",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *RatingBuilder) With(mutate func(*RatingBuilder)) *RatingBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RatingBuilder) BuildDomain() (*domrating.Rating, error) {
	return domrating.NewRating(r.UserID, r.VenueID, r.Score, r.Comment, r.CreatedAt)
}

func (r *RatingBuilder) BuildReconstructed() *domrating.Rating {
	return domrating.ReconstructRating(r.ID, r.UserID, r.VenueID, r.Score, r.Comment, r.CreatedAt, r.UpdatedAt)
}

func (r *RatingBuilder) BuildCreateRequestDTO() reqdto.CreateRatingRequest {
	return reqdto.CreateRatingRequest{
		Score:   r.Score,
		Comment: r.Comment,
	}
}

func (r *RatingBuilder) BuildUpdateRequestDTO() reqdto.UpdateRatingRequest {
	score := r.Score
	comment := r.Comment
	return reqdto.UpdateRatingRequest{
		Score:   &score,
		Comment: &comment,
	}
}

func (r *RatingBuilder) BuildView() *queries.RatingView {
	return &queries.RatingView{
		ID:        r.ID,
		UserID:    r.UserID,
		VenueID:   r.VenueID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *RatingBuilder) WithID(id uuid.UUID) *RatingBuilder {
	r.ID = id
	return r
}

func (r *RatingBuilder) WithUserID(userID uuid.UUID) *RatingBuilder {
	r.UserID = userID
	return r
}

func (r *RatingBuilder) WithVenueID(venueID uuid.UUID) *RatingBuilder {
	r.VenueID = venueID
	return r
}

func (r *RatingBuilder) WithScore(score int) *RatingBuilder {
	r.Score = score
	return r
}

func (r *RatingBuilder) WithComment(comment string) *RatingBuilder {
	r.Comment = comment
	return r
}

func (r *RatingBuilder) AsPoorRating() *RatingBuilder {
	r.Score = 1
	r.Comment = "Nets were torn"
	return r
}
