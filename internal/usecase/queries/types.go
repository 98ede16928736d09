package queries

import (
	"time"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/rating"
	"court-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.NewKind(errs.KindInvalidRequest, "invalid cursor")
	ErrBookingAccess = errs.NewKind(errs.KindForbidden, "booking is not visible to the requesting user")
)

// BookingView is the read model returned for a single booking and in listings.
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	VenueID            uuid.UUID  `json:"venue_id"`
	SportID            uuid.UUID  `json:"sport_id"`
	Court              string     `json:"court"`
	Date               time.Time  `json:"date"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	DurationMinutes    int        `json:"duration_minutes"`
	TotalPrice         float64    `json:"total_price"`
	PaymentStatus      string     `json:"payment_status"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type RatingView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VenueID   uuid.UUID `json:"venue_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VenueRatingView struct {
	VenueID       uuid.UUID  `json:"venue_id"`
	AverageRating float64    `json:"average_rating"`
	TotalRatings  int        `json:"total_ratings"`
	Stale         bool       `json:"stale"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ListParams are the raw paging and filter inputs accepted by listing endpoints.
type ListParams struct {
	Status string
	After  string
	Limit  int
}

func NewBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		VenueID:         b.VenueID(),
		SportID:         b.SportID(),
		Court:           b.Court().String(),
		Date:            b.Date(),
		StartTime:       b.Window().Start().String(),
		EndTime:         b.Window().End().String(),
		DurationMinutes: b.DurationMinutes(),
		TotalPrice:      b.Price().Amount(),
		PaymentStatus:   b.PaymentStatus().String(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if c := b.Cancellation(); c != nil {
		reason, by, at := c.Reason, c.By, c.At
		v.CancellationReason = &reason
		v.CancelledBy = &by
		v.CancelledAt = &at
	}
	return v
}

func NewRatingView(r *rating.Rating) *RatingView {
	return &RatingView{
		ID:        r.ID(),
		UserID:    r.UserID(),
		VenueID:   r.VenueID(),
		Score:     r.Score().Value(),
		Comment:   r.Comment().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func NewVenueRatingView(a rating.Aggregate) *VenueRatingView {
	v := &VenueRatingView{
		VenueID:       a.VenueID,
		AverageRating: a.AverageRating,
		TotalRatings:  a.TotalRatings,
		Stale:         a.Stale,
	}
	if !a.UpdatedAt.IsZero() {
		at := a.UpdatedAt
		v.UpdatedAt = &at
	}
	return v
}
