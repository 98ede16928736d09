package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	VenueID            uuid.UUID
	SportID            uuid.UUID
	Court              string
	Date               pgtype.Date
	StartTime          string
	EndTime            string
	DurationMinutes    int32
	TotalPrice         pgtype.Numeric
	PaymentStatus      string
	Status             string
	CancellationReason pgtype.Text
	CancelledBy        pgtype.UUID
	CancelledAt        pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type Ratings struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	Score     int32
	Comment   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Venues struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	AverageRating   pgtype.Numeric
	TotalRatings    int32
	RatingStale     bool
	RatingUpdatedAt pgtype.Timestamptz
}

type Sports struct {
	ID           uuid.UUID
	Name         string
	BookingCount int64
}
