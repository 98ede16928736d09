package shared

import (
	"context"
	"time"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/rating"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxContention marks a transaction that still failed on serialization or
// deadlock errors after its retry budget ran out.
var ErrTxContention = errs.New("transaction contended by concurrent writers")

type UnitOfWork interface {
	// Within: read-committed write transaction with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable write transaction, retried on serialization failures
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Ratings() RatingRepository
	Venues() VenueRepository
	DB() query.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx query.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*booking.Booking, error)
	ListActiveOnCourtDay(ctx context.Context, tx query.DBTX, b *booking.Booking) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx query.DBTX, b *booking.Booking, expected booking.Status) error
	UpdateDetails(ctx context.Context, tx query.DBTX, b *booking.Booking) error
	HasEligibleBooking(ctx context.Context, tx query.DBTX, userID, venueID uuid.UUID, before time.Time) (bool, error)
	CompletePast(ctx context.Context, tx query.DBTX, before, now time.Time) (int64, error)
}

type RatingRepository interface {
	Create(ctx context.Context, tx query.DBTX, r *rating.Rating) error
	FindByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*rating.Rating, error)
	ExistsForUserVenue(ctx context.Context, tx query.DBTX, userID, venueID uuid.UUID) (bool, error)
	Update(ctx context.Context, tx query.DBTX, r *rating.Rating) error
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
}

type VenueRepository interface {
	Lock(ctx context.Context, tx query.DBTX, venueID uuid.UUID) error
	MarkRatingStale(ctx context.Context, tx query.DBTX, venueID uuid.UUID) error
	RecomputeRating(ctx context.Context, tx query.DBTX, venueID uuid.UUID, now time.Time) (rating.Aggregate, error)
	ListStale(ctx context.Context, tx query.DBTX, limit int) ([]uuid.UUID, error)
}
