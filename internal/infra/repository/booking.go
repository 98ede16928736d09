package repository

import (
	"context"
	"time"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/infra/repository/converter"
	"court-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (uuid.UUID, error)
	GetBookingForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	ListActiveBookingsOnCourtDay(ctx context.Context, db query.DBTX, arg query.ListActiveBookingsOnCourtDayParams) ([]query.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
	UpdateBookingDetails(ctx context.Context, db query.DBTX, arg query.UpdateBookingDetailsParams) (int64, error)
	HasEligibleBooking(ctx context.Context, db query.DBTX, arg query.HasEligibleBookingParams) (bool, error)
	CompletePastBookings(ctx context.Context, db query.DBTX, arg query.CompletePastBookingsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx query.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

// ListActiveOnCourtDay returns the other non-cancelled bookings sharing b's court and day.
func (r *BookingRepository) ListActiveOnCourtDay(ctx context.Context, tx query.DBTX, b *booking.Booking) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveBookingsOnCourtDay(ctx, tx, query.ListActiveBookingsOnCourtDayParams{
		VenueID:   b.VenueID(),
		Court:     b.Court().String(),
		Date:      pgconv.DateToPgtype(b.Date()),
		ExcludeID: pgtype.UUID{Bytes: b.ID(), Valid: true},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings on court", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		other, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err)
		}
		result = append(result, other)
	}
	return result, nil
}

// UpdateStatus writes status and cancellation fields only if the row still holds expected.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx query.DBTX, b *booking.Booking, expected booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, converter.BookingToStatusParams(b, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindStaleState, "booking status changed concurrently")
	}
	return nil
}

func (r *BookingRepository) UpdateDetails(ctx context.Context, tx query.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingDetails(ctx, tx, converter.BookingToDetailsParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking details", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindStaleState, "booking is no longer confirmed")
	}
	return nil
}

// HasEligibleBooking reports whether the user holds a confirmed or completed booking
// at the venue dated strictly before the given day.
func (r *BookingRepository) HasEligibleBooking(ctx context.Context, tx query.DBTX, userID, venueID uuid.UUID, before time.Time) (bool, error) {
	ok, err := r.queries.HasEligibleBooking(ctx, tx, query.HasEligibleBookingParams{
		UserID:  userID,
		VenueID: venueID,
		Before:  pgconv.DateToPgtype(before),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check rating eligibility", err)
	}
	return ok, nil
}

func (r *BookingRepository) CompletePast(ctx context.Context, tx query.DBTX, before, now time.Time) (int64, error) {
	n, err := r.queries.CompletePastBookings(ctx, tx, query.CompletePastBookingsParams{
		Before:    pgconv.DateToPgtype(before),
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete past bookings", err)
	}
	return n, nil
}
