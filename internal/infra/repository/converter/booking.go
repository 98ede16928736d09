package converter

import (
	"time"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	return query.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		VenueID:         b.VenueID(),
		SportID:         b.SportID(),
		Court:           b.Court().String(),
		Date:            pgconv.DateToPgtype(b.Date()),
		StartTime:       b.Window().Start().String(),
		EndTime:         b.Window().End().String(),
		DurationMinutes: pgconv.IntToInt32(b.DurationMinutes()),
		TotalPrice:      pgconv.NumericFromFloat64(b.Price().Amount(), 2),
		PaymentStatus:   b.PaymentStatus().String(),
		Status:          b.Status().String(),
		CreatedAt:       timestamptz(b.CreatedAt()),
		UpdatedAt:       timestamptz(b.UpdatedAt()),
	}
}

func BookingToStatusParams(b *booking.Booking, expected booking.Status) query.UpdateBookingStatusParams {
	p := query.UpdateBookingStatusParams{
		ID:             b.ID(),
		ExpectedStatus: expected.String(),
		Status:         b.Status().String(),
		UpdatedAt:      timestamptz(b.UpdatedAt()),
	}
	if c := b.Cancellation(); c != nil {
		p.CancellationReason = pgtype.Text{String: c.Reason, Valid: true}
		p.CancelledBy = pgtype.UUID{Bytes: c.By, Valid: true}
		p.CancelledAt = timestamptz(c.At)
	}
	return p
}

func BookingToDetailsParams(b *booking.Booking) query.UpdateBookingDetailsParams {
	return query.UpdateBookingDetailsParams{
		ID:              b.ID(),
		Court:           b.Court().String(),
		Date:            pgconv.DateToPgtype(b.Date()),
		StartTime:       b.Window().Start().String(),
		EndTime:         b.Window().End().String(),
		DurationMinutes: pgconv.IntToInt32(b.DurationMinutes()),
		UpdatedAt:       timestamptz(b.UpdatedAt()),
	}
}

func BookingFromRow(row query.Bookings) (*booking.Booking, error) {
	price, err := pgconv.Float64FromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	var cancellation *booking.Cancellation
	if row.CancelledAt.Valid {
		cancellation = &booking.Cancellation{At: row.CancelledAt.Time}
		if by := pgconv.UUIDPtrFromPgtype(row.CancelledBy); by != nil {
			cancellation.By = *by
		}
		if reason := pgconv.StringPtrFromPgtype(row.CancellationReason); reason != nil {
			cancellation.Reason = *reason
		}
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            row.ID,
		UserID:        row.UserID,
		VenueID:       row.VenueID,
		SportID:       row.SportID,
		Court:         row.Court,
		Date:          pgconv.DateFromPgtype(row.Date),
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		TotalPrice:    price,
		PaymentStatus: row.PaymentStatus,
		Status:        row.Status,
		Cancellation:  cancellation,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	})
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}
