package query

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	statusCancelled = "cancelled"
	statusConfirmed = "confirmed"
	statusCompleted = "completed"
)

var bookingColumns = []string{
	"id", "user_id", "venue_id", "sport_id", "court", "date", "start_time", "end_time",
	"duration_minutes", "total_price", "payment_status", "status",
	"cancellation_reason", "cancelled_by", "cancelled_at", "created_at", "updated_at",
}

func scanBooking(row pgx.Row) (Bookings, error) {
	var b Bookings
	err := row.Scan(
		&b.ID, &b.UserID, &b.VenueID, &b.SportID, &b.Court, &b.Date, &b.StartTime, &b.EndTime,
		&b.DurationMinutes, &b.TotalPrice, &b.PaymentStatus, &b.Status,
		&b.CancellationReason, &b.CancelledBy, &b.CancelledAt, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

type CreateBookingParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	VenueID         uuid.UUID
	SportID         uuid.UUID
	Court           string
	Date            pgtype.Date
	StartTime       string
	EndTime         string
	DurationMinutes int32
	TotalPrice      pgtype.Numeric
	PaymentStatus   string
	Status          string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row, err := queryRow(ctx, db, psql.Insert("bookings").
		Columns("id", "user_id", "venue_id", "sport_id", "court", "date", "start_time", "end_time",
			"duration_minutes", "total_price", "payment_status", "status", "created_at", "updated_at").
		Values(arg.ID, arg.UserID, arg.VenueID, arg.SportID, arg.Court, arg.Date, arg.StartTime, arg.EndTime,
			arg.DurationMinutes, arg.TotalPrice, arg.PaymentStatus, arg.Status, arg.CreatedAt, arg.UpdatedAt).
		Suffix("RETURNING id"))
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	err = row.Scan(&id)
	return id, err
}

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row, err := queryRow(ctx, db, psql.Select(bookingColumns...).From("bookings").Where(sq.Eq{"id": id}))
	if err != nil {
		return Bookings{}, err
	}
	return scanBooking(row)
}

// GetBookingForUpdate locks the row until the surrounding transaction ends.
func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row, err := queryRow(ctx, db, psql.Select(bookingColumns...).From("bookings").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	if err != nil {
		return Bookings{}, err
	}
	return scanBooking(row)
}

type ListActiveBookingsOnCourtDayParams struct {
	VenueID   uuid.UUID
	Court     string
	Date      pgtype.Date
	ExcludeID pgtype.UUID
}

// ListActiveBookingsOnCourtDay returns every non-cancelled booking that shares the
// court and calendar day. Overlap is decided by the caller.
func (q *Queries) ListActiveBookingsOnCourtDay(ctx context.Context, db DBTX, arg ListActiveBookingsOnCourtDayParams) ([]Bookings, error) {
	b := psql.Select(bookingColumns...).From("bookings").
		Where(sq.Eq{"venue_id": arg.VenueID, "court": arg.Court, "date": arg.Date}).
		Where(sq.NotEq{"status": statusCancelled}).
		OrderBy("start_time")
	if arg.ExcludeID.Valid {
		b = b.Where(sq.NotEq{"id": arg.ExcludeID})
	}
	return queryAll(ctx, db, b, scanBooking)
}

type UpdateBookingStatusParams struct {
	ID                 uuid.UUID
	ExpectedStatus     string
	Status             string
	CancellationReason pgtype.Text
	CancelledBy        pgtype.UUID
	CancelledAt        pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// UpdateBookingStatus only matches while the row still holds ExpectedStatus.
func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	return exec(ctx, db, psql.Update("bookings").
		Set("status", arg.Status).
		Set("cancellation_reason", arg.CancellationReason).
		Set("cancelled_by", arg.CancelledBy).
		Set("cancelled_at", arg.CancelledAt).
		Set("updated_at", arg.UpdatedAt).
		Where(sq.Eq{"id": arg.ID, "status": arg.ExpectedStatus}))
}

type UpdateBookingDetailsParams struct {
	ID              uuid.UUID
	Court           string
	Date            pgtype.Date
	StartTime       string
	EndTime         string
	DurationMinutes int32
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateBookingDetails(ctx context.Context, db DBTX, arg UpdateBookingDetailsParams) (int64, error) {
	return exec(ctx, db, psql.Update("bookings").
		Set("court", arg.Court).
		Set("date", arg.Date).
		Set("start_time", arg.StartTime).
		Set("end_time", arg.EndTime).
		Set("duration_minutes", arg.DurationMinutes).
		Set("updated_at", arg.UpdatedAt).
		Where(sq.Eq{"id": arg.ID, "status": statusConfirmed}))
}

type HasEligibleBookingParams struct {
	UserID  uuid.UUID
	VenueID uuid.UUID
	Before  pgtype.Date
}

func (q *Queries) HasEligibleBooking(ctx context.Context, db DBTX, arg HasEligibleBookingParams) (bool, error) {
	sub := psql.Select("1").From("bookings").
		Where(sq.Eq{"user_id": arg.UserID, "venue_id": arg.VenueID, "status": []string{statusConfirmed, statusCompleted}}).
		Where(sq.Lt{"date": arg.Before})
	row, err := queryRow(ctx, db, psql.Select().Column(sq.Expr("EXISTS(?)", sub)))
	if err != nil {
		return false, err
	}
	var ok bool
	err = row.Scan(&ok)
	return ok, err
}

type CompletePastBookingsParams struct {
	Before    pgtype.Date
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CompletePastBookings(ctx context.Context, db DBTX, arg CompletePastBookingsParams) (int64, error) {
	return exec(ctx, db, psql.Update("bookings").
		Set("status", statusCompleted).
		Set("updated_at", arg.UpdatedAt).
		Where(sq.Eq{"status": statusConfirmed}).
		Where(sq.Lt{"date": arg.Before}))
}

type ListBookingsParams struct {
	UserID        pgtype.UUID
	VenueIDs      []uuid.UUID
	RestrictVenue bool
	Status        pgtype.Text
	AfterCreated  pgtype.Timestamptz
	AfterID       pgtype.UUID
	Limit         int32
}

// ListBookings pages by (created_at, id) descending. RestrictVenue with an empty
// VenueIDs yields no rows.
func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Bookings, error) {
	b := psql.Select(bookingColumns...).From("bookings").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(arg.Limit))
	if arg.UserID.Valid {
		b = b.Where(sq.Eq{"user_id": arg.UserID})
	}
	if arg.RestrictVenue {
		if len(arg.VenueIDs) == 0 {
			return nil, nil
		}
		b = b.Where(sq.Eq{"venue_id": arg.VenueIDs})
	}
	if arg.Status.Valid {
		b = b.Where(sq.Eq{"status": arg.Status.String})
	}
	if arg.AfterCreated.Valid && arg.AfterID.Valid {
		b = b.Where(sq.Expr("(created_at, id) < (?, ?)", arg.AfterCreated, arg.AfterID))
	}
	return queryAll(ctx, db, b, scanBooking)
}
