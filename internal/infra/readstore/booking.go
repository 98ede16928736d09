package readstore

import (
	"context"

	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/pgconv"
	"court-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	ListBookings(ctx context.Context, db query.DBTX, arg query.ListBookingsParams) ([]query.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return rowToBookingView(row)
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	params := query.ListBookingsParams{
		UserID:        pgconv.UUIDPtrToPgtype(filter.UserID),
		VenueIDs:      filter.VenueIDs,
		RestrictVenue: filter.RestrictVenue,
		Limit:         filter.Limit,
	}
	if filter.Status != "" {
		params.Status = pgtype.Text{String: filter.Status, Valid: true}
	}
	if filter.AfterCreatedAt != nil {
		params.AfterCreated = pgconv.TimeToPgtype(*filter.AfterCreatedAt)
		params.AfterID = pgtype.UUID{Bytes: filter.AfterID, Valid: true}
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := rowToBookingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func rowToBookingView(row query.Bookings) (*queries.BookingView, error) {
	price, err := pgconv.Float64FromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking price", err)
	}
	return &queries.BookingView{
		ID:                 row.ID,
		UserID:             row.UserID,
		VenueID:            row.VenueID,
		SportID:            row.SportID,
		Court:              row.Court,
		Date:               pgconv.DateFromPgtype(row.Date),
		StartTime:          row.StartTime,
		EndTime:            row.EndTime,
		DurationMinutes:    int(row.DurationMinutes),
		TotalPrice:         price,
		PaymentStatus:      row.PaymentStatus,
		Status:             row.Status,
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledBy:        pgconv.UUIDPtrFromPgtype(row.CancelledBy),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
