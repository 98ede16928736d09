package queries

import (
	"context"
	"time"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/infra"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingListFilter narrows a booking listing. A nil UserID and RestrictVenue=false list everything.
type BookingListFilter struct {
	UserID         *uuid.UUID
	VenueIDs       []uuid.UUID
	RestrictVenue  bool
	Status         string
	AfterCreatedAt *time.Time
	AfterID        uuid.UUID
	Limit          int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, userID uuid.UUID, params ListParams) ([]*BookingView, *Cursor, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, params ListParams) ([]*BookingView, *Cursor, error)
	ListAll(ctx context.Context, params ListParams) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	catalog shared.Catalog
}

func NewBookingQueries(store BookingReadStore, catalog shared.Catalog) BookingQueries {
	return &bookingQueriesImpl{store: store, catalog: catalog}
}

// GetBooking is visible to the booker, the owner of the booked venue and admins.
func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(booking.ErrBookingNotFound, "booking %s", id)
		}
		return nil, err
	}

	if actor.IsAdmin() || v.UserID == actor.ID {
		return v, nil
	}
	owned, err := q.catalog.IsVenueOwnedBy(ctx, v.VenueID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrBookingAccess
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, params ListParams) ([]*BookingView, *Cursor, error) {
	return q.list(ctx, BookingListFilter{UserID: &userID}, params)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, params ListParams) ([]*BookingView, *Cursor, error) {
	venueIDs, err := q.catalog.ListVenueIDsOwnedBy(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if len(venueIDs) == 0 {
		return []*BookingView{}, nil, nil
	}
	return q.list(ctx, BookingListFilter{VenueIDs: venueIDs, RestrictVenue: true}, params)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, params ListParams) ([]*BookingView, *Cursor, error) {
	return q.list(ctx, BookingListFilter{}, params)
}

func (q *bookingQueriesImpl) list(ctx context.Context, filter BookingListFilter, params ListParams) ([]*BookingView, *Cursor, error) {
	if params.Status != "" {
		status, err := booking.ParseStatus(params.Status)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "status filter %q", params.Status)
		}
		filter.Status = status.String()
	}

	after, err := decodeKeyset(params.After)
	if err != nil {
		return nil, nil, err
	}
	if after != nil {
		filter.AfterCreatedAt = &after.CreatedAt
		filter.AfterID = after.ID
	}

	limit := ValidateLimit(params.Limit)
	filter.Limit = int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}
