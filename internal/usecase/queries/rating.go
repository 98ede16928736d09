package queries

import (
	"context"
	"time"

	"court-reservation/internal/infra"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingReadStore interface {
	ListByVenue(ctx context.Context, venueID uuid.UUID, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*RatingView, error)
	GetVenueAggregate(ctx context.Context, venueID uuid.UUID) (*VenueRatingView, error)
}

type RatingQueries interface {
	ListVenueRatings(ctx context.Context, venueID uuid.UUID, params ListParams) ([]*RatingView, *Cursor, error)
	GetVenueAggregate(ctx context.Context, venueID uuid.UUID) (*VenueRatingView, error)
}

type ratingQueriesImpl struct {
	store   RatingReadStore
	catalog shared.Catalog
}

func NewRatingQueries(store RatingReadStore, catalog shared.Catalog) RatingQueries {
	return &ratingQueriesImpl{store: store, catalog: catalog}
}

func (q *ratingQueriesImpl) ListVenueRatings(ctx context.Context, venueID uuid.UUID, params ListParams) ([]*RatingView, *Cursor, error) {
	if _, err := q.catalog.GetVenue(ctx, venueID); err != nil {
		return nil, nil, err
	}

	after, err := decodeKeyset(params.After)
	if err != nil {
		return nil, nil, err
	}
	var afterCreatedAt *time.Time
	var afterID uuid.UUID
	if after != nil {
		afterCreatedAt, afterID = &after.CreatedAt, after.ID
	}

	limit := ValidateLimit(params.Limit)
	rows, err := q.store.ListByVenue(ctx, venueID, afterCreatedAt, afterID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(v *RatingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

// GetVenueAggregate returns the cached aggregate; Stale reports a pending recompute.
func (q *ratingQueriesImpl) GetVenueAggregate(ctx context.Context, venueID uuid.UUID) (*VenueRatingView, error) {
	v, err := q.store.GetVenueAggregate(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(shared.ErrVenueNotFound, "venue %s", venueID)
		}
		return nil, err
	}
	return v, nil
}
