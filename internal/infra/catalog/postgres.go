package catalog

import (
	"context"

	"court-reservation/internal/infra"
	"court-reservation/internal/infra/query"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetVenueByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Venues, error)
	GetSportByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Sports, error)
	ListVenueIDsByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID) ([]uuid.UUID, error)
	IncrementSportBookingCount(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

// PostgresCatalog reads venues and sports straight from the database.
type PostgresCatalog struct {
	queries CatalogQueries
	db      query.DBTX
}

func NewPostgresCatalog(queries CatalogQueries, db query.DBTX) *PostgresCatalog {
	return &PostgresCatalog{queries: queries, db: db}
}

func (c *PostgresCatalog) GetVenue(ctx context.Context, venueID uuid.UUID) (*shared.VenueSnapshot, error) {
	row, err := c.queries.GetVenueByID(ctx, c.db, venueID)
	if err != nil {
		err = infra.WrapRepoErr("failed to get venue", err)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(shared.ErrVenueNotFound, "venue %s", venueID)
		}
		return nil, err
	}
	return &shared.VenueSnapshot{ID: row.ID, OwnerID: row.OwnerID, Name: row.Name}, nil
}

func (c *PostgresCatalog) IsVenueOwnedBy(ctx context.Context, venueID, userID uuid.UUID) (bool, error) {
	return isOwnedBy(ctx, c, venueID, userID)
}

func (c *PostgresCatalog) GetSport(ctx context.Context, sportID uuid.UUID) (*shared.SportSnapshot, error) {
	row, err := c.queries.GetSportByID(ctx, c.db, sportID)
	if err != nil {
		err = infra.WrapRepoErr("failed to get sport", err)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(shared.ErrSportNotFound, "sport %s", sportID)
		}
		return nil, err
	}
	return &shared.SportSnapshot{ID: row.ID, Name: row.Name}, nil
}

func (c *PostgresCatalog) IncrementSportBookingCount(ctx context.Context, sportID uuid.UUID) error {
	n, err := c.queries.IncrementSportBookingCount(ctx, c.db, sportID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment sport booking count", err)
	}
	if n == 0 {
		return errs.Wrapf(shared.ErrSportNotFound, "sport %s", sportID)
	}
	return nil
}

func (c *PostgresCatalog) ListVenueIDsOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := c.queries.ListVenueIDsByOwner(ctx, c.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned venues", err)
	}
	return ids, nil
}

// isOwnedBy treats a missing venue as not owned.
func isOwnedBy(ctx context.Context, c shared.Catalog, venueID, userID uuid.UUID) (bool, error) {
	v, err := c.GetVenue(ctx, venueID)
	if err != nil {
		if errs.Is(err, shared.ErrVenueNotFound) {
			return false, nil
		}
		return false, err
	}
	return v.OwnerID == userID, nil
}
