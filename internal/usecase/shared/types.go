package shared

import (
	"context"

	"court-reservation/internal/domain/user"
	"court-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound = errs.NewKind(errs.KindNotFoundVenue, "venue not found")
	ErrSportNotFound = errs.NewKind(errs.KindNotFoundSport, "sport not found")
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

type VenueSnapshot struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
}

type SportSnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Catalog is the read-only view of venues and sports the engine depends on.
type Catalog interface {
	GetVenue(ctx context.Context, venueID uuid.UUID) (*VenueSnapshot, error)
	IsVenueOwnedBy(ctx context.Context, venueID, userID uuid.UUID) (bool, error)
	GetSport(ctx context.Context, sportID uuid.UUID) (*SportSnapshot, error)
	// IncrementSportBookingCount is best effort; callers log and ignore failures.
	IncrementSportBookingCount(ctx context.Context, sportID uuid.UUID) error
	ListVenueIDsOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}
