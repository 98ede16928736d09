package catalog

import (
	"context"
	"time"

	"court-reservation/internal/infra/redis"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// CachedCatalog fronts another Catalog with a read-through redis cache for
// venue and sport lookups. Ownership listings and counters always hit next.
type CachedCatalog struct {
	next  shared.Catalog
	cache *redis.Cache
	ttl   time.Duration
}

func NewCachedCatalog(next shared.Catalog, cache *redis.Cache, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, cache: cache, ttl: ttl}
}

func (c *CachedCatalog) GetVenue(ctx context.Context, venueID uuid.UUID) (*shared.VenueSnapshot, error) {
	v, err := redis.GetOrSetJSON(ctx, c.cache, redis.KeyVenue(venueID), c.ttl,
		func(ctx context.Context) (shared.VenueSnapshot, error) {
			v, err := c.next.GetVenue(ctx, venueID)
			if err != nil {
				return shared.VenueSnapshot{}, err
			}
			return *v, nil
		})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *CachedCatalog) IsVenueOwnedBy(ctx context.Context, venueID, userID uuid.UUID) (bool, error) {
	return isOwnedBy(ctx, c, venueID, userID)
}

func (c *CachedCatalog) GetSport(ctx context.Context, sportID uuid.UUID) (*shared.SportSnapshot, error) {
	s, err := redis.GetOrSetJSON(ctx, c.cache, redis.KeySport(sportID), c.ttl,
		func(ctx context.Context) (shared.SportSnapshot, error) {
			s, err := c.next.GetSport(ctx, sportID)
			if err != nil {
				return shared.SportSnapshot{}, err
			}
			return *s, nil
		})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *CachedCatalog) IncrementSportBookingCount(ctx context.Context, sportID uuid.UUID) error {
	return c.next.IncrementSportBookingCount(ctx, sportID)
}

func (c *CachedCatalog) ListVenueIDsOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	return c.next.ListVenueIDsOwnedBy(ctx, ownerID)
}
