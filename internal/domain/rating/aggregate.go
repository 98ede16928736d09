package rating

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Aggregate is the derived venue rating. It is always recomputed from the full
// rating set and never patched incrementally.
type Aggregate struct {
	VenueID       uuid.UUID
	AverageRating float64
	TotalRatings  int
	Stale         bool
	UpdatedAt     time.Time
}

// ComputeAggregate rounds the mean to one decimal; an empty set averages 0.
func ComputeAggregate(venueID uuid.UUID, count int, sum int64, now time.Time) Aggregate {
	agg := Aggregate{VenueID: venueID, TotalRatings: count, UpdatedAt: now}
	if count > 0 {
		agg.AverageRating = math.Round(float64(sum)/float64(count)*10) / 10
	}
	return agg
}
