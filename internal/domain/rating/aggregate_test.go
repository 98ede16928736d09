//go:build unit

package rating_test

import (
	"testing"
	"time"

	"court-reservation/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeAggregate(t *testing.T) {
	venueID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		scores   []int
		expected float64
	}{
		{name: "three ratings", scores: []int{5, 3, 4}, expected: 4.0},
		{name: "after deleting the 3", scores: []int{5, 4}, expected: 4.5},
		{name: "empty set", scores: nil, expected: 0},
		{name: "rounds up", scores: []int{4, 4, 5, 5, 5, 5}, expected: 4.7},
		{name: "rounds down", scores: []int{1, 1, 2}, expected: 1.3},
		{name: "single", scores: []int{2}, expected: 2.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sum int64
			for _, s := range tc.scores {
				sum += int64(s)
			}

			agg := rating.ComputeAggregate(venueID, len(tc.scores), sum, now)

			assert.Equal(t, venueID, agg.VenueID)
			assert.InDelta(t, tc.expected, agg.AverageRating, 1e-9)
			assert.Equal(t, len(tc.scores), agg.TotalRatings)
			assert.False(t, agg.Stale)
			assert.Equal(t, now, agg.UpdatedAt)
		})
	}
}
