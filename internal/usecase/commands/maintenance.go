package commands

import (
	"context"

	"court-reservation/internal/usecase/queries"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const staleRepairBatch = 100

// RepairVenueAggregate re-runs the recompute phase for one venue.
func (c *ratingCommandsImpl) RepairVenueAggregate(ctx context.Context, venueID uuid.UUID) (*queries.VenueRatingView, error) {
	agg, err := c.recompute(ctx, venueID)
	if err != nil {
		return nil, err
	}
	c.logger.Info("venue rating repaired", "venue_id", venueID, "total_ratings", agg.TotalRatings)
	return queries.NewVenueRatingView(agg), nil
}

// RepairStaleAggregates recomputes every venue flagged stale, one batch per call.
// Per-venue failures are logged and the venue stays flagged for the next run.
func (c *ratingCommandsImpl) RepairStaleAggregates(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Venues().ListStale(ctx, tx.DB(), staleRepairBatch)
		return err
	})
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return repaired, ctx.Err()
		}
		if _, err := c.recompute(ctx, id); err != nil {
			c.metrics.RecomputeFailed()
			c.logger.Warn("stale venue rating repair failed", "venue_id", id, "error", err.Error())
			continue
		}
		repaired++
	}
	if repaired > 0 {
		c.logger.Info("stale venue ratings repaired", "count", repaired, "flagged", len(ids))
	}
	return repaired, nil
}
