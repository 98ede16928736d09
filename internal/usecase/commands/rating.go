package commands

import (
	"context"
	"log/slog"

	"court-reservation/internal/domain/rating"
	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/infra"
	"court-reservation/internal/pkg/clock"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/pkg/metrics"
	"court-reservation/internal/usecase/queries"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	opRatingCreate = "create"
	opRatingUpdate = "update"
	opRatingDelete = "delete"
)

// RatingResult carries the written rating and the venue aggregate after recompute.
// When the recompute could not run, Aggregate is nil and AggregateStale is set;
// the rating write itself has been committed.
type RatingResult struct {
	Rating         *queries.RatingView
	Aggregate      *queries.VenueRatingView
	AggregateStale bool
}

type RatingCommands interface {
	AddRating(ctx context.Context, userID, venueID uuid.UUID, score int, comment string) (*RatingResult, error)
	UpdateRating(ctx context.Context, ratingID, userID uuid.UUID, score *int, comment *string) (*RatingResult, error)
	DeleteRating(ctx context.Context, ratingID uuid.UUID, actor shared.Actor) (*RatingResult, error)
	RepairVenueAggregate(ctx context.Context, venueID uuid.UUID) (*queries.VenueRatingView, error)
	RepairStaleAggregates(ctx context.Context) (int, error)
}

type ratingCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.Catalog
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewRatingCommands(
	uow shared.UnitOfWork,
	catalog shared.Catalog,
	clock clock.Clock,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) RatingCommands {
	return &ratingCommandsImpl{
		uow:     uow,
		catalog: catalog,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *ratingCommandsImpl) AddRating(ctx context.Context, userID, venueID uuid.UUID, score int, comment string) (*RatingResult, error) {
	if _, err := c.catalog.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	r, err := rating.NewRating(userID, venueID, score, comment, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := lockVenue(ctx, tx, venueID); err != nil {
			return err
		}

		eligible, err := tx.Bookings().HasEligibleBooking(ctx, tx.DB(), userID, venueID, timeslot.DayOf(now))
		if err != nil {
			return err
		}
		if !eligible {
			return errs.Wrapf(rating.ErrNoEligibleBooking, "user %s venue %s", userID, venueID)
		}

		exists, err := tx.Ratings().ExistsForUserVenue(ctx, tx.DB(), userID, venueID)
		if err != nil {
			return err
		}
		if exists {
			return rating.ErrAlreadyRated
		}

		if err := tx.Ratings().Create(ctx, tx.DB(), r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrap(rating.ErrAlreadyRated, "rating was created concurrently")
			}
			return err
		}
		return tx.Venues().MarkRatingStale(ctx, tx.DB(), venueID)
	})
	if err != nil {
		return nil, err
	}

	c.metrics.RatingMutation(opRatingCreate)
	return c.finish(ctx, queries.NewRatingView(r), venueID), nil
}

// UpdateRating reports a rating owned by someone else as not found.
func (c *ratingCommandsImpl) UpdateRating(ctx context.Context, ratingID, userID uuid.UUID, score *int, comment *string) (*RatingResult, error) {
	var updated *rating.Rating
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadRating(ctx, tx, ratingID, func(r *rating.Rating) bool { return r.IsOwnedBy(userID) })
		if err != nil {
			return err
		}
		if err := lockVenue(ctx, tx, r.VenueID()); err != nil {
			return err
		}
		if err := r.Update(score, comment, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Ratings().Update(ctx, tx.DB(), r); err != nil {
			return translateRatingErr(err, ratingID)
		}
		updated = r
		return tx.Venues().MarkRatingStale(ctx, tx.DB(), r.VenueID())
	})
	if err != nil {
		return nil, err
	}

	c.metrics.RatingMutation(opRatingUpdate)
	return c.finish(ctx, queries.NewRatingView(updated), updated.VenueID()), nil
}

// DeleteRating lets the author or an admin remove a rating.
func (c *ratingCommandsImpl) DeleteRating(ctx context.Context, ratingID uuid.UUID, actor shared.Actor) (*RatingResult, error) {
	var venueID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadRating(ctx, tx, ratingID, func(r *rating.Rating) bool {
			return actor.IsAdmin() || r.IsOwnedBy(actor.ID)
		})
		if err != nil {
			return err
		}
		venueID = r.VenueID()
		if err := lockVenue(ctx, tx, venueID); err != nil {
			return err
		}
		if err := tx.Ratings().Delete(ctx, tx.DB(), ratingID); err != nil {
			return translateRatingErr(err, ratingID)
		}
		return tx.Venues().MarkRatingStale(ctx, tx.DB(), venueID)
	})
	if err != nil {
		return nil, err
	}

	c.metrics.RatingMutation(opRatingDelete)
	if actor.IsAdmin() {
		c.logger.Info("rating removed by admin", "rating_id", ratingID, "admin_id", actor.ID)
	}
	return c.finish(ctx, nil, venueID), nil
}

func (c *ratingCommandsImpl) loadRating(ctx context.Context, tx shared.Tx, id uuid.UUID, visible func(*rating.Rating) bool) (*rating.Rating, error) {
	r, err := tx.Ratings().FindByID(ctx, tx.DB(), id)
	if err != nil {
		return nil, translateRatingErr(err, id)
	}
	if !visible(r) {
		return nil, errs.Wrapf(rating.ErrRatingNotFound, "rating %s", id)
	}
	return r, nil
}

// finish runs the recompute phase. Its failure never fails the mutation.
func (c *ratingCommandsImpl) finish(ctx context.Context, view *queries.RatingView, venueID uuid.UUID) *RatingResult {
	result := &RatingResult{Rating: view}
	agg, err := c.recompute(ctx, venueID)
	if err != nil {
		c.metrics.RecomputeFailed()
		c.logger.Error("venue rating recompute failed; venue left flagged stale",
			"venue_id", venueID,
			"error", err.Error())
		result.AggregateStale = true
		return result
	}
	result.Aggregate = queries.NewVenueRatingView(agg)
	return result
}

func (c *ratingCommandsImpl) recompute(ctx context.Context, venueID uuid.UUID) (rating.Aggregate, error) {
	var agg rating.Aggregate
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := lockVenue(ctx, tx, venueID); err != nil {
			return err
		}
		var err error
		agg, err = tx.Venues().RecomputeRating(ctx, tx.DB(), venueID, c.clock.Now())
		return err
	})
	return agg, err
}

func lockVenue(ctx context.Context, tx shared.Tx, venueID uuid.UUID) error {
	if err := tx.Venues().Lock(ctx, tx.DB(), venueID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(shared.ErrVenueNotFound, "venue %s", venueID)
		}
		return err
	}
	return nil
}

func translateRatingErr(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrapf(rating.ErrRatingNotFound, "rating %s", id)
	}
	return err
}
