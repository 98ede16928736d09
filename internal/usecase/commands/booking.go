package commands

import (
	"context"
	"log/slog"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/infra"
	"court-reservation/internal/pkg/clock"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/pkg/metrics"
	"court-reservation/internal/usecase/queries"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	conflictSourceCheck      = "check"
	conflictSourceConstraint = "constraint"
	conflictSourceContention = "contention"
)

type BookingCommands interface {
	RequestBooking(ctx context.Context, params booking.NewBookingParams) (*queries.BookingView, error)
	UpdateDetails(ctx context.Context, bookingID, userID uuid.UUID, patch booking.DetailsPatch) (*queries.BookingView, error)
	CancelByPlayer(ctx context.Context, bookingID, userID uuid.UUID) (*queries.BookingView, error)
	CancelByOwner(ctx context.Context, bookingID, ownerID uuid.UUID, reason string) (*queries.BookingView, error)
	AdminSetStatus(ctx context.Context, bookingID, adminID uuid.UUID, status string) (*queries.BookingView, error)
	CompletePastBookings(ctx context.Context) (int64, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.Catalog
	services *booking.Services
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.Catalog,
	clock clock.Clock,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		services: &booking.Services{Clock: clock},
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// RequestBooking admits a booking when the venue and sport exist, the request is
// valid and no live booking overlaps the slot.
func (c *bookingCommandsImpl) RequestBooking(ctx context.Context, params booking.NewBookingParams) (*queries.BookingView, error) {
	if _, err := c.catalog.GetVenue(ctx, params.VenueID); err != nil {
		return nil, err
	}
	if _, err := c.catalog.GetSport(ctx, params.SportID); err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(c.services, params)
	if err != nil {
		return nil, err
	}

	err = c.withinSlotTx(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.ensureSlotFree(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return c.translateWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.BookingCreated()
	c.logger.Info("booking created",
		"booking_id", b.ID(),
		"venue_id", b.VenueID(),
		"court", b.Court().String(),
		"date", b.Date().Format("2006-01-02"),
		"window", b.Window().String())

	if err := c.catalog.IncrementSportBookingCount(ctx, b.SportID()); err != nil {
		c.metrics.SportCounterFailed()
		c.logger.Warn("failed to increment sport booking count",
			"sport_id", b.SportID(),
			"error", err.Error())
	}

	return queries.NewBookingView(b), nil
}

// UpdateDetails applies an allow-listed patch and re-checks the slot when it moved.
func (c *bookingCommandsImpl) UpdateDetails(ctx context.Context, bookingID, userID uuid.UUID, patch booking.DetailsPatch) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := c.withinSlotTx(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		changed, err := b.UpdateDetails(userID, patch, c.clock.Now())
		if err != nil {
			return err
		}
		if !changed {
			updated = b
			return nil
		}

		if err := c.ensureSlotFree(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateDetails(ctx, tx.DB(), b); err != nil {
			return c.translateWriteErr(err)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(updated), nil
}

// withinSlotTx runs fn serializably. A transaction that keeps losing to
// concurrent writers on the same court reports the slot as taken.
func (c *bookingCommandsImpl) withinSlotTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := c.uow.WithinSerializable(ctx, fn)
	if err != nil && errs.Is(err, shared.ErrTxContention) {
		c.metrics.BookingConflict(conflictSourceContention)
		return errs.Wrap(booking.ErrSlotTaken, "slot contended by concurrent writers")
	}
	return err
}

func (c *bookingCommandsImpl) ensureSlotFree(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	others, err := tx.Bookings().ListActiveOnCourtDay(ctx, tx.DB(), b)
	if err != nil {
		return err
	}
	for _, other := range others {
		if b.ConflictsWith(other) {
			c.metrics.BookingConflict(conflictSourceCheck)
			return other.Conflict()
		}
	}
	return nil
}

func (c *bookingCommandsImpl) lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(booking.ErrBookingNotFound, "booking %s", id)
		}
		return nil, err
	}
	return b, nil
}

// translateWriteErr maps storage guard violations onto booking errors.
func (c *bookingCommandsImpl) translateWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		c.metrics.BookingConflict(conflictSourceConstraint)
		return errs.Wrap(booking.ErrSlotTaken, "slot was taken concurrently")
	case infra.IsKind(err, infra.KindStaleState):
		return errs.Wrap(booking.ErrInvalidState, "booking changed concurrently")
	case infra.IsKind(err, infra.KindNotFound):
		return booking.ErrBookingNotFound
	default:
		return err
	}
}
