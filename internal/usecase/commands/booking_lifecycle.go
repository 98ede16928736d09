package commands

import (
	"context"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/usecase/queries"
	"court-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	opCancelByPlayer = "cancel_player"
	opCancelByOwner  = "cancel_owner"
	opAdminSetStatus = "admin_status"
	opCompletePast   = "complete_past"
)

var ErrNotVenueOwner = errs.NewKind(errs.KindForbidden, "venue is not owned by the requesting user")

type txRunner func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error

// transition loads the booking under a row lock, applies mutate and persists the
// new status guarded by the status it was loaded with.
func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	op string,
	bookingID uuid.UUID,
	run txRunner,
	mutate func(ctx context.Context, tx shared.Tx, b *booking.Booking) error,
) (*queries.BookingView, error) {
	var result *booking.Booking
	err := run(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		expected := b.Status()
		if err := mutate(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, expected); err != nil {
			return c.translateWriteErr(err)
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.BookingTransition(op, result.Status().String())
	c.logger.Info("booking status changed",
		"booking_id", result.ID(),
		"operation", op,
		"status", result.Status().String())
	return queries.NewBookingView(result), nil
}

func (c *bookingCommandsImpl) CancelByPlayer(ctx context.Context, bookingID, userID uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, opCancelByPlayer, bookingID, c.uow.Within, func(_ context.Context, _ shared.Tx, b *booking.Booking) error {
		return b.CancelByPlayer(userID, c.clock.Now())
	})
}

func (c *bookingCommandsImpl) CancelByOwner(ctx context.Context, bookingID, ownerID uuid.UUID, reason string) (*queries.BookingView, error) {
	return c.transition(ctx, opCancelByOwner, bookingID, c.uow.Within, func(ctx context.Context, _ shared.Tx, b *booking.Booking) error {
		owned, err := c.catalog.IsVenueOwnedBy(ctx, b.VenueID(), ownerID)
		if err != nil {
			return err
		}
		if !owned {
			return errs.Wrapf(ErrNotVenueOwner, "venue %s", b.VenueID())
		}
		return b.CancelByOwner(ownerID, reason, c.clock.Now())
	})
}

// AdminSetStatus overrides the status from any state. A booking that starts
// occupying its slot again (leaving cancelled, or returning to confirmed) is
// re-checked against live bookings in the same serializable transaction.
func (c *bookingCommandsImpl) AdminSetStatus(ctx context.Context, bookingID, adminID uuid.UUID, status string) (*queries.BookingView, error) {
	next, err := booking.ParseStatus(status)
	if err != nil {
		return nil, errs.Wrapf(err, "status %q", status)
	}
	return c.transition(ctx, opAdminSetStatus, bookingID, c.withinSlotTx, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		reclaims := b.ReclaimsSlot(next)
		if err := b.SetStatus(next, adminID, c.clock.Now()); err != nil {
			return err
		}
		if reclaims {
			return c.ensureSlotFree(ctx, tx, b)
		}
		return nil
	})
}

// CompletePastBookings moves confirmed bookings dated before today to completed.
func (c *bookingCommandsImpl) CompletePastBookings(ctx context.Context) (int64, error) {
	now := c.clock.Now()
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Bookings().CompletePast(ctx, tx.DB(), timeslot.DayOf(now), now)
		return err
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		c.metrics.BookingTransitionN(opCompletePast, booking.StatusCompleted.String(), n)
	}
	return n, nil
}
