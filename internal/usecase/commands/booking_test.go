//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	dombooking "court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/infra"
	"court-reservation/internal/pkg/clock"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/pkg/metrics"
	"court-reservation/internal/usecase/commands"
	"court-reservation/internal/usecase/shared"
	"court-reservation/tests/common/builder"
	"court-reservation/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	h        *txHarness
	clock    *clock.MockClock
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.clock = clock.NewMockClock(builder.DefaultNow)
	s.commands = commands.NewBookingCommands(s.h.uow, s.h.catalog, s.clock, metrics.NewNop(), testutil.DiscardLogger())
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectCatalogFound(b *builder.BookingBuilder) {
	s.h.catalog.EXPECT().GetVenue(gomock.Any(), b.VenueID).
		Return(&shared.VenueSnapshot{ID: b.VenueID, OwnerID: uuid.New(), Name: "Center Court"}, nil)
	s.h.catalog.EXPECT().GetSport(gomock.Any(), b.SportID).
		Return(&shared.SportSnapshot{ID: b.SportID, Name: "tennis"}, nil)
}

// ================================================================================
// RequestBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestRequestBooking() {
	ctx := context.Background()

	s.Run("success: persists a confirmed pending booking and bumps the sport counter", func() {
		b := builder.NewBookingBuilder()
		s.expectCatalogFound(b)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, created *dombooking.Booking) error {
				s.Equal(dombooking.StatusConfirmed, created.Status())
				s.Equal(dombooking.PaymentPending, created.PaymentStatus())
				s.Equal(60, created.DurationMinutes())
				return nil
			})
		s.h.catalog.EXPECT().IncrementSportBookingCount(gomock.Any(), b.SportID).Return(nil)

		view, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
		s.Equal("pending", view.PaymentStatus)
		s.Equal(b.StartTime, view.StartTime)
		s.Equal(b.EndTime, view.EndTime)
	})

	s.Run("success: sport counter failure is swallowed", func() {
		b := builder.NewBookingBuilder()
		s.expectCatalogFound(b)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.catalog.EXPECT().IncrementSportBookingCount(gomock.Any(), b.SportID).Return(errors.New("connection reset"))

		view, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.Require().NoError(err)
		s.NotNil(view)
	})

	s.Run("success: back-to-back booking does not conflict", func() {
		b := builder.NewBookingBuilder()
		existing := builder.NewBookingBuilder().
			WithVenueID(b.VenueID).
			WithWindow("09:00", "10:00").
			BuildReconstructed()
		s.expectCatalogFound(b)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*dombooking.Booking{existing}, nil)
		s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.catalog.EXPECT().IncrementSportBookingCount(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.NoError(err)
	})

	s.Run("error: overlapping booking is rejected with the blocking slot", func() {
		b := builder.NewBookingBuilder()
		existing := builder.NewBookingBuilder().
			WithVenueID(b.VenueID).
			WithWindow("10:30", "11:30").
			BuildReconstructed()
		s.expectCatalogFound(b)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*dombooking.Booking{existing}, nil)

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.Require().Error(err)
		s.ErrorIs(err, dombooking.ErrSlotTaken)

		var conflict *dombooking.ConflictError
		s.Require().True(errors.As(err, &conflict))
		s.Equal("C1", conflict.Court)
		s.Equal("10:30-11:30", conflict.Window.String())
	})

	s.Run("error: unique index race maps to slot taken", func() {
		b := builder.NewBookingBuilder()
		s.expectCatalogFound(b)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindDuplicateKey, "duplicate"))

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.ErrorIs(err, dombooking.ErrSlotTaken)
		s.Equal(errs.KindConflictSlotTaken, errs.KindOf(err))
	})

	s.Run("error: exhausted serialization retries report the slot as taken", func() {
		b := builder.NewBookingBuilder()
		s.expectCatalogFound(b)
		s.h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("could not serialize access"), shared.ErrTxContention))

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.ErrorIs(err, dombooking.ErrSlotTaken)
		s.Equal(errs.KindConflictSlotTaken, errs.KindOf(err))
	})

	s.Run("error: other transaction failures pass through", func() {
		b := builder.NewBookingBuilder()
		dbErr := infra.NewRepoErr(infra.KindDBFailure, "connection refused")
		s.expectCatalogFound(b)
		s.h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).Return(dbErr)

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.ErrorIs(err, dbErr)
		s.NotErrorIs(err, dombooking.ErrSlotTaken)
	})

	s.Run("error: unknown venue short-circuits before the sport lookup", func() {
		b := builder.NewBookingBuilder()
		s.h.catalog.EXPECT().GetVenue(gomock.Any(), b.VenueID).Return(nil, shared.ErrVenueNotFound)

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.Equal(errs.KindNotFoundVenue, errs.KindOf(err))
	})

	s.Run("error: unknown sport", func() {
		b := builder.NewBookingBuilder()
		s.h.catalog.EXPECT().GetVenue(gomock.Any(), b.VenueID).Return(&shared.VenueSnapshot{ID: b.VenueID}, nil)
		s.h.catalog.EXPECT().GetSport(gomock.Any(), b.SportID).Return(nil, shared.ErrSportNotFound)

		_, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.Equal(errs.KindNotFoundSport, errs.KindOf(err))
	})

	validation := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		kind   errs.Kind
	}{
		{"inverted window", func(b *builder.BookingBuilder) { b.WithWindow("11:00", "10:00") }, errs.KindInvalidTimeWindow},
		{"malformed start", func(b *builder.BookingBuilder) { b.WithWindow("7:00", "10:00") }, errs.KindInvalidTimeWindow},
		{"yesterday", func(b *builder.BookingBuilder) { b.WithDayOffset(-1) }, errs.KindInvalidPastDate},
		{"negative price", func(b *builder.BookingBuilder) { b.WithTotalPrice(-1) }, errs.KindInvalidPrice},
		{"blank court", func(b *builder.BookingBuilder) { b.WithCourt("  ") }, errs.KindInvalidCourt},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			b := builder.NewBookingBuilder().With(tc.mutate)
			s.expectCatalogFound(b)

			_, err := s.commands.RequestBooking(ctx, b.BuildParams())
			s.Equal(tc.kind, errs.KindOf(err))
		})
	}

	s.Run("success: today is bookable", func() {
		b := builder.NewBookingBuilder().WithDayOffset(0)
		s.expectCatalogFound(b)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.catalog.EXPECT().IncrementSportBookingCount(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.commands.RequestBooking(ctx, b.BuildParams())
		s.Require().NoError(err)
		s.Equal(timeslot.DayOf(builder.DefaultNow), view.Date)
	})
}

// ================================================================================
// UpdateDetails
// ================================================================================

func (s *BookingCommandsTestSuite) TestUpdateDetails() {
	ctx := context.Background()
	str := func(v string) *string { return &v }

	s.Run("success: moving the window re-runs the conflict check", func() {
		b := builder.NewBookingBuilder()
		existing := b.BuildReconstructed()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(existing, nil)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), existing).Return(nil, nil)
		s.h.bookings.EXPECT().UpdateDetails(gomock.Any(), gomock.Any(), existing).Return(nil)

		view, err := s.commands.UpdateDetails(ctx, b.ID, b.UserID, dombooking.DetailsPatch{StartTime: str("12:00"), EndTime: str("13:30")})
		s.Require().NoError(err)
		s.Equal("12:00", view.StartTime)
		s.Equal(90, view.DurationMinutes)
	})

	s.Run("success: an unchanged slot skips the write", func() {
		b := builder.NewBookingBuilder()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)

		_, err := s.commands.UpdateDetails(ctx, b.ID, b.UserID, dombooking.DetailsPatch{Court: str("C1")})
		s.NoError(err)
	})

	s.Run("error: moving onto a taken slot", func() {
		b := builder.NewBookingBuilder()
		other := builder.NewBookingBuilder().WithVenueID(b.VenueID).WithCourt("C2").BuildReconstructed()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*dombooking.Booking{other}, nil)

		_, err := s.commands.UpdateDetails(ctx, b.ID, b.UserID, dombooking.DetailsPatch{Court: str("C2")})
		s.ErrorIs(err, dombooking.ErrSlotTaken)
	})

	s.Run("error: someone else's booking", func() {
		b := builder.NewBookingBuilder()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)

		_, err := s.commands.UpdateDetails(ctx, b.ID, uuid.New(), dombooking.DetailsPatch{Court: str("C2")})
		s.Equal(errs.KindForbidden, errs.KindOf(err))
	})

	s.Run("error: missing booking", func() {
		id := uuid.New()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no rows"))

		_, err := s.commands.UpdateDetails(ctx, id, uuid.New(), dombooking.DetailsPatch{})
		s.ErrorIs(err, dombooking.ErrBookingNotFound)
	})

	s.Run("error: concurrent status change surfaces as invalid state", func() {
		b := builder.NewBookingBuilder()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().UpdateDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindStaleState, "stale"))

		_, err := s.commands.UpdateDetails(ctx, b.ID, b.UserID, dombooking.DetailsPatch{StartTime: str("09:00")})
		s.ErrorIs(err, dombooking.ErrInvalidState)
	})
}

// ================================================================================
// Lifecycle
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancelByPlayer() {
	ctx := context.Background()

	s.Run("success: records the player as canceller", func() {
		b := builder.NewBookingBuilder()
		s.h.expectWithin(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), dombooking.StatusConfirmed).Return(nil)

		view, err := s.commands.CancelByPlayer(ctx, b.ID, b.UserID)
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
		s.Require().NotNil(view.CancelledBy)
		s.Equal(b.UserID, *view.CancelledBy)
		s.Equal(dombooking.DefaultPlayerCancelReason, *view.CancellationReason)
	})

	s.Run("error: second cancel observes cancelled", func() {
		b := builder.NewBookingBuilder().AsCancelled(uuid.New())
		s.h.expectWithin(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)

		_, err := s.commands.CancelByPlayer(ctx, b.ID, b.UserID)
		s.ErrorIs(err, dombooking.ErrInvalidState)
	})

	s.Run("error: guarded update lost the race", func() {
		b := builder.NewBookingBuilder()
		s.h.expectWithin(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindStaleState, "stale"))

		_, err := s.commands.CancelByPlayer(ctx, b.ID, b.UserID)
		s.Equal(errs.KindInvalidState, errs.KindOf(err))
	})
}

func (s *BookingCommandsTestSuite) TestCancelByOwner() {
	ctx := context.Background()
	ownerID := uuid.New()

	s.Run("success: tomorrow's booking", func() {
		b := builder.NewBookingBuilder()
		s.h.expectWithin(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.catalog.EXPECT().IsVenueOwnedBy(gomock.Any(), b.VenueID, ownerID).Return(true, nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), dombooking.StatusConfirmed).Return(nil)

		view, err := s.commands.CancelByOwner(ctx, b.ID, ownerID, "")
		s.Require().NoError(err)
		s.Equal(ownerID, *view.CancelledBy)
		s.Equal(dombooking.DefaultOwnerCancelReason, *view.CancellationReason)
		s.Equal(builder.DefaultNow, *view.CancelledAt)
	})

	s.Run("error: past booking", func() {
		b := builder.NewBookingBuilder().WithDayOffset(-1)
		s.h.expectWithin(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.catalog.EXPECT().IsVenueOwnedBy(gomock.Any(), b.VenueID, ownerID).Return(true, nil)

		_, err := s.commands.CancelByOwner(ctx, b.ID, ownerID, "rain")
		s.ErrorIs(err, dombooking.ErrPastBooking)
	})

	s.Run("error: venue owned by someone else", func() {
		b := builder.NewBookingBuilder()
		s.h.expectWithin(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.catalog.EXPECT().IsVenueOwnedBy(gomock.Any(), b.VenueID, ownerID).Return(false, nil)

		_, err := s.commands.CancelByOwner(ctx, b.ID, ownerID, "rain")
		s.ErrorIs(err, commands.ErrNotVenueOwner)
		s.Equal(errs.KindForbidden, errs.KindOf(err))
	})
}

func (s *BookingCommandsTestSuite) TestAdminSetStatus() {
	ctx := context.Background()
	adminID := uuid.New()

	s.Run("success: reopening a cancelled booking re-checks the slot and clears the audit fields", func() {
		b := builder.NewBookingBuilder().AsCancelled(uuid.New())
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), dombooking.StatusCancelled).Return(nil)

		view, err := s.commands.AdminSetStatus(ctx, b.ID, adminID, "confirmed")
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
		s.Nil(view.CancelledBy)
		s.Nil(view.CancellationReason)
	})

	s.Run("error: reopening onto an overlapping live booking is refused", func() {
		b := builder.NewBookingBuilder().WithWindow("10:00", "11:00").AsCancelled(uuid.New())
		taken := builder.NewBookingBuilder().
			WithVenueID(b.VenueID).
			WithCourt(b.Court).
			WithDate(b.Date).
			WithWindow("10:30", "11:30").
			BuildReconstructed()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*dombooking.Booking{taken}, nil)

		_, err := s.commands.AdminSetStatus(ctx, b.ID, adminID, "confirmed")
		s.ErrorIs(err, dombooking.ErrSlotTaken)
		s.Equal(errs.KindConflictSlotTaken, errs.KindOf(err))
		var conflict *dombooking.ConflictError
		s.Require().True(errors.As(err, &conflict))
		s.Equal("10:30-11:30", conflict.Window.String())
	})

	s.Run("error: exact duplicate caught by the unique guard", func() {
		b := builder.NewBookingBuilder().AsCancelled(uuid.New())
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().ListActiveOnCourtDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindDuplicateKey, "bookings_active_slot_key"))

		_, err := s.commands.AdminSetStatus(ctx, b.ID, adminID, "confirmed")
		s.ErrorIs(err, dombooking.ErrSlotTaken)
	})

	s.Run("error: contended reopen reports the slot as taken", func() {
		b := builder.NewBookingBuilder().WithStatus(dombooking.StatusCancelled)
		s.h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("deadlock detected"), shared.ErrTxContention))

		_, err := s.commands.AdminSetStatus(ctx, b.ID, adminID, "confirmed")
		s.ErrorIs(err, dombooking.ErrSlotTaken)
	})

	s.Run("success: completed to no-show keeps the slot and skips the check", func() {
		b := builder.NewBookingBuilder().WithDayOffset(-1).WithStatus(dombooking.StatusCompleted)
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), dombooking.StatusCompleted).Return(nil)

		view, err := s.commands.AdminSetStatus(ctx, b.ID, adminID, "no-show")
		s.Require().NoError(err)
		s.Equal("no-show", view.Status)
	})

	s.Run("success: admin cancel names the admin", func() {
		b := builder.NewBookingBuilder()
		s.h.expectSerializable(1)
		s.h.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)
		s.h.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), dombooking.StatusConfirmed).Return(nil)

		view, err := s.commands.AdminSetStatus(ctx, b.ID, adminID, "cancelled")
		s.Require().NoError(err)
		s.Equal(adminID, *view.CancelledBy)
	})

	s.Run("error: unknown status never opens a transaction", func() {
		_, err := s.commands.AdminSetStatus(ctx, uuid.New(), adminID, "archived")
		s.Equal(errs.KindInvalidStatus, errs.KindOf(err))
	})
}

func (s *BookingCommandsTestSuite) TestCompletePastBookings() {
	s.h.expectWithin(1)
	s.h.bookings.EXPECT().
		CompletePast(gomock.Any(), gomock.Any(), timeslot.DayOf(builder.DefaultNow), builder.DefaultNow).
		Return(int64(3), nil)

	n, err := s.commands.CompletePastBookings(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(3), n)
}
