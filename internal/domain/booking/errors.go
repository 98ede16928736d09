package booking

import (
	"fmt"
	"time"

	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.NewKind(errs.KindNotFoundBooking, "booking not found")
	ErrSlotTaken       = errs.NewKind(errs.KindConflictSlotTaken, "time slot already booked")
	ErrInvalidState    = errs.NewKind(errs.KindInvalidState, "booking is not in a state that allows this operation")
	ErrPastBooking     = errs.NewKind(errs.KindInvalidPastBooking, "past bookings cannot be cancelled by the venue owner")
	ErrPastDate        = errs.NewKind(errs.KindInvalidPastDate, "booking date cannot be in the past")
	ErrInvalidPrice    = errs.NewKind(errs.KindInvalidPrice, "total price must be a non-negative amount within range")
	ErrInvalidCourt    = errs.NewKind(errs.KindInvalidCourt, "court name is required and must be at most 64 characters")
	ErrInvalidStatus   = errs.NewKind(errs.KindInvalidStatus, "invalid booking status")
	ErrNotOwner        = errs.NewKind(errs.KindForbidden, "booking does not belong to the requesting user")
)

// ConflictError names the slot that blocked a request so the caller can pick another window.
type ConflictError struct {
	Court  string
	Date   time.Time
	Window timeslot.Window
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: court %q on %s %s", ErrSlotTaken.Error(), e.Court, timeslot.FormatDate(e.Date), e.Window)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotTaken
}
