package errs

import (
	"errors"
)

// Kind is the stable, machine-readable category attached to a domain error.
// Values are part of the public API contract and must not change.
type Kind string

const (
	KindUnknown Kind = ""

	KindNotFoundVenue   Kind = "NotFound:Venue"
	KindNotFoundSport   Kind = "NotFound:Sport"
	KindNotFoundBooking Kind = "NotFound:Booking"
	KindNotFoundRating  Kind = "NotFound:Rating"

	KindInvalidTimeWindow  Kind = "Invalid:TimeWindow"
	KindInvalidPastDate    Kind = "Invalid:PastDate"
	KindInvalidPrice       Kind = "Invalid:Price"
	KindInvalidCourt       Kind = "Invalid:Court"
	KindInvalidScore       Kind = "Invalid:Score"
	KindInvalidComment     Kind = "Invalid:Comment"
	KindInvalidStatus      Kind = "Invalid:Status"
	KindInvalidState       Kind = "Invalid:State"
	KindInvalidPastBooking Kind = "Invalid:PastBooking"
	KindInvalidRequest     Kind = "Invalid:Request"

	KindConflictSlotTaken    Kind = "Conflict:SlotTaken"
	KindConflictAlreadyRated Kind = "Conflict:AlreadyRated"

	KindUnauthorized Kind = "Unauthorized"

	KindForbidden                  Kind = "Forbidden"
	KindForbiddenNoEligibleBooking Kind = "Forbidden:NoEligibleBooking"
)

func (k Kind) String() string {
	return string(k)
}

type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }
func (e *kindError) Kind() Kind    { return e.kind }

// NewKind creates a sentinel error tagged with kind.
func NewKind(kind Kind, msg string) error {
	return &kindError{kind: kind, err: New(msg)}
}

// WithKind tags an arbitrary error with kind, keeping it inspectable with errors.Is.
func WithKind(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

// KindOf returns the outermost kind found in the chain, or KindUnknown.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnknown
}
