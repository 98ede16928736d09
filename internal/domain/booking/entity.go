package booking

import (
	"time"

	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/pkg/clock"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

type Cancellation struct {
	Reason string
	By     uuid.UUID
	At     time.Time
}

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	venueID       uuid.UUID
	sportID       uuid.UUID
	court         Court
	date          time.Time
	window        timeslot.Window
	price         Price
	paymentStatus PaymentStatus
	status        Status
	cancellation  *Cancellation
	createdAt     time.Time
	updatedAt     time.Time
}

type NewBookingParams struct {
	UserID     uuid.UUID
	VenueID    uuid.UUID
	SportID    uuid.UUID
	Court      string
	Date       time.Time
	StartTime  string
	EndTime    string
	TotalPrice float64
}

// NewBooking validates in a fixed order: time window, date, price, court.
func NewBooking(services *Services, p NewBookingParams) (*Booking, error) {
	window, err := timeslot.NewWindow(p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	date := timeslot.DayOf(p.Date)
	if err := validateDate(date, now); err != nil {
		return nil, err
	}

	price, err := NewPrice(p.TotalPrice)
	if err != nil {
		return nil, err
	}

	court, err := NewCourt(p.Court)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:            uuid.New(),
		userID:        p.UserID,
		venueID:       p.VenueID,
		sportID:       p.SportID,
		court:         court,
		date:          date,
		window:        window,
		price:         price,
		paymentStatus: PaymentPending,
		status:        StatusConfirmed,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func validateDate(date, now time.Time) error {
	if date.Before(timeslot.DayOf(now)) {
		return errs.Wrapf(ErrPastDate, "date %s", timeslot.FormatDate(date))
	}
	return nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	VenueID       uuid.UUID
	SportID       uuid.UUID
	Court         string
	Date          time.Time
	StartTime     string
	EndTime       string
	TotalPrice    float64
	PaymentStatus string
	Status        string
	Cancellation  *Cancellation
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReconstructBooking rebuilds a persisted booking; stored rows already passed validation,
// so only structural errors (corrupt window) are reported.
func ReconstructBooking(p ReconstructParams) (*Booking, error) {
	window, err := timeslot.NewWindow(p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:            p.ID,
		userID:        p.UserID,
		venueID:       p.VenueID,
		sportID:       p.SportID,
		court:         Court{name: p.Court},
		date:          timeslot.DayOf(p.Date),
		window:        window,
		price:         Price{amount: p.TotalPrice},
		paymentStatus: PaymentStatus(p.PaymentStatus),
		status:        Status(p.Status),
		cancellation:  p.Cancellation,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) VenueID() uuid.UUID           { return b.venueID }
func (b *Booking) SportID() uuid.UUID           { return b.sportID }
func (b *Booking) Court() Court                 { return b.court }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) Window() timeslot.Window      { return b.window }
func (b *Booking) DurationMinutes() int         { return b.window.DurationMinutes() }
func (b *Booking) Price() Price                 { return b.price }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Cancellation() *Cancellation  { return b.cancellation }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// ConflictsWith reports whether other occupies an overlapping part of the same court and day.
// Cancelled bookings never conflict.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.id == other.id || other.status == StatusCancelled {
		return false
	}
	return b.venueID == other.venueID &&
		b.court == other.court &&
		b.date.Equal(other.date) &&
		b.window.Overlaps(other.window)
}

func (b *Booking) Conflict() *ConflictError {
	return &ConflictError{Court: b.court.String(), Date: b.date, Window: b.window}
}

// CancelByPlayer has no date restriction; only the booker may call it.
func (b *Booking) CancelByPlayer(actorID uuid.UUID, now time.Time) error {
	if b.userID != actorID {
		return ErrNotOwner
	}
	if !b.IsConfirmed() {
		return errs.Wrapf(ErrInvalidState, "current status %s", b.status)
	}
	b.cancel(actorID, DefaultPlayerCancelReason, now)
	return nil
}

// CancelByOwner expects the caller to have verified venue ownership.
func (b *Booking) CancelByOwner(ownerID uuid.UUID, reason string, now time.Time) error {
	if !b.IsConfirmed() {
		return errs.Wrapf(ErrInvalidState, "current status %s", b.status)
	}
	if !b.date.After(timeslot.DayOf(now)) {
		return errs.Wrapf(ErrPastBooking, "date %s", timeslot.FormatDate(b.date))
	}
	if reason == "" {
		reason = DefaultOwnerCancelReason
	}
	b.cancel(ownerID, reason, now)
	return nil
}

// ReclaimsSlot reports whether moving to next makes the booking occupy its slot
// again: leaving cancelled for any other status, or returning to confirmed.
func (b *Booking) ReclaimsSlot(next Status) bool {
	if next == StatusCancelled || next == b.status {
		return false
	}
	return b.status == StatusCancelled || next == StatusConfirmed
}

// SetStatus is the administrative override: any valid status from any status.
func (b *Booking) SetStatus(status Status, actorID uuid.UUID, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if status == StatusCancelled {
		if b.status != StatusCancelled {
			b.cancel(actorID, DefaultAdminCancelReason, now)
		}
		return nil
	}
	b.status = status
	b.cancellation = nil
	b.updatedAt = now
	return nil
}

func (b *Booking) cancel(actorID uuid.UUID, reason string, now time.Time) {
	b.status = StatusCancelled
	b.cancellation = &Cancellation{Reason: reason, By: actorID, At: now}
	b.updatedAt = now
}

// DetailsPatch lists the only fields a booker may edit.
type DetailsPatch struct {
	Court     *string
	Date      *time.Time
	StartTime *string
	EndTime   *string
}

func (p DetailsPatch) IsEmpty() bool {
	return p.Court == nil && p.Date == nil && p.StartTime == nil && p.EndTime == nil
}

// UpdateDetails merges the patch and re-runs the creation checks on the result.
// It reports whether the slot (court, date or window) changed, in which case the
// caller must re-run the conflict check before persisting.
func (b *Booking) UpdateDetails(actorID uuid.UUID, p DetailsPatch, now time.Time) (bool, error) {
	if b.userID != actorID {
		return false, ErrNotOwner
	}
	if !b.IsConfirmed() {
		return false, errs.Wrapf(ErrInvalidState, "current status %s", b.status)
	}

	window, err := timeslot.NewWindow(
		patch.Coalesce(p.StartTime, b.window.Start().String()),
		patch.Coalesce(p.EndTime, b.window.End().String()),
	)
	if err != nil {
		return false, err
	}

	date := b.date
	if p.Date != nil {
		date = timeslot.DayOf(*p.Date)
		if err := validateDate(date, now); err != nil {
			return false, err
		}
	}

	court, err := NewCourt(patch.Coalesce(p.Court, b.court.String()))
	if err != nil {
		return false, err
	}

	changed := court != b.court || !date.Equal(b.date) || window != b.window
	b.court = court
	b.date = date
	b.window = window
	if changed {
		b.updatedAt = now
	}
	return changed, nil
}
