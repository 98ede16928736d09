//go:build unit || e2e

package builder

import (
	"time"

	dombooking "court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/timeslot"
	reqdto "court-reservation/internal/handler/dto/request"
	"court-reservation/internal/pkg/clock"
	"court-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

// DefaultNow is the fixed instant booking builders are relative to.
var DefaultNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

type BookingBuilder struct {
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
	Cancellation  *dombooking.Cancellation
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		VenueID:       uuid.New(),
		SportID:       uuid.New(),
		Court:         "C1",
		Date:          timeslot.DayOf(DefaultNow).AddDate(0, 0, 1),
		StartTime:     "10:00",
		EndTime:       "11:00",
		TotalPrice:    40,
		PaymentStatus: string(dombooking.PaymentPending),
		Status:        string(dombooking.StatusConfirmed),
		Now:           DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) Services() *dombooking.Services {
	return &dombooking.Services{Clock: clock.NewMockClock(b.Now)}
}

func (b *BookingBuilder) BuildParams() dombooking.NewBookingParams {
	return dombooking.NewBookingParams{
		UserID:     b.UserID,
		VenueID:    b.VenueID,
		SportID:    b.SportID,
		Court:      b.Court,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.Services(), b.BuildParams())
}

// BuildReconstructed skips creation rules, so it can produce past or terminal bookings.
func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	bk, err := dombooking.ReconstructBooking(dombooking.ReconstructParams{
		ID:            b.ID,
		UserID:        b.UserID,
		VenueID:       b.VenueID,
		SportID:       b.SportID,
		Court:         b.Court,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		Cancellation:  b.Cancellation,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	})
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	price := b.TotalPrice
	return reqdto.CreateBookingRequest{
		VenueID:    b.VenueID,
		SportID:    b.SportID,
		Court:      b.Court,
		Date:       timeslot.FormatDate(b.Date),
		TimeSlot:   reqdto.TimeSlot{Start: b.StartTime, End: b.EndTime},
		TotalPrice: &price,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	window, _ := timeslot.NewWindow(b.StartTime, b.EndTime)
	v := &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		VenueID:         b.VenueID,
		SportID:         b.SportID,
		Court:           b.Court,
		Date:            timeslot.DayOf(b.Date),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: window.DurationMinutes(),
		TotalPrice:      b.TotalPrice,
		PaymentStatus:   b.PaymentStatus,
		Status:          b.Status,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
	if b.Cancellation != nil {
		reason := b.Cancellation.Reason
		by := b.Cancellation.By
		at := b.Cancellation.At
		v.CancellationReason = &reason
		v.CancelledBy = &by
		v.CancelledAt = &at
	}
	return v
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithVenueID(venueID uuid.UUID) *BookingBuilder {
	b.VenueID = venueID
	return b
}

func (b *BookingBuilder) WithSportID(sportID uuid.UUID) *BookingBuilder {
	b.SportID = sportID
	return b
}

func (b *BookingBuilder) WithCourt(court string) *BookingBuilder {
	b.Court = court
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

// WithDayOffset sets the date relative to the builder's Now (0 = today, -1 = yesterday).
func (b *BookingBuilder) WithDayOffset(days int) *BookingBuilder {
	b.Date = timeslot.DayOf(b.Now).AddDate(0, 0, days)
	return b
}

func (b *BookingBuilder) WithWindow(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithTotalPrice(price float64) *BookingBuilder {
	b.TotalPrice = price
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = string(status)
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) AsCancelled(by uuid.UUID) *BookingBuilder {
	b.Status = string(dombooking.StatusCancelled)
	b.Cancellation = &dombooking.Cancellation{Reason: dombooking.DefaultPlayerCancelReason, By: by, At: b.Now}
	return b
}
