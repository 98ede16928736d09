package request

import (
	"strings"
	"time"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.NewKind(errs.KindInvalidRequest, "date must be formatted as YYYY-MM-DD")

type TimeSlot struct {
	Start string `json:"start" binding:"required" example:"10:00"`
	End   string `json:"end" binding:"required" example:"11:30"`
}

type CreateBookingRequest struct {
	VenueID    uuid.UUID `json:"venue_id" binding:"required"`
	SportID    uuid.UUID `json:"sport_id" binding:"required"`
	Court      string    `json:"court" example:"Court 1"`
	Date       string    `json:"date" binding:"required" example:"2026-05-11"`
	TimeSlot   TimeSlot  `json:"time_slot" binding:"required"`
	TotalPrice *float64  `json:"total_price" binding:"required" example:"40"`
}

func (r CreateBookingRequest) ToParams(userID uuid.UUID) (booking.NewBookingParams, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return booking.NewBookingParams{}, err
	}
	return booking.NewBookingParams{
		UserID:     userID,
		VenueID:    r.VenueID,
		SportID:    r.SportID,
		Court:      strings.TrimSpace(r.Court),
		Date:       date,
		StartTime:  r.TimeSlot.Start,
		EndTime:    r.TimeSlot.End,
		TotalPrice: *r.TotalPrice,
	}, nil
}

type TimeSlotPatch struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// UpdateBookingRequest carries the only fields a player may change.
type UpdateBookingRequest struct {
	Court    *string        `json:"court,omitempty"`
	Date     *string        `json:"date,omitempty"`
	TimeSlot *TimeSlotPatch `json:"time_slot,omitempty"`
}

func (r UpdateBookingRequest) ToPatch() (booking.DetailsPatch, error) {
	var p booking.DetailsPatch
	if r.Court != nil {
		court := strings.TrimSpace(*r.Court)
		p.Court = &court
	}
	if r.Date != nil {
		date, err := parseDate(*r.Date)
		if err != nil {
			return booking.DetailsPatch{}, err
		}
		p.Date = &date
	}
	if r.TimeSlot != nil {
		p.StartTime = r.TimeSlot.Start
		p.EndTime = r.TimeSlot.End
	}
	return p, nil
}

type OwnerCancelRequest struct {
	Reason string `json:"reason" binding:"max=500" example:"Court maintenance"`
}

type AdminStatusRequest struct {
	Status string `json:"status" binding:"required" example:"completed"`
}

func parseDate(s string) (time.Time, error) {
	d, err := timeslot.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "parse %q", s)
	}
	return d, nil
}
