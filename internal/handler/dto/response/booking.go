package response

import (
	"time"

	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	VenueID            uuid.UUID  `json:"venue_id"`
	SportID            uuid.UUID  `json:"sport_id"`
	Court              string     `json:"court"`
	Date               string     `json:"date" example:"2026-05-11"`
	TimeSlot           TimeSlot   `json:"time_slot"`
	DurationMinutes    int        `json:"duration_minutes"`
	TotalPrice         float64    `json:"total_price"`
	PaymentStatus      string     `json:"payment_status"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

type CompletePastResponse struct {
	Completed int64 `json:"completed"`
}

var dateOnly = copier.Option{
	Converters: []copier.TypeConverter{{
		SrcType: time.Time{},
		DstType: copier.String,
		Fn: func(src interface{}) (interface{}, error) {
			return timeslot.FormatDate(src.(time.Time)), nil
		},
	}},
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.CopyWithOption(res, v, dateOnly)
	res.TimeSlot = TimeSlot{Start: v.StartTime, End: v.EndTime}
	return res
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	return &BookingListResponse{Items: items, NextCursor: cursorOf(next)}
}

func cursorOf(c *queries.Cursor) *string {
	if c == nil {
		return nil
	}
	after := c.After
	return &after
}
