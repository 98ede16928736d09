//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"court-reservation/internal/domain/user"
	"court-reservation/internal/handler/dto/request"
	"court-reservation/internal/handler/dto/response"
	"court-reservation/tests/common/authtest"
	"court-reservation/tests/common/builder"
	"court-reservation/tests/common/dbtest"
	"court-reservation/tests/common/httptest"
	"court-reservation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL       = "/api/bookings"
	bookingURL        = "/api/bookings/%s"
	cancelURL         = "/api/bookings/%s/cancel"
	ownerCancelURL    = "/api/owner/bookings/%s/cancel"
	ownerBookingsURL  = "/api/owner/bookings"
	adminStatusURL    = "/api/admin/bookings/%s/status"
	adminCompletedURL = "/api/admin/bookings/complete-past"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type court struct {
	owner   authtest.Principal
	venueID uuid.UUID
	sportID uuid.UUID
}

func (s *BookingSuite) newCourt(t *testing.T) court {
	t.Helper()
	owner := s.Auth.NewPrincipal(t, user.RoleOwner)
	return court{
		owner:   owner,
		venueID: dbtest.CreateTestVenue(t, s.DB, owner.ID, "Riverside Club"),
		sportID: dbtest.CreateTestSport(t, s.DB, "Padel"),
	}
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (s *BookingSuite) bookingRequest(c court, day time.Time, start, end string) request.CreateBookingRequest {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.VenueID = c.venueID
		b.SportID = c.sportID
		b.Court = "C1"
		b.Date = day
		b.StartTime = start
		b.EndTime = end
	}).BuildCreateRequestDTO()
}

func (s *BookingSuite) create(t *testing.T, token string, req request.CreateBookingRequest) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is confirmed with pending payment", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		day := today().AddDate(0, 0, 2)

		w := s.create(t, player.Token, s.bookingRequest(c, day, "10:00", "11:30"))

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		require.Equal(t, fmt.Sprintf(bookingURL, got.ID), w.Header().Get("Location"))

		want := response.BookingResponse{
			UserID:          player.ID,
			VenueID:         c.venueID,
			SportID:         c.sportID,
			Court:           "C1",
			Date:            day.Format(time.DateOnly),
			TimeSlot:        response.TimeSlot{Start: "10:00", End: "11:30"},
			DurationMinutes: 90,
			TotalPrice:      40,
			PaymentStatus:   "pending",
			Status:          "confirmed",
		}
		opts := cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, int64(1), dbtest.SportBookingCount(t, s.DB, c.sportID))
	})

	s.Run("Error case: overlapping window is rejected, touching window is accepted", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		day := today().AddDate(0, 0, 3)

		w := s.create(t, player.Token, s.bookingRequest(c, day, "10:00", "11:00"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = s.create(t, player.Token, s.bookingRequest(c, day, "10:30", "11:30"))
		body := httptest.AssertErrorKind(t, w, http.StatusConflict, "Conflict:SlotTaken")
		require.Equal(t, "C1", body.Detail["court"])
		require.Equal(t, day.Format(time.DateOnly), body.Detail["date"])

		w = s.create(t, player.Token, s.bookingRequest(c, day, "11:00", "12:00"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Normal case: another court on the same venue is independent", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		day := today().AddDate(0, 0, 3)

		require.Equal(t, http.StatusCreated, s.create(t, player.Token, s.bookingRequest(c, day, "10:00", "11:00")).Code)

		req := s.bookingRequest(c, day, "10:00", "11:00")
		req.Court = "C2"
		require.Equal(t, http.StatusCreated, s.create(t, player.Token, req).Code)
	})

	s.Run("Error case: exactly one of concurrent identical requests wins", func() {
		t := s.T()
		c := s.newCourt(t)
		day := today().AddDate(0, 0, 4)

		const contenders = 6
		codes := make([]int, contenders)
		kinds := make([]string, contenders)

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range contenders {
			player := s.Auth.NewPrincipal(t, user.RolePlayer)
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := s.create(t, player.Token, s.bookingRequest(c, day, "18:00", "19:00"))
				codes[i] = w.Code
				if w.Code != http.StatusCreated {
					kinds[i] = httptest.AssertErrorKind(t, w, http.StatusConflict, "").Error.Kind
				}
			}(i)
		}
		close(start)
		wg.Wait()

		created := 0
		for i, code := range codes {
			if code == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, code)
			require.Equal(t, "Conflict:SlotTaken", kinds[i])
		}
		require.Equal(t, 1, created)
	})

	s.Run("Error case: concurrent overlapping windows admit exactly one", func() {
		t := s.T()
		c := s.newCourt(t)
		day := today().AddDate(0, 0, 5)

		// every pair overlaps, none is an exact duplicate
		windows := [][2]string{
			{"10:00", "11:00"},
			{"10:30", "11:30"},
			{"10:15", "11:15"},
			{"10:45", "11:45"},
			{"10:50", "12:00"},
			{"09:30", "10:55"},
		}
		codes := make([]int, len(windows))
		kinds := make([]string, len(windows))

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i, win := range windows {
			player := s.Auth.NewPrincipal(t, user.RolePlayer)
			wg.Add(1)
			go func(i int, win [2]string) {
				defer wg.Done()
				<-start
				w := s.create(t, player.Token, s.bookingRequest(c, day, win[0], win[1]))
				codes[i] = w.Code
				if w.Code != http.StatusCreated {
					kinds[i] = httptest.AssertErrorKind(t, w, http.StatusConflict, "").Error.Kind
				}
			}(i, win)
		}
		close(start)
		wg.Wait()

		created := 0
		for i, code := range codes {
			if code == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, code, "window %v", windows[i])
			require.Equal(t, "Conflict:SlotTaken", kinds[i], "window %v", windows[i])
		}
		require.Equal(t, 1, created)

		var live int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			`SELECT count(*) FROM bookings WHERE venue_id = $1 AND date = $2 AND status <> 'cancelled'`,
			c.venueID, day).Scan(&live))
		require.Equal(t, 1, live)
	})

	s.Run("Error case: validation kinds", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		past := s.bookingRequest(c, today().AddDate(0, 0, -1), "10:00", "11:00")
		httptest.AssertErrorKind(t, s.create(t, player.Token, past), http.StatusBadRequest, "Invalid:PastDate")

		window := s.bookingRequest(c, today().AddDate(0, 0, 1), "11:00", "10:00")
		httptest.AssertErrorKind(t, s.create(t, player.Token, window), http.StatusBadRequest, "Invalid:TimeWindow")

		price := s.bookingRequest(c, today().AddDate(0, 0, 1), "10:00", "11:00")
		negative := -1.0
		price.TotalPrice = &negative
		httptest.AssertErrorKind(t, s.create(t, player.Token, price), http.StatusBadRequest, "Invalid:Price")

		huge := 1e9
		price.TotalPrice = &huge
		httptest.AssertErrorKind(t, s.create(t, player.Token, price), http.StatusBadRequest, "Invalid:Price")

		venue := s.bookingRequest(c, today().AddDate(0, 0, 1), "10:00", "11:00")
		venue.VenueID = uuid.New()
		httptest.AssertErrorKind(t, s.create(t, player.Token, venue), http.StatusNotFound, "NotFound:Venue")

		sport := s.bookingRequest(c, today().AddDate(0, 0, 1), "10:00", "11:00")
		sport.SportID = uuid.New()
		httptest.AssertErrorKind(t, s.create(t, player.Token, sport), http.StatusNotFound, "NotFound:Sport")
	})

	s.Run("Auth test - Unauthorized without a token", func() {
		t := s.T()
		c := s.newCourt(t)

		w := s.create(t, "", s.bookingRequest(c, today().AddDate(0, 0, 1), "10:00", "11:00"))
		httptest.AssertErrorKind(t, w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("Auth test - Unauthorized with an expired token", func() {
		t := s.T()
		c := s.newCourt(t)

		expired := s.Auth.CreateExpiredToken(t, uuid.New(), user.RolePlayer)
		w := s.create(t, expired, s.bookingRequest(c, today().AddDate(0, 0, 1), "10:00", "11:00"))
		httptest.AssertErrorKind(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}

// =============================================================================
// TestCancelBooking
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancelling frees the slot", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		day := today().AddDate(0, 0, 5)

		var first response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, day, "09:00", "10:00")), http.StatusCreated, &first)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, first.ID), nil, player.Token)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.NotNil(t, cancelled.CancelledBy)
		require.Equal(t, player.ID, *cancelled.CancelledBy)
		require.NotNil(t, cancelled.CancellationReason)
		require.Equal(t, "Cancelled by player", *cancelled.CancellationReason)

		again := s.create(t, player.Token, s.bookingRequest(c, day, "09:00", "10:00"))
		require.Equal(t, http.StatusCreated, again.Code, again.Body.String())
	})

	s.Run("Error case: cancelling twice is an invalid state", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		var b response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, today().AddDate(0, 0, 1), "09:00", "10:00")), http.StatusCreated, &b)

		url := fmt.Sprintf(cancelURL, b.ID)
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, player.Token).Code)
		httptest.AssertErrorKind(t, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, player.Token),
			http.StatusBadRequest, "Invalid:State")
	})

	s.Run("Error case: another player cannot cancel", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		other := s.Auth.NewPrincipal(t, user.RolePlayer)

		var b response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, today().AddDate(0, 0, 1), "09:00", "10:00")), http.StatusCreated, &b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, b.ID), nil, other.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "Forbidden")
	})
}

// =============================================================================
// TestOwnerCancel
// =============================================================================

func (s *BookingSuite) TestOwnerCancel() {
	s.Run("Error case: past booking cannot be cancelled by the owner", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		id := dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID,
			Date: today().AddDate(0, 0, -1),
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ownerCancelURL, id),
			request.OwnerCancelRequest{Reason: "Flooded"}, c.owner.Token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "Invalid:PastBooking")
	})

	s.Run("Normal case: owner cancels tomorrow's booking with a reason", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		var b response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, today().AddDate(0, 0, 1), "09:00", "10:00")), http.StatusCreated, &b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ownerCancelURL, b.ID),
			request.OwnerCancelRequest{Reason: "Court maintenance"}, c.owner.Token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "cancelled", got.Status)
		require.Equal(t, c.owner.ID, *got.CancelledBy)
		require.Equal(t, "Court maintenance", *got.CancellationReason)
		require.NotNil(t, got.CancelledAt)
	})

	s.Run("Normal case: default reason when the body is empty", func() {
		t := s.T()
		c := s.newCourt(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		var b response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, today().AddDate(0, 0, 2), "09:00", "10:00")), http.StatusCreated, &b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ownerCancelURL, b.ID), nil, c.owner.Token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "Cancelled by venue owner", *got.CancellationReason)
	})

	s.Run("Error case: owner of another venue is forbidden", func() {
		t := s.T()
		c := s.newCourt(t)
		stranger := s.Auth.NewPrincipal(t, user.RoleOwner)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		var b response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, today().AddDate(0, 0, 1), "09:00", "10:00")), http.StatusCreated, &b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ownerCancelURL, b.ID), nil, stranger.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "Forbidden")
	})

	s.Run("Auth test - players cannot reach owner routes", func() {
		t := s.T()
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerBookingsURL, nil, player.Token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestAdminLifecycle
// =============================================================================

func (s *BookingSuite) TestAdminLifecycle() {
	s.Run("Normal case: admin marks a booking no-show", func() {
		t := s.T()
		c := s.newCourt(t)
		admin := s.Auth.NewPrincipal(t, user.RoleAdmin)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		var b response.BookingResponse
		httptest.AssertSuccessResponse(t, s.create(t, player.Token, s.bookingRequest(c, today().AddDate(0, 0, 1), "09:00", "10:00")), http.StatusCreated, &b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminStatusURL, b.ID),
			request.AdminStatusRequest{Status: "no-show"}, admin.Token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "no-show", got.Status)
	})

	s.Run("Error case: re-confirming a cancelled booking onto a taken slot conflicts", func() {
		t := s.T()
		c := s.newCourt(t)
		admin := s.Auth.NewPrincipal(t, user.RoleAdmin)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		day := today().AddDate(0, 0, 2)

		cancelled := dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID, Date: day,
			Start: "10:00", End: "11:00", Status: "cancelled",
		})
		dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID, Date: day,
			Start: "10:30", End: "11:30",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminStatusURL, cancelled),
			request.AdminStatusRequest{Status: "confirmed"}, admin.Token)
		body := httptest.AssertErrorKind(t, w, http.StatusConflict, "Conflict:SlotTaken")
		require.Equal(t, "C1", body.Detail["court"])

		var status string
		require.NoError(t, s.DB.QueryRow(t.Context(), `SELECT status FROM bookings WHERE id = $1`, cancelled).Scan(&status))
		require.Equal(t, "cancelled", status)
	})

	s.Run("Normal case: re-confirming a cancelled booking on a free slot", func() {
		t := s.T()
		c := s.newCourt(t)
		admin := s.Auth.NewPrincipal(t, user.RoleAdmin)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		day := today().AddDate(0, 0, 2)

		cancelled := dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID, Date: day,
			Start: "10:00", End: "11:00", Status: "cancelled",
		})
		dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID, Date: day,
			Start: "11:00", End: "12:00",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminStatusURL, cancelled),
			request.AdminStatusRequest{Status: "confirmed"}, admin.Token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "confirmed", got.Status)
		require.Nil(t, got.CancelledBy)
	})

	s.Run("Normal case: complete-past sweeps yesterday's confirmed bookings only", func() {
		t := s.T()
		c := s.newCourt(t)
		admin := s.Auth.NewPrincipal(t, user.RoleAdmin)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		past := dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID, Date: today().AddDate(0, 0, -1),
		})
		dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: c.venueID, SportID: c.sportID, Date: today().AddDate(0, 0, 1),
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCompletedURL, nil, admin.Token)
		var res response.CompletePastResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, int64(1), res.Completed)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, past), nil, admin.Token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "completed", got.Status)
	})
}
