//go:build e2e

package rating_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"court-reservation/internal/domain/user"
	"court-reservation/internal/handler/dto/request"
	"court-reservation/internal/handler/dto/response"
	"court-reservation/tests/common/authtest"
	"court-reservation/tests/common/dbtest"
	"court-reservation/tests/common/httptest"
	"court-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	venueRatingsURL = "/api/venues/%s/ratings"
	venueRatingURL  = "/api/venues/%s/rating"
	ratingURL       = "/api/ratings/%s"
	repairURL       = "/api/admin/venues/%s/rating/repair"
)

type RatingSuite struct {
	e2e.SharedSuite
}

func (s *RatingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRatingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RatingSuite))
}

func yesterday() time.Time {
	return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -1)
}

func (s *RatingSuite) newVenue(t *testing.T) (venueID, sportID uuid.UUID) {
	t.Helper()
	owner := s.Auth.NewPrincipal(t, user.RoleOwner)
	return dbtest.CreateTestVenue(t, s.DB, owner.ID, "Harbour Courts"), dbtest.CreateTestSport(t, s.DB, "Tennis")
}

// eligiblePlayer returns a player who played at the venue yesterday.
func (s *RatingSuite) eligiblePlayer(t *testing.T, venueID, sportID uuid.UUID) authtest.Principal {
	t.Helper()
	p := s.Auth.NewPrincipal(t, user.RolePlayer)
	dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
		UserID: p.ID, VenueID: venueID, SportID: sportID, Date: yesterday(),
	})
	return p
}

func (s *RatingSuite) addRating(t *testing.T, p authtest.Principal, venueID uuid.UUID, score int) response.RatingMutationResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(venueRatingsURL, venueID),
		request.CreateRatingRequest{Score: score, Comment: "  nice lighting  "}, p.Token)
	var res response.RatingMutationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *RatingSuite) aggregate(t *testing.T, venueID uuid.UUID) response.VenueRatingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(venueRatingURL, venueID), nil, "")
	var res response.VenueRatingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

// =============================================================================
// TestAddRating
// =============================================================================

func (s *RatingSuite) TestAddRating() {
	s.Run("Error case: no past booking means no rating, until one exists", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		url := fmt.Sprintf(venueRatingsURL, venueID)
		body := request.CreateRatingRequest{Score: 4, Comment: "good"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "Forbidden:NoEligibleBooking")

		// A booking today is not yet eligible.
		dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: venueID, SportID: sportID,
			Date: time.Now().UTC().Truncate(24 * time.Hour),
		})
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "Forbidden:NoEligibleBooking")

		dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: venueID, SportID: sportID, Date: yesterday(), Start: "08:00", End: "09:00",
		})
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, player.Token)
		var res response.RatingMutationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, 4, res.Rating.Score)
		require.Equal(t, "good", res.Rating.Comment)
		require.False(t, res.AggregateStale)
		require.NotNil(t, res.Aggregate)
		require.Equal(t, 1, res.Aggregate.TotalRatings)
	})

	s.Run("Error case: cancelled past booking does not count", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		player := s.Auth.NewPrincipal(t, user.RolePlayer)
		dbtest.InsertBooking(t, s.DB, dbtest.BookingRow{
			UserID: player.ID, VenueID: venueID, SportID: sportID, Date: yesterday(), Status: "cancelled",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(venueRatingsURL, venueID),
			request.CreateRatingRequest{Score: 2}, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "Forbidden:NoEligibleBooking")
	})

	s.Run("Error case: second rating for the same venue conflicts", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		player := s.eligiblePlayer(t, venueID, sportID)

		s.addRating(t, player, venueID, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(venueRatingsURL, venueID),
			request.CreateRatingRequest{Score: 1, Comment: "changed my mind"}, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "Conflict:AlreadyRated")

		_, total, _ := dbtest.VenueAggregate(t, s.DB, venueID)
		require.Equal(t, 1, total)
	})

	s.Run("Error case: score and comment validation", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		player := s.eligiblePlayer(t, venueID, sportID)
		url := fmt.Sprintf(venueRatingsURL, venueID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CreateRatingRequest{Score: 6}, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "Invalid:Score")

		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateRatingRequest{Score: 3, Comment: string(long)}, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "Invalid:Comment")
	})

	s.Run("Error case: unknown venue", func() {
		t := s.T()
		player := s.Auth.NewPrincipal(t, user.RolePlayer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(venueRatingsURL, uuid.New()),
			request.CreateRatingRequest{Score: 3}, player.Token)
		httptest.AssertErrorKind(t, w, http.StatusNotFound, "NotFound:Venue")
	})
}

// =============================================================================
// TestAggregate
// =============================================================================

func (s *RatingSuite) TestAggregate() {
	s.Run("Normal case: aggregate follows adds and deletes", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)

		players := make([]authtest.Principal, 3)
		ratingIDs := make([]uuid.UUID, 3)
		for i, score := range []int{5, 3, 4} {
			players[i] = s.eligiblePlayer(t, venueID, sportID)
			ratingIDs[i] = s.addRating(t, players[i], venueID, score).Rating.ID
		}

		agg := s.aggregate(t, venueID)
		require.InDelta(t, 4.0, agg.AverageRating, 0.0001)
		require.Equal(t, 3, agg.TotalRatings)
		require.False(t, agg.Stale)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(ratingURL, ratingIDs[1]), nil, players[1].Token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		agg = s.aggregate(t, venueID)
		require.InDelta(t, 4.5, agg.AverageRating, 0.0001)
		require.Equal(t, 2, agg.TotalRatings)

		for _, i := range []int{0, 2} {
			w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(ratingURL, ratingIDs[i]), nil, players[i].Token)
			require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		}

		agg = s.aggregate(t, venueID)
		require.Zero(t, agg.AverageRating)
		require.Zero(t, agg.TotalRatings)
	})

	s.Run("Normal case: update recomputes the aggregate", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		a := s.eligiblePlayer(t, venueID, sportID)
		b := s.eligiblePlayer(t, venueID, sportID)

		first := s.addRating(t, a, venueID, 2)
		s.addRating(t, b, venueID, 5)

		score := 3
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(ratingURL, first.Rating.ID),
			request.UpdateRatingRequest{Score: &score}, a.Token)
		var res response.RatingMutationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 3, res.Rating.Score)
		require.NotNil(t, res.Aggregate)
		require.InDelta(t, 4.0, res.Aggregate.AverageRating, 0.0001)
	})

	s.Run("Error case: another user's rating looks missing", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		author := s.eligiblePlayer(t, venueID, sportID)
		other := s.Auth.NewPrincipal(t, user.RolePlayer)

		r := s.addRating(t, author, venueID, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(ratingURL, r.Rating.ID), nil, other.Token)
		httptest.AssertErrorKind(t, w, http.StatusNotFound, "NotFound:Rating")

		admin := s.Auth.NewPrincipal(t, user.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(ratingURL, r.Rating.ID), nil, admin.Token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Normal case: admin repair clears a stale flag", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		admin := s.Auth.NewPrincipal(t, user.RoleAdmin)
		s.addRating(t, s.eligiblePlayer(t, venueID, sportID), venueID, 5)

		_, err := s.DB.Exec(t.Context(), "UPDATE venues SET rating_stale = true, average_rating = 0, total_ratings = 0 WHERE id = $1", venueID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(repairURL, venueID), nil, admin.Token)
		var res response.VenueRatingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.InDelta(t, 5.0, res.AverageRating, 0.0001)
		require.Equal(t, 1, res.TotalRatings)

		avg, total, stale := dbtest.VenueAggregate(t, s.DB, venueID)
		require.InDelta(t, 5.0, avg, 0.0001)
		require.Equal(t, 1, total)
		require.False(t, stale)
	})
}

// =============================================================================
// TestListRatings
// =============================================================================

func (s *RatingSuite) TestListRatings() {
	s.Run("Normal case: keyset pagination walks every rating once", func() {
		t := s.T()
		venueID, sportID := s.newVenue(t)
		for _, score := range []int{1, 2, 3, 4, 5} {
			s.addRating(t, s.eligiblePlayer(t, venueID, sportID), venueID, score)
		}

		seen := map[uuid.UUID]bool{}
		url := fmt.Sprintf(venueRatingsURL, venueID) + "?limit=2"
		for range 5 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
			var page response.RatingListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			require.LessOrEqual(t, len(page.Items), 2)
			for _, r := range page.Items {
				require.False(t, seen[r.ID], "rating %s returned twice", r.ID)
				seen[r.ID] = true
				require.Equal(t, "nice lighting", r.Comment)
			}
			if page.NextCursor == nil {
				break
			}
			url = fmt.Sprintf(venueRatingsURL, venueID) + "?limit=2&after=" + *page.NextCursor
		}
		require.Len(t, seen, 5)
	})
}
