package api

import (
	"net/http"

	reqdto "court-reservation/internal/handler/dto/request"
	resdto "court-reservation/internal/handler/dto/response"
	"court-reservation/internal/handler/httperr"
	"court-reservation/internal/usecase/commands"
	"court-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookings commands.BookingCommands
	ratings  commands.RatingCommands
	q        queries.BookingQueries
}

func NewAdminHandler(bookings commands.BookingCommands, ratings commands.RatingCommands, q queries.BookingQueries) *AdminHandler {
	return &AdminHandler{bookings: bookings, ratings: ratings, q: q}
}

// @Summary List all bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(confirmed, cancelled, completed, no-show)
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}
	views, next, err := h.q.ListAll(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views, next))
}

// @Summary Override booking status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AdminStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id}/status [put]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.AdminStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.bookings.AdminSetStatus(c.Request.Context(), id, a.ID, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Complete past bookings
// @Description Marks every confirmed booking dated before today as completed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CompletePastResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings/complete-past [post]
func (h *AdminHandler) CompletePast(c *gin.Context) {
	n, err := h.bookings.CompletePastBookings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CompletePastResponse{Completed: n})
}

// @Summary Repair venue rating
// @Description Recomputes the venue rating aggregate from its ratings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueRatingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/venues/{id}/rating/repair [post]
func (h *AdminHandler) RepairVenueRating(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.ratings.RepairVenueAggregate(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueRatingView(view))
}
