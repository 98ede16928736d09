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

type OwnerHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewOwnerHandler(cmds commands.BookingCommands, q queries.BookingQueries) *OwnerHandler {
	return &OwnerHandler{cmds: cmds, q: q}
}

// @Summary List bookings at my venues
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(confirmed, cancelled, completed, no-show)
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owner/bookings [get]
func (h *OwnerHandler) ListBookings(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	params, ok := listParams(c)
	if !ok {
		return
	}
	views, next, err := h.q.ListForOwner(c.Request.Context(), a.ID, params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views, next))
}

// @Summary Cancel a booking at my venue
// @Description Only future or same-day bookings can be cancelled by the owner
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.OwnerCancelRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/bookings/{id}/cancel [post]
func (h *OwnerHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.OwnerCancelRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.CancelByOwner(c.Request.Context(), id, a.ID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
