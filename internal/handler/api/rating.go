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

type RatingHandler struct {
	cmds commands.RatingCommands
	q    queries.RatingQueries
}

func NewRatingHandler(cmds commands.RatingCommands, q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{cmds: cmds, q: q}
}

// @Summary Rate a venue
// @Description Requires a past confirmed or completed booking at the venue; one rating per user and venue
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.CreateRatingRequest true "Score and comment"
// @Success 201 {object} resdto.RatingMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /venues/{id}/ratings [post]
func (h *RatingHandler) Create(c *gin.Context) {
	venueID, ok := pathID(c)
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.AddRating(c.Request.Context(), a.ID, venueID, req.Score, req.Comment)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRatingResult(result))
}

// @Summary List venue ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Venue ID"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.RatingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/ratings [get]
func (h *RatingHandler) List(c *gin.Context) {
	venueID, ok := pathID(c)
	if !ok {
		return
	}
	params, ok := listParams(c)
	if !ok {
		return
	}
	views, next, err := h.q.ListVenueRatings(c.Request.Context(), venueID, params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingViews(views, next))
}

// @Summary Get venue rating
// @Tags ratings
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueRatingResponse
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/rating [get]
func (h *RatingHandler) Aggregate(c *gin.Context) {
	venueID, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetVenueAggregate(c.Request.Context(), venueID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueRatingView(view))
}

// @Summary Update own rating
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Param request body reqdto.UpdateRatingRequest true "Fields to change"
// @Success 200 {object} resdto.RatingMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /ratings/{id} [put]
func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.UpdateRating(c.Request.Context(), id, a.ID, req.Score, req.Comment)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingResult(result))
}

// @Summary Delete rating
// @Description Delete own rating (admins can delete any)
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /ratings/{id} [delete]
func (h *RatingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	if _, err := h.cmds.DeleteRating(c.Request.Context(), id, a); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
