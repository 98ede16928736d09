package api

import (
	"net/http"
	"strconv"

	"court-reservation/internal/handler/httperr"
	"court-reservation/internal/handler/middleware"
	"court-reservation/internal/pkg/errs"
	"court-reservation/internal/usecase/queries"
	"court-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrInvalidID    = errs.NewKind(errs.KindInvalidRequest, "invalid id")
	ErrInvalidLimit = errs.NewKind(errs.KindInvalidRequest, "limit must be a positive integer")
	ErrInvalidBody  = errs.NewKind(errs.KindInvalidRequest, "invalid request body")
	errNoActor      = errs.NewKind(errs.KindUnauthorized, "unauthorized")
)

// pathID parses the :id route parameter, aborting the request on failure.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, errs.Wrap(ErrInvalidID, c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

func actor(c *gin.Context) (shared.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, errNoActor)
		return shared.Actor{}, false
	}
	return a, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(ErrInvalidBody, err.Error()), "Invalid request", nil)
		return false
	}
	return true
}

func listParams(c *gin.Context) (queries.ListParams, bool) {
	p := queries.ListParams{
		Status: c.Query("status"),
		After:  c.Query("after"),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httperr.Abort(c, errs.Wrapf(ErrInvalidLimit, "limit %q", raw))
			return queries.ListParams{}, false
		}
		p.Limit = n
	}
	return p, true
}
