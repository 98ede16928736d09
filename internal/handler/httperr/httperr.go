package httperr

import (
	"errors"
	"net/http"
	"strings"

	"court-reservation/internal/domain/booking"
	"court-reservation/internal/domain/timeslot"
	"court-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = errs.KindOf(err).String()
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort derives status, message and detail from the error's kind. Errors
// without a kind become a generic 500.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, messageOf(err), detailOf(err))
}

func StatusOf(kind errs.Kind) int {
	k := kind.String()
	switch {
	case kind == errs.KindUnauthorized:
		return http.StatusUnauthorized
	case strings.HasPrefix(k, "NotFound"):
		return http.StatusNotFound
	case strings.HasPrefix(k, "Invalid"):
		return http.StatusBadRequest
	case strings.HasPrefix(k, "Forbidden"):
		return http.StatusForbidden
	case strings.HasPrefix(k, "Conflict"):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageOf returns the sentinel's text, dropping wrap context that may carry ids.
func messageOf(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := e.(interface{ Kind() errs.Kind }); ok {
			return e.Error()
		}
	}
	return err.Error()
}

func detailOf(err error) any {
	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		return gin.H{
			"court": conflict.Court,
			"date":  timeslot.FormatDate(conflict.Date),
			"time_slot": gin.H{
				"start": conflict.Window.Start().String(),
				"end":   conflict.Window.End().String(),
			},
		}
	}
	return nil
}
