package httperr

import (
	"errors"
	"net/http"

	"station-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
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
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// detailed is implemented by errors that carry a client-facing payload.
type detailed interface {
	Detail() any
}

// StatusOf maps the shared error taxonomy onto HTTP statuses.
func StatusOf(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrSlotConflict):
		return http.StatusConflict, "Selected stations are no longer available"
	case errs.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Reservation store is unavailable, please retry"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// AbortWithDomainError picks the status from err. Client errors expose the error text as detail.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusOf(err)

	var detail any
	var d detailed
	switch {
	case errors.As(err, &d):
		detail = d.Detail()
	case status < http.StatusInternalServerError:
		detail = err.Error()
	}

	AbortWithError(c, status, err, msg, detail)
}
