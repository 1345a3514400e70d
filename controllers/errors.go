package controllers

import (
	"errors"
	"net/http"

	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/repository"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps service and API errors onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMissingPaymentMethod),
		errors.Is(err, services.ErrInvalidOrderType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOrderClosed),
		errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownStatus):
		return http.StatusBadRequest
	}

	if ae, ok := repository.AsAPIError(err); ok {
		switch ae.Status {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
			return ae.Status
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	msg := err.Error()
	switch code := statusFor(err); code {
	case http.StatusBadRequest:
		resp.BadRequest(c, msg)
	case http.StatusUnauthorized:
		resp.Unauthorized(c, msg)
	case http.StatusNotFound:
		resp.NotFound(c, msg)
	case http.StatusConflict:
		resp.Conflict(c, msg)
	case http.StatusUnprocessableEntity:
		resp.Unprocessable(c, msg)
	default:
		resp.Status(c, code, msg)
	}
}

// idParam parses a positive numeric path parameter, answering 400 itself
// when it is not one.
func idParam(c *gin.Context, name string) (uint, bool) {
	n := utils.ParseUint(c.Param(name))
	if n == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return n, true
}
