package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelease/booking/internal/payment"
	"github.com/travelease/booking/internal/repository"
	"github.com/travelease/booking/internal/service/booking"
)

// ErrorResponse is the shared error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, err error) {
	c.JSON(mapErrorToHTTPStatus(err), ErrorResponse{Error: err.Error()})
}

func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrIncompleteRequest),
		errors.Is(err, payment.ErrInvalidRequest),
		errors.Is(err, payment.ErrInvalidCard):
		return http.StatusBadRequest

	case errors.Is(err, booking.ErrPaymentDeclined):
		return http.StatusPaymentRequired

	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, booking.ErrCancellationInProgress):
		return http.StatusConflict

	case errors.Is(err, booking.ErrStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
