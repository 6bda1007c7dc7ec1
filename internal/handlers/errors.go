package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// writeError maps business errors to their HTTP status; anything else is a 500.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case httperr.IsBusiness(err, domain.CodeServiceUnavailable):
		httperr.NotFound(c, domain.CodeServiceUnavailable, httperr.Message(err, "Service not found or unavailable"))
	case httperr.IsBusiness(err, domain.CodeBookingNotFound):
		httperr.NotFound(c, domain.CodeBookingNotFound, httperr.Message(err, "Booking not found"))
	case httperr.IsBusiness(err, domain.CodeInvalidStateTransition):
		httperr.BadRequest(c, domain.CodeInvalidStateTransition, httperr.Message(err, "Invalid booking status"))
	case httperr.IsBusiness(err, domain.CodeCodeGenerationExhausted):
		httperr.Internal(c, domain.CodeCodeGenerationExhausted, httperr.Message(err, "Could not create booking"))
	default:
		httperr.Write(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
