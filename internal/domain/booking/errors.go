package booking

import (
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	CodeServiceUnavailable      = "service_unavailable"
	CodeBookingNotFound         = "booking_not_found"
	CodeInvalidStateTransition  = "invalid_state_transition"
	CodeCodeGenerationExhausted = "code_generation_exhausted"
)

var (
	ErrServiceUnavailable      = httperr.ErrBusinessf(CodeServiceUnavailable, "Service not found or unavailable")
	ErrBookingNotFound         = httperr.ErrBusinessf(CodeBookingNotFound, "Booking not found")
	ErrCodeGenerationExhausted = httperr.ErrBusinessf(CodeCodeGenerationExhausted, "Could not allocate a unique confirmation code")
)

// Repository-level sentinels, mapped to business errors by Store.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateCode = errors.New("confirmation code already taken")
)
