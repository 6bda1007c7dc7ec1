package booking

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Booking Source
// ===============================

type Source string

const (
	SourceOnline  Source = "online"
	SourceVoucher Source = "voucher"
	SourceManual  Source = "manual"
)

func (s Source) Valid() bool {
	switch s {
	case SourceOnline, SourceVoucher, SourceManual:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return ErrInvalidTransition(fmt.Sprintf("Cannot confirm %s booking", current))
	}
	return nil
}

// CanCancel allows pending and confirmed bookings only.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return ErrInvalidTransition(fmt.Sprintf("Cannot cancel %s booking", current))
	}
	return nil
}

func ErrInvalidTransition(message string) error {
	return httperr.ErrBusinessf(CodeInvalidStateTransition, message)
}
