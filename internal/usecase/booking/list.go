package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListBookings struct {
	store *domain.Store
}

func NewListBookings(store *domain.Store) *ListBookings {
	return &ListBookings{store: store}
}

// Execute lists every booking, newest first, or only those of email.
func (uc *ListBookings) Execute(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	if strings.TrimSpace(email) == "" {
		return uc.store.ListAll(ctx)
	}
	return uc.store.ListByEmail(ctx, email)
}

type GetBooking struct {
	store *domain.Store
}

func NewGetBooking(store *domain.Store) *GetBooking {
	return &GetBooking{store: store}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	code string,
) (*models.Booking, error) {
	return uc.store.FindByConfirmationCode(ctx, code)
}
