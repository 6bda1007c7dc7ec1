package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// Create must report ErrDuplicateCode when the confirmation code is taken.
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	FindByConfirmationCode(
		ctx context.Context,
		code string,
	) (*models.Booking, error)

	ListAll(ctx context.Context) ([]models.Booking, error)

	ListByEmail(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	// UpdateStatus moves one booking from -> to, setting calendarEventID
	// when non-empty. It reports false when the row was no longer in from.
	UpdateStatus(
		ctx context.Context,
		id uint,
		from Status,
		to Status,
		calendarEventID string,
		at time.Time,
	) (bool, error)
}

type ServiceCatalog interface {
	// GetAvailableService returns ErrNotFound for unknown or unavailable ids.
	GetAvailableService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)
}
