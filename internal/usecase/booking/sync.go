package booking

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// SyncBooking retries the calendar push for a booking left pending.
type SyncBooking struct {
	calendarSync
	invalidator Invalidator
}

func NewSyncBooking(
	store *domain.Store,
	gateway calendar.Gateway,
	invalidator Invalidator,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *SyncBooking {
	return &SyncBooking{
		calendarSync: calendarSync{
			store:   store,
			gateway: gateway,
			audit:   audit,
			log:     log,
		},
		invalidator: invalidator,
	}
}

func (uc *SyncBooking) Execute(
	ctx context.Context,
	code string,
) (*models.Booking, error) {

	b, err := uc.store.FindByConfirmationCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if domain.Status(b.Status) != domain.StatusPending || b.CalendarEventID != "" {
		return nil, domain.ErrInvalidTransition(fmt.Sprintf("Cannot sync %s booking", b.Status))
	}

	if err := uc.sync(ctx, b); err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(ctx, b.StartDatetime)

	return b, nil
}
