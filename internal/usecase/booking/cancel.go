package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CancelBooking struct {
	store       *domain.Store
	gateway     calendar.Gateway
	invalidator Invalidator
	audit       *audit.Dispatcher
	log         *logrus.Logger
}

func NewCancelBooking(
	store *domain.Store,
	gateway calendar.Gateway,
	invalidator Invalidator,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CancelBooking {
	return &CancelBooking{
		store:       store,
		gateway:     gateway,
		invalidator: invalidator,
		audit:       audit,
		log:         log,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	code string,
) (*models.Booking, error) {

	b, err := uc.store.FindByConfirmationCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"confirmation_code": b.ConfirmationCode,
		"event_id":          b.CalendarEventID,
	}

	// The conditional transition decides which caller owns the event removal.
	if err := uc.store.SetCancelled(ctx, b); err != nil {
		return nil, err
	}

	if b.CalendarEventID != "" && !uc.gateway.DeleteEvent(ctx, b.CalendarEventID) {
		uc.log.WithFields(fields).Warn("calendar event not removed, booking cancelled locally")
		uc.audit.Dispatch(audit.Event{
			Action:    "calendar_delete_failed",
			Entity:    "booking",
			EntityRef: b.ConfirmationCode,
			Metadata:  map[string]string{"event_id": b.CalendarEventID},
		})
	}

	uc.log.WithFields(fields).Info("booking cancelled")
	uc.audit.Dispatch(audit.Event{
		Action:    "booking_cancelled",
		Entity:    "booking",
		EntityRef: b.ConfirmationCode,
	})

	uc.invalidator.Invalidate(ctx, b.StartDatetime)

	return b, nil
}
