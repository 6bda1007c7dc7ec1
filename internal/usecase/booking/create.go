package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CreateBooking struct {
	calendarSync
	invalidator Invalidator
}

func NewCreateBooking(
	store *domain.Store,
	gateway calendar.Gateway,
	invalidator Invalidator,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CreateBooking {
	return &CreateBooking{
		calendarSync: calendarSync{
			store:   store,
			gateway: gateway,
			audit:   audit,
			log:     log,
		},
		invalidator: invalidator,
	}
}

// Execute stores the booking and then tries to place it on the calendar. The
// booking is returned even when the calendar is unreachable; it then stays
// pending.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.NewBooking,
) (*models.Booking, error) {

	b, err := uc.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"confirmation_code": b.ConfirmationCode,
		"source":            b.Source,
		"start":             b.StartDatetime,
	}).Info("booking created")

	uc.audit.Dispatch(audit.Event{
		Action:    "booking_created",
		Entity:    "booking",
		EntityRef: b.ConfirmationCode,
		Metadata: map[string]any{
			"source":     b.Source,
			"service_id": b.ServiceID,
			"start":      b.StartDatetime,
		},
	})

	if err := uc.sync(ctx, b); err != nil {
		uc.log.WithField("confirmation_code", b.ConfirmationCode).
			WithError(err).
			Error("could not record calendar confirmation")

		if current, err := uc.store.FindByConfirmationCode(ctx, b.ConfirmationCode); err == nil {
			b = current
		}
	}

	uc.invalidator.Invalidate(ctx, b.StartDatetime)

	return b, nil
}
