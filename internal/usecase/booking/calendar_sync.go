package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Invalidator drops cached availability for the day of start.
type Invalidator interface {
	Invalidate(ctx context.Context, start time.Time)
}

type calendarSync struct {
	store   *domain.Store
	gateway calendar.Gateway
	audit   *audit.Dispatcher
	log     *logrus.Logger
}

// sync pushes a pending booking to the calendar and confirms it. A calendar
// failure leaves the booking pending and is not returned. When the event is
// created but the booking cannot be confirmed, the event is removed again so
// no calendar entry exists without a booking pointing at it.
func (s *calendarSync) sync(ctx context.Context, b *models.Booking) error {
	eventID, err := s.gateway.CreateEvent(ctx, calendar.EventInput{
		Title:         EventTitle(b),
		Start:         b.StartDatetime,
		End:           b.EndDatetime,
		AttendeeEmail: b.ClientEmail,
		AttendeeName:  b.ClientName,
		Description:   EventDescription(b),
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"confirmation_code": b.ConfirmationCode,
			"source":            b.Source,
		}).WithError(err).Warn("calendar sync failed, booking left pending")

		s.audit.Dispatch(audit.Event{
			Action:    "calendar_sync_failed",
			Entity:    "booking",
			EntityRef: b.ConfirmationCode,
			Metadata:  map[string]string{"error": err.Error()},
		})
		return nil
	}

	if err := s.store.SetConfirmed(ctx, b, eventID); err != nil {
		s.removeOrphan(ctx, b, eventID, err)
		return err
	}

	s.log.WithFields(logrus.Fields{
		"confirmation_code": b.ConfirmationCode,
		"source":            b.Source,
		"event_id":          eventID,
	}).Info("calendar event created")

	s.audit.Dispatch(audit.Event{
		Action:    "booking_confirmed",
		Entity:    "booking",
		EntityRef: b.ConfirmationCode,
	})
	return nil
}

func (s *calendarSync) removeOrphan(ctx context.Context, b *models.Booking, eventID string, cause error) {
	fields := logrus.Fields{
		"confirmation_code": b.ConfirmationCode,
		"event_id":          eventID,
	}
	meta := map[string]string{"event_id": eventID, "error": cause.Error()}

	if s.gateway.DeleteEvent(ctx, eventID) {
		s.log.WithFields(fields).WithError(cause).Warn("booking not confirmed, calendar event removed")
		s.audit.Dispatch(audit.Event{
			Action:    "calendar_orphan_removed",
			Entity:    "booking",
			EntityRef: b.ConfirmationCode,
			Metadata:  meta,
		})
		return
	}

	s.log.WithFields(fields).WithError(cause).Error("booking not confirmed, calendar event left behind")
	s.audit.Dispatch(audit.Event{
		Action:    "calendar_orphan_remove_failed",
		Entity:    "booking",
		EntityRef: b.ConfirmationCode,
		Metadata:  meta,
	})
}

func EventTitle(b *models.Booking) string {
	prefix := ""
	if domain.Source(b.Source) == domain.SourceVoucher {
		prefix = "[VOUCHER] "
	}
	return fmt.Sprintf("%s%s - %s", prefix, b.Service.TitleEn, b.ClientName)
}

func EventDescription(b *models.Booking) string {
	lines := []string{
		"Booking Details:",
		fmt.Sprintf("- Service: %s (%d min)", b.Service.TitleEn, b.Service.DurationMinutes),
		fmt.Sprintf("- Client: %s", b.ClientName),
		fmt.Sprintf("- Email: %s", b.ClientEmail),
		fmt.Sprintf("- Phone: %s", b.ClientPhone),
		fmt.Sprintf("- Confirmation Code: %s", b.ConfirmationCode),
		fmt.Sprintf("- Source: %s", b.Source),
	}
	if b.VoucherCode != "" {
		lines = append(lines, fmt.Sprintf("- Voucher Code: %s", b.VoucherCode))
	}

	notes := b.ClientNotes
	if notes == "" {
		notes = "N/A"
	}
	lines = append(lines, "\nNotes: "+notes)

	return strings.Join(lines, "\n")
}
