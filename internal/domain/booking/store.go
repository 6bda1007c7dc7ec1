package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const maxCodeAttempts = 5

type NewBooking struct {
	ServiceID uint
	Start     time.Time
	End       time.Time
	Source    Source

	ClientName        string
	ClientEmail       string
	ClientPhone       string
	ClientNotes       string
	PreferredLanguage string
	VoucherCode       string
}

// Store owns the booking record and its status rules.
type Store struct {
	repo     Repository
	services ServiceCatalog
	loc      *time.Location
	newCode  func() (string, error)
	now      func() time.Time
}

func NewStore(repo Repository, services ServiceCatalog, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{
		repo:     repo,
		services: services,
		loc:      loc,
		newCode:  GenerateConfirmationCode,
		now:      time.Now,
	}
}

// WithCodeGenerator replaces the confirmation code source.
func (s *Store) WithCodeGenerator(gen func() (string, error)) *Store {
	s.newCode = gen
	return s
}

// Create persists a pending booking with a fresh confirmation code. The
// service is attached to the returned booking.
func (s *Store) Create(ctx context.Context, in NewBooking) (*models.Booking, error) {
	svc, err := s.services.GetAvailableService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrServiceUnavailable
		}
		return nil, err
	}

	source := in.Source
	if source == "" {
		source = SourceOnline
	}
	if !source.Valid() {
		return nil, fmt.Errorf("unknown booking source %q", source)
	}

	voucher := ""
	if source == SourceVoucher {
		voucher = strings.TrimSpace(in.VoucherCode)
	}

	lang := in.PreferredLanguage
	if lang == "" {
		lang = "fr"
	}

	start := in.Start.In(s.loc)
	end := in.End.In(s.loc)
	if in.End.IsZero() {
		end = start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	}

	b := &models.Booking{
		ServiceID:         svc.ID,
		Service:           *svc,
		StartDatetime:     start,
		EndDatetime:       end,
		Status:            string(StatusPending),
		Source:            string(source),
		ClientName:        in.ClientName,
		ClientEmail:       in.ClientEmail,
		ClientPhone:       in.ClientPhone,
		ClientNotes:       in.ClientNotes,
		PreferredLanguage: lang,
		VoucherCode:       voucher,
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, err
		}
		b.ConfirmationCode = code

		err = s.repo.Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrDuplicateCode) {
			return nil, err
		}
	}

	return nil, ErrCodeGenerationExhausted
}

func (s *Store) SetConfirmed(ctx context.Context, b *models.Booking, eventID string) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}
	return s.transition(ctx, b, StatusConfirmed, eventID)
}

func (s *Store) SetCancelled(ctx context.Context, b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}
	return s.transition(ctx, b, StatusCancelled, "")
}

func (s *Store) transition(ctx context.Context, b *models.Booking, to Status, eventID string) error {
	from := Status(b.Status)
	now := s.now()

	ok, err := s.repo.UpdateStatus(ctx, b.ID, from, to, eventID, now)
	if err != nil {
		return err
	}
	if !ok {
		// Someone else moved the row first; report what it is now.
		current, err := s.repo.FindByConfirmationCode(ctx, b.ConfirmationCode)
		if err == nil {
			from = Status(current.Status)
		}
		return ErrInvalidTransition(fmt.Sprintf("Cannot %s %s booking", verb(to), from))
	}

	b.Status = string(to)
	if eventID != "" {
		b.CalendarEventID = eventID
	}
	b.UpdatedAt = now
	return nil
}

func verb(to Status) string {
	if to == StatusConfirmed {
		return "confirm"
	}
	return "cancel"
}

func (s *Store) FindByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	b, err := s.repo.FindByConfirmationCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.repo.ListAll(ctx)
}

func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.repo.ListByEmail(ctx, strings.TrimSpace(email))
}
