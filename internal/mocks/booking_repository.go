package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// BookingRepositoryMock is an in-memory booking.Repository.
type BookingRepositoryMock struct {
	lock sync.Mutex

	rows   []models.Booking
	nextID uint

	// DuplicateCodes makes Create reject these codes as already taken.
	DuplicateCodes map[string]bool
	CreateErr      error
	Creates        int
}

func NewBookingRepositoryMock() *BookingRepositoryMock {
	return &BookingRepositoryMock{DuplicateCodes: map[string]bool{}}
}

var _ booking.Repository = (*BookingRepositoryMock)(nil)

func (m *BookingRepositoryMock) Create(_ context.Context, b *models.Booking) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Creates++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.DuplicateCodes[b.ConfirmationCode] {
		return booking.ErrDuplicateCode
	}
	for _, r := range m.rows {
		if r.ConfirmationCode == b.ConfirmationCode {
			return booking.ErrDuplicateCode
		}
	}

	m.nextID++
	b.ID = m.nextID
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now.Add(time.Duration(m.nextID) * time.Millisecond)
	}
	b.UpdatedAt = b.CreatedAt
	m.rows = append(m.rows, *b)
	return nil
}

func (m *BookingRepositoryMock) FindByConfirmationCode(_ context.Context, code string) (*models.Booking, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, r := range m.rows {
		if r.ConfirmationCode == code {
			cp := r
			return &cp, nil
		}
	}
	return nil, booking.ErrNotFound
}

func (m *BookingRepositoryMock) ListAll(_ context.Context) ([]models.Booking, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.sorted(func(models.Booking) bool { return true }), nil
}

func (m *BookingRepositoryMock) ListByEmail(_ context.Context, email string) ([]models.Booking, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.sorted(func(b models.Booking) bool {
		return strings.EqualFold(b.ClientEmail, email)
	}), nil
}

func (m *BookingRepositoryMock) sorted(keep func(models.Booking) bool) []models.Booking {
	out := []models.Booking{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *BookingRepositoryMock) UpdateStatus(
	_ context.Context,
	id uint,
	from booking.Status,
	to booking.Status,
	calendarEventID string,
	at time.Time,
) (bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for i := range m.rows {
		if m.rows[i].ID != id || m.rows[i].Status != string(from) {
			continue
		}
		m.rows[i].Status = string(to)
		if calendarEventID != "" {
			m.rows[i].CalendarEventID = calendarEventID
		}
		m.rows[i].UpdatedAt = at
		return true, nil
	}
	return false, nil
}

// ForceStatus changes a stored row behind the store's back.
func (m *BookingRepositoryMock) ForceStatus(code string, status booking.Status) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for i := range m.rows {
		if m.rows[i].ConfirmationCode == code {
			m.rows[i].Status = string(status)
		}
	}
}

// ServiceCatalogMock serves a fixed set of services.
type ServiceCatalogMock struct {
	lock     sync.Mutex
	Services map[uint]models.Service
}

var _ booking.ServiceCatalog = (*ServiceCatalogMock)(nil)

func NewServiceCatalogMock(services ...models.Service) *ServiceCatalogMock {
	m := &ServiceCatalogMock{Services: map[uint]models.Service{}}
	for _, s := range services {
		m.Services[s.ID] = s
	}
	return m
}

func (m *ServiceCatalogMock) GetAvailableService(_ context.Context, id uint) (*models.Service, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	s, ok := m.Services[id]
	if !ok || !s.IsAvailable {
		return nil, booking.ErrNotFound
	}
	return &s, nil
}
