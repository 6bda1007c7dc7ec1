package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
)

type CalendarGatewayMock struct {
	lock sync.Mutex

	BusyDays      []string
	BusyIntervals []availability.Interval
	EventID       string
	CreateErr     error
	DeleteOK      bool

	// OnCreate runs before CreateEvent answers, outside the mock's lock.
	OnCreate func(calendar.EventInput)

	BusyDaysCalls      int
	BusyIntervalsCalls int
	Created            []calendar.EventInput
	Deleted            []string
}

var _ calendar.Gateway = (*CalendarGatewayMock)(nil)

func (m *CalendarGatewayMock) ListBusyDays(_ context.Context, _ int, _ time.Month) []string {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.BusyDaysCalls++
	return append([]string{}, m.BusyDays...)
}

func (m *CalendarGatewayMock) ListBusyIntervals(_ context.Context, _, _ time.Time) []availability.Interval {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.BusyIntervalsCalls++
	return append([]availability.Interval{}, m.BusyIntervals...)
}

func (m *CalendarGatewayMock) CreateEvent(_ context.Context, in calendar.EventInput) (string, error) {
	if m.OnCreate != nil {
		m.OnCreate(in)
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.Created = append(m.Created, in)
	if m.CreateErr != nil {
		return "", &calendar.SyncError{Op: "create", Err: m.CreateErr}
	}
	return m.EventID, nil
}

func (m *CalendarGatewayMock) DeleteEvent(_ context.Context, eventID string) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Deleted = append(m.Deleted, eventID)
	return m.DeleteOK
}
