package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
)

var (
	ErrCredentialsUnavailable = errors.New("calendar credentials unavailable")
	ErrEventNotFound          = errors.New("calendar event not found")
)

// Gateway is the only path to the external calendar. Reads degrade to empty
// results; writes report failures as *SyncError.
type Gateway interface {
	ListBusyDays(ctx context.Context, year int, month time.Month) []string
	ListBusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) []availability.Interval
	CreateEvent(ctx context.Context, in EventInput) (string, error)
	DeleteEvent(ctx context.Context, eventID string) bool
}

type EventInput struct {
	Title         string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	AttendeeName  string
	Description   string
}

// Event is a calendar entry as seen by the gateway. All-day events carry
// their date in Date and zero Start/End.
type Event struct {
	ID     string
	AllDay bool
	Date   string
	Start  time.Time
	End    time.Time
}

// EventSource is the raw provider API behind Client.
type EventSource interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error)
	InsertEvent(ctx context.Context, in EventInput) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("calendar %s: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
