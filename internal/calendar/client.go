package calendar

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
)

type Client struct {
	source  EventSource
	loc     *time.Location
	timeout time.Duration
	log     *logrus.Logger
}

// NewClient builds a Gateway over source. A nil source means no credentials
// are configured: reads return empty and writes fail with
// ErrCredentialsUnavailable.
func NewClient(source EventSource, loc *time.Location, timeout time.Duration, log *logrus.Logger) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		source:  source,
		loc:     loc,
		timeout: timeout,
		log:     log,
	}
}

var _ Gateway = (*Client)(nil)

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) listEvents(ctx context.Context, op string, timeMin, timeMax time.Time) ([]Event, bool) {
	if c.source == nil {
		c.log.WithField("op", op).Error("no calendar credentials configured")
		return nil, false
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	events, err := c.source.ListEvents(ctx, timeMin, timeMax)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"op":       op,
			"time_min": timeMin.Format(time.RFC3339),
			"time_max": timeMax.Format(time.RFC3339),
		}).WithError(err).Error("calendar query failed")
		return nil, false
	}
	return events, true
}

func (c *Client) ListBusyDays(ctx context.Context, year int, month time.Month) []string {
	start := time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
	end := start.AddDate(0, 1, 0)

	events, ok := c.listEvents(ctx, "list_busy_days", start, end)
	if !ok {
		return []string{}
	}

	seen := make(map[string]struct{}, len(events))
	for _, ev := range events {
		var day string
		if ev.AllDay {
			day = ev.Date
		} else {
			day = ev.Start.In(c.loc).Format("2006-01-02")
		}
		if day != "" {
			seen[day] = struct{}{}
		}
	}

	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// ListBusyIntervals returns the timed events touching the window. All-day
// events are skipped.
func (c *Client) ListBusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) []availability.Interval {
	events, ok := c.listEvents(ctx, "list_busy_intervals", windowStart, windowEnd)
	if !ok {
		return []availability.Interval{}
	}

	busy := make([]availability.Interval, 0, len(events))
	for _, ev := range events {
		if ev.AllDay || ev.Start.IsZero() || ev.End.IsZero() {
			continue
		}
		busy = append(busy, availability.Interval{
			Start: ev.Start.In(c.loc),
			End:   ev.End.In(c.loc),
		})
	}
	return busy
}

func (c *Client) CreateEvent(ctx context.Context, in EventInput) (string, error) {
	if c.source == nil {
		return "", &SyncError{Op: "create", Err: ErrCredentialsUnavailable}
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	id, err := c.source.InsertEvent(ctx, in)
	if err != nil {
		return "", &SyncError{Op: "create", Err: err}
	}
	if id == "" {
		return "", &SyncError{Op: "create", Err: errors.New("provider returned empty event id")}
	}
	return id, nil
}

// DeleteEvent reports whether the event is gone. An event the provider no
// longer knows counts as deleted.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) bool {
	if c.source == nil {
		c.log.WithField("event_id", eventID).Error("no calendar credentials configured")
		return false
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err := c.source.DeleteEvent(ctx, eventID)
	if err == nil || errors.Is(err, ErrEventNotFound) {
		return true
	}

	c.log.WithField("event_id", eventID).
		WithError(&SyncError{Op: "delete", Err: err}).
		Error("calendar delete failed")
	return false
}
