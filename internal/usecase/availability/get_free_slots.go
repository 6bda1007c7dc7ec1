package availability

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// BusinessHours is the daily grid slots are cut from.
type BusinessHours struct {
	StartHour int
	EndHour   int
	Slot      time.Duration
	Location  *time.Location
}

type GetFreeSlots struct {
	gateway calendar.Gateway
	cache   cache.Cache
	hours   BusinessHours
	ttl     time.Duration
	log     *logrus.Logger
}

func NewGetFreeSlots(
	gateway calendar.Gateway,
	c cache.Cache,
	hours BusinessHours,
	ttl time.Duration,
	log *logrus.Logger,
) *GetFreeSlots {
	if hours.Location == nil {
		hours.Location = time.UTC
	}
	return &GetFreeSlots{
		gateway: gateway,
		cache:   c,
		hours:   hours,
		ttl:     ttl,
		log:     log,
	}
}

// Execute returns the free slot start times ("HH:MM") of date.
func (uc *GetFreeSlots) Execute(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	loc := uc.hours.Location
	key := cache.FreeSlotsKey(timezone.DateKey(date, loc))

	var times []string
	err := cache.GetJSON(ctx, uc.cache, key, &times)
	if err == nil {
		return times, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.log.WithField("key", key).WithError(err).Warn("cache read failed, computing free slots")
	}

	dayStart, dayEnd := domain.WorkingWindow(date, uc.hours.StartHour, uc.hours.EndHour, loc)
	busy := uc.gateway.ListBusyIntervals(ctx, dayStart, dayEnd)

	slots := domain.EnumerateSlots(dayStart, dayEnd, uc.hours.Slot, busy)

	times = make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.In(loc).Format("15:04"))
	}

	if err := cache.SetJSON(ctx, uc.cache, key, times, uc.ttl); err != nil {
		uc.log.WithField("key", key).WithError(err).Warn("cache write failed")
	}

	return times, nil
}
