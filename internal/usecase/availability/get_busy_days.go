package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
)

type GetBusyDays struct {
	gateway calendar.Gateway
	cache   cache.Cache
	ttl     time.Duration
	log     *logrus.Logger
}

func NewGetBusyDays(
	gateway calendar.Gateway,
	c cache.Cache,
	ttl time.Duration,
	log *logrus.Logger,
) *GetBusyDays {
	return &GetBusyDays{
		gateway: gateway,
		cache:   c,
		ttl:     ttl,
		log:     log,
	}
}

// Execute returns the YYYY-MM-DD dates of the month that carry at least one
// calendar event.
func (uc *GetBusyDays) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) ([]string, error) {

	key := cache.BusyDaysKey(year, month)

	var days []string
	err := cache.GetJSON(ctx, uc.cache, key, &days)
	if err == nil {
		return days, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.log.WithField("key", key).WithError(err).Warn("cache read failed, computing busy days")
	}

	days = uc.gateway.ListBusyDays(ctx, year, month)
	if days == nil {
		days = []string{}
	}
	sort.Strings(days)

	if err := cache.SetJSON(ctx, uc.cache, key, days, uc.ttl); err != nil {
		uc.log.WithField("key", key).WithError(err).Warn("cache write failed")
	}

	return days, nil
}
