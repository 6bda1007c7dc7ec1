package availability

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Invalidator drops the cached availability touched by a booking write.
type Invalidator struct {
	cache cache.Cache
	loc   *time.Location
	log   *logrus.Logger
}

func NewInvalidator(c cache.Cache, loc *time.Location, log *logrus.Logger) *Invalidator {
	if loc == nil {
		loc = time.UTC
	}
	return &Invalidator{cache: c, loc: loc, log: log}
}

// Invalidate removes the busy-days entry of the month and the slots entry of
// the day containing start. Failures are logged only.
func (i *Invalidator) Invalidate(ctx context.Context, start time.Time) {
	local := start.In(i.loc)

	keys := []string{
		cache.BusyDaysKey(local.Year(), local.Month()),
		cache.FreeSlotsKey(timezone.DateKey(local, i.loc)),
	}

	if err := i.cache.Delete(ctx, keys...); err != nil {
		i.log.WithField("keys", keys).WithError(err).Warn("cache invalidation failed")
	}
}
