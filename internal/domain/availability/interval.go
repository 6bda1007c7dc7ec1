package availability

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(other Interval) bool {
	return IntervalsOverlap(i.Start, i.End, other.Start, other.End)
}

// IntervalsOverlap reports whether [aStart, aEnd) and [bStart, bEnd) share
// any instant. Touching intervals do not overlap.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aEnd.After(bStart) || !aStart.Before(bEnd) {
		return false
	}
	return true
}

// EnumerateSlots walks the window from dayStart in steps of slot and returns
// the start of every slot that fits before dayEnd and overlaps none of busy.
func EnumerateSlots(
	dayStart time.Time,
	dayEnd time.Time,
	slot time.Duration,
	busy []Interval,
) []time.Time {

	slots := []time.Time{}
	if slot <= 0 || !dayEnd.After(dayStart) {
		return slots
	}

	for cur := dayStart; !cur.Add(slot).After(dayEnd); cur = cur.Add(slot) {
		candidate := Interval{Start: cur, End: cur.Add(slot)}

		free := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, cur)
		}
	}

	return slots
}

// WorkingWindow returns the business-hours window of date in loc.
func WorkingWindow(date time.Time, startHour, endHour int, loc *time.Location) (time.Time, time.Time) {
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), startHour, 0, 0, 0, loc)
	end := time.Date(d.Year(), d.Month(), d.Day(), endHour, 0, 0, 0, loc)
	return start, end
}
