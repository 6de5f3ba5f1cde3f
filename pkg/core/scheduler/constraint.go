// Package scheduler implements the core assignment engine: the pure,
// I/O-free pipeline from a sanitised event/person set to a ranked set of
// candidate schedules.
package scheduler

import (
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// CanAttend reports whether p may be assigned to e given their availability,
// remaining event limit, and minimum spacing from events already assigned to
// them in this evaluation.
func CanAttend(p *model.Person, e *model.Event) bool {
	if !p.Available(e.ID) {
		return false
	}
	if p.NumEventsThisPeriod >= p.EventLimit {
		return false
	}
	if p.MinIntervalDays > 0 {
		for _, d := range p.AssignedEventDates {
			if dayDistance(d, e.Date) < p.MinIntervalDays {
				return false
			}
		}
	}
	return true
}

// dayDistance is the whole-calendar-day distance between two timestamps,
// ignoring time-of-day so that two events on the same date are always zero
// days apart.
func dayDistance(a, b time.Time) int {
	day := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	diff := day(b).Sub(day(a))
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
