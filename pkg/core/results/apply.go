// Package results implements the Results Applier (§4.10): given a closed
// period's canonical member records and an authoritative attendance record,
// it produces the person-state vector the next period starts from.
package results

import (
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/scheduler"
)

// EventAttendance is one event's actual outcome, which may differ from what
// the scheduler chose (people can be added, removed, or switched roles by
// hand before the period's record is closed out).
type EventAttendance struct {
	EventID   model.EventID
	Date      time.Time
	Attendees []model.AttendeePair
}

// Apply reconstructs the next period's person vector. It never mutates the
// people slice passed in; it clones, applies the attendance record, resets
// priority to zero for everyone who actually attended, and runs the same
// Period Finaliser (§4.6) the per-ordering search uses.
func Apply(people []*model.Person, responded map[model.PersonID]bool, attendance []EventAttendance) []*model.Person {
	working := model.ClonePeople(people)
	byID := make(map[model.PersonID]*model.Person, len(working))
	for _, p := range working {
		p.ResetTransient()
		p.Responded = responded[p.ID]
		byID[p.ID] = p
	}

	for _, ev := range attendance {
		for _, pair := range ev.Attendees {
			p := byID[pair.PersonID]
			if p == nil {
				continue
			}
			p.RecordAttendance(ev.Date)
		}
	}

	for _, p := range working {
		if p.NumEventsThisPeriod >= 1 {
			p.Priority = 0
		}
	}

	return scheduler.Finalize(working)
}
