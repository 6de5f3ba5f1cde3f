package model

import "time"

// PersonID uniquely identifies a person across periods.
type PersonID int

// Person combines a member's durable identity, one period's response, and the
// cross-period fairness state (Priority, TotalAttended, Index) that the Period
// Finaliser and Results Applier evolve.
type Person struct {
	ID          PersonID
	FullName    string
	DisplayName string
	Email       string
	PrimaryRole Role
	Active      bool
	DateJoined  time.Time

	SwitchPref      SwitchPreference
	Availability    map[EventID]bool
	EventLimit      int
	MinIntervalDays int
	Responded       bool

	// Cross-period fairness state, advanced by the Period Finaliser (§4.6) and the
	// Results Applier (§4.10).
	Priority      int
	TotalAttended int
	Index         int

	// Transient per-evaluation state, reset at the start of each ordering by
	// ResetTransient.
	NumEventsThisPeriod int
	AssignedEventDates  []time.Time
	OriginalPriority    int
}

// Available reports whether the person listed the given event as available.
func (p *Person) Available(id EventID) bool {
	return p.Availability[id]
}

// ResetTransient clears per-evaluation bookkeeping and snapshots the starting
// priority into OriginalPriority, which the Schedule Metrics step (§4.7) reports
// against regardless of how Priority changes later in the same evaluation.
func (p *Person) ResetTransient() {
	p.NumEventsThisPeriod = 0
	p.AssignedEventDates = nil
	p.OriginalPriority = p.Priority
}

// RecordAttendance marks one more event attended on the given date.
func (p *Person) RecordAttendance(date time.Time) {
	p.NumEventsThisPeriod++
	p.AssignedEventDates = append(p.AssignedEventDates, date)
}

// Clone produces an independent copy safe to mutate during one ordering's
// evaluation without affecting the canonical person vector or other orderings.
func (p *Person) Clone() *Person {
	clone := *p
	clone.Availability = make(map[EventID]bool, len(p.Availability))
	for id, ok := range p.Availability {
		clone.Availability[id] = ok
	}
	clone.AssignedEventDates = append([]time.Time(nil), p.AssignedEventDates...)
	return &clone
}

// ClonePeople deep-clones an entire person vector, preserving order.
func ClonePeople(people []*Person) []*Person {
	out := make([]*Person, len(people))
	for i, p := range people {
		out[i] = p.Clone()
	}
	return out
}
