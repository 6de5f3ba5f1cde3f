package model

import (
	"sort"
	"time"
)

// EventID is the stable identifier for a session, conventionally the canonical
// "YYYY-MM-DD HH:MM" rendering of its date used throughout the external records
// (availability lists, cancellations).
type EventID string

// Duration names one of the discrete session lengths a practice can run, and the
// minimum role headcount that length requires.
type Duration struct {
	Name    string
	Minutes int
	MinRole int
}

// Event is a single scheduled session with per-role capacity.
type Event struct {
	ID              EventID
	Date            time.Time
	DurationName    string
	DurationMinutes int
	MinRole         int
	MaxRole         int

	Attendees  map[Role][]PersonID
	Alternates map[Role][]PersonID
}

// NewEvent builds an Event at its initial (undowngraded) duration.
func NewEvent(id EventID, date time.Time, dur Duration, maxRole int) *Event {
	return &Event{
		ID:              id,
		Date:            date,
		DurationName:    dur.Name,
		DurationMinutes: dur.Minutes,
		MinRole:         dur.MinRole,
		MaxRole:         maxRole,
		Attendees:       map[Role][]PersonID{Leader: {}, Follower: {}},
		Alternates:      map[Role][]PersonID{Leader: {}, Follower: {}},
	}
}

// Clone produces an independent copy safe to mutate during one ordering's
// evaluation.
func (e *Event) Clone() *Event {
	clone := *e
	clone.Attendees = cloneRoleMap(e.Attendees)
	clone.Alternates = cloneRoleMap(e.Alternates)
	return &clone
}

// CloneEvents deep-clones an entire event slice, preserving order.
func CloneEvents(events []*Event) []*Event {
	out := make([]*Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

func cloneRoleMap(m map[Role][]PersonID) map[Role][]PersonID {
	out := make(map[Role][]PersonID, len(m))
	for r, ids := range m {
		out[r] = append([]PersonID(nil), ids...)
	}
	return out
}

func (e *Event) NumAttendees(r Role) int  { return len(e.Attendees[r]) }
func (e *Event) NumAlternates(r Role) int { return len(e.Alternates[r]) }

// AddAttendee appends a person as an attendee filling the given role.
func (e *Event) AddAttendee(r Role, id PersonID) {
	e.Attendees[r] = append(e.Attendees[r], id)
}

// AddAlternate appends a person as an alternate under the given role.
func (e *Event) AddAlternate(r Role, id PersonID) {
	e.Alternates[r] = append(e.Alternates[r], id)
}

// RemoveAlternate removes a person from a role's alternate list, reporting
// whether they were present.
func (e *Event) RemoveAlternate(r Role, id PersonID) bool {
	list := e.Alternates[r]
	for i, x := range list {
		if x == id {
			e.Alternates[r] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLastAttendee pops and returns the most recently added attendee in a
// role, used by the balance step's LIFO demotion policy.
func (e *Event) RemoveLastAttendee(r Role) (PersonID, bool) {
	list := e.Attendees[r]
	if len(list) == 0 {
		return 0, false
	}
	last := list[len(list)-1]
	e.Attendees[r] = list[:len(list)-1]
	return last, true
}

// MeetsMin reports whether every role meets this event's current MinRole.
func (e *Event) MeetsMin() bool {
	return e.NumAttendees(Leader) >= e.MinRole && e.NumAttendees(Follower) >= e.MinRole
}

// MeetsAbsoluteMin reports whether every role meets the system-wide absolute
// floor, independent of this event's own (possibly stricter) MinRole.
func (e *Event) MeetsAbsoluteMin(absMin int) bool {
	return e.NumAttendees(Leader) >= absMin && e.NumAttendees(Follower) >= absMin
}

// ClearParticipants discards every attendee and alternate, used when an event
// fails to meet its minimum for a given ordering.
func (e *Event) ClearParticipants() {
	e.Attendees = map[Role][]PersonID{Leader: {}, Follower: {}}
	e.Alternates = map[Role][]PersonID{Leader: {}, Follower: {}}
}

// Downgrade lowers the event to the next entry in the duration table, returning
// false if there is no shorter entry to fall back to.
func (e *Event) Downgrade(table []Duration) bool {
	for i, d := range table {
		if d.Name == e.DurationName && i+1 < len(table) {
			next := table[i+1]
			e.DurationName = next.Name
			e.DurationMinutes = next.Minutes
			e.MinRole = next.MinRole
			return true
		}
	}
	return false
}

// AttendeePair is one (person, role) assignment, used for structural equality.
type AttendeePair struct {
	PersonID PersonID
	Role     Role
}

// AttendeePairs returns the canonical, order-independent set of (person, role)
// pairs for this event, sorted for deterministic comparison and hashing.
func (e *Event) AttendeePairs() []AttendeePair {
	pairs := make([]AttendeePair, 0, e.NumAttendees(Leader)+e.NumAttendees(Follower))
	for _, r := range Roles {
		for _, id := range e.Attendees[r] {
			pairs = append(pairs, AttendeePair{PersonID: id, Role: r})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].PersonID != pairs[j].PersonID {
			return pairs[i].PersonID < pairs[j].PersonID
		}
		return pairs[i].Role < pairs[j].Role
	})
	return pairs
}
