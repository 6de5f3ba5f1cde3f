package scheduler

import (
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// EvalConfig bounds one assignment pass: the per-role cap candidate from the
// Outer Search Loop, the system-wide absolute floor, and the duration table
// used for downgrades.
type EvalConfig struct {
	TargetMax     int
	AbsMinRole    int
	DurationTable []model.Duration
}

// EvaluateSequence runs the Assignment Pass (§4.5) over one ordering of
// events against one cloned people vector, mutating both in place. Callers
// own the clones; this and the finalize step that follows are the only code
// that mutates them.
func EvaluateSequence(ordering []*model.Event, people []*model.Person, cfg EvalConfig) {
	for _, p := range people {
		p.ResetTransient()
	}
	byID := personIndex(people)

	for _, e := range ordering {
		effectiveMax := e.MaxRole
		if cfg.TargetMax < effectiveMax {
			effectiveMax = cfg.TargetMax
		}

		assignPrimary(e, people, byID, effectiveMax)
		promoteNeededSwitches(e, byID, effectiveMax)

		if e.MeetsAbsoluteMin(cfg.AbsMinRole) {
			balanceRoles(e, byID)
			if !e.MeetsMin() {
				e.Downgrade(cfg.DurationTable)
			}
		}

		if e.MeetsMin() {
			continue
		}
		clearAndRewind(e, byID)
	}

	validateAlternates(ordering, byID)
}

// Step A: each person fills their primary role if there's room, switches into
// their secondary role if their preference and the event allow it, or else
// joins that event's alternate list in their primary role.
func assignPrimary(e *model.Event, people []*model.Person, byID map[model.PersonID]*model.Person, effectiveMax int) {
	for _, p := range people {
		if !CanAttend(p, e) {
			continue
		}
		primary := p.PrimaryRole
		secondary := primary.Opposite()
		switch {
		case e.NumAttendees(primary) < effectiveMax:
			commitAttendance(e, p, primary)
		case p.SwitchPref == model.SwitchIfPrimaryFull && e.NumAttendees(secondary) < effectiveMax:
			commitAttendance(e, p, secondary)
		default:
			e.AddAlternate(primary, p.ID)
		}
	}
}

// Step B: for any role still under its minimum, promote SwitchIfNeeded
// alternates from the opposite role one at a time until the minimum is met
// or alternates run out.
func promoteNeededSwitches(e *model.Event, byID map[model.PersonID]*model.Person, effectiveMax int) {
	for _, r := range model.Roles {
		if e.NumAttendees(r) >= e.MinRole {
			continue
		}
		opposite := r.Opposite()
		for _, altID := range append([]model.PersonID(nil), e.Alternates[opposite]...) {
			if e.NumAttendees(r) >= e.MinRole || e.NumAttendees(r) >= effectiveMax {
				break
			}
			p := byID[altID]
			if p == nil || p.SwitchPref != model.SwitchIfNeeded {
				continue
			}
			e.RemoveAlternate(opposite, altID)
			commitAttendance(e, p, r)
		}
	}
}

// balanceRoles demotes the most recently committed attendee (LIFO) from
// whichever role is ahead, one at a time, until the roles are equal or the
// leading role is back down to MinRole. See DESIGN.md for why LIFO was
// chosen over other demotion orders.
func balanceRoles(e *model.Event, byID map[model.PersonID]*model.Person) {
	for {
		l, f := e.NumAttendees(model.Leader), e.NumAttendees(model.Follower)
		switch {
		case l > f && l > e.MinRole:
			demoteAttendee(e, byID, model.Leader)
		case f > l && f > e.MinRole:
			demoteAttendee(e, byID, model.Follower)
		default:
			return
		}
	}
}

func demoteAttendee(e *model.Event, byID map[model.PersonID]*model.Person, r model.Role) bool {
	id, ok := e.RemoveLastAttendee(r)
	if !ok {
		return false
	}
	if p := byID[id]; p != nil {
		undoAttendance(p, e.Date)
	}
	e.AddAlternate(r, id)
	return true
}

func clearAndRewind(e *model.Event, byID map[model.PersonID]*model.Person) {
	for _, r := range model.Roles {
		for _, id := range e.Attendees[r] {
			if p := byID[id]; p != nil {
				undoAttendance(p, e.Date)
			}
		}
	}
	e.ClearParticipants()
}

func commitAttendance(e *model.Event, p *model.Person, r model.Role) {
	e.AddAttendee(r, p.ID)
	p.RecordAttendance(e.Date)
}

func undoAttendance(p *model.Person, date time.Time) {
	if p.NumEventsThisPeriod > 0 {
		p.NumEventsThisPeriod--
	}
	if n := len(p.AssignedEventDates); n > 0 && p.AssignedEventDates[n-1].Equal(date) {
		p.AssignedEventDates = p.AssignedEventDates[:n-1]
	}
}

// Step E: once every event in the ordering has been processed, re-check each
// valid event's alternates against the now-final assignment state; an
// alternate who has since hit their event limit or violated spacing is
// dropped from the list.
func validateAlternates(ordering []*model.Event, byID map[model.PersonID]*model.Person) {
	for _, e := range ordering {
		if !e.MeetsMin() {
			continue
		}
		for _, r := range model.Roles {
			for _, altID := range append([]model.PersonID(nil), e.Alternates[r]...) {
				p := byID[altID]
				if p == nil || !CanAttend(p, e) {
					e.RemoveAlternate(r, altID)
				}
			}
		}
	}
}

func personIndex(people []*model.Person) map[model.PersonID]*model.Person {
	idx := make(map[model.PersonID]*model.Person, len(people))
	for _, p := range people {
		idx[p.ID] = p
	}
	return idx
}
