package scheduler

import (
	"slices"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// Finalize runs the Period Finaliser (§4.6): applies the fairness bump to
// people who responded but weren't scheduled, credits attendance totals,
// stably sorts the people vector by descending priority, and reassigns
// Index. It mutates people in place and returns the new order.
func Finalize(people []*model.Person) []*model.Person {
	for _, p := range people {
		if p.NumEventsThisPeriod == 0 {
			if p.Responded {
				p.Priority++
			}
			continue
		}
		p.TotalAttended += p.NumEventsThisPeriod
	}

	ordered := append([]*model.Person(nil), people...)
	slices.SortStableFunc(ordered, func(a, b *model.Person) int {
		return b.Priority - a.Priority
	})
	for i, p := range ordered {
		p.Index = i
	}
	return ordered
}

// BuildSchedule assembles a Schedule from one evaluated ordering: splits
// valid from dropped events, finalises the people vector, and computes the
// aggregate metrics (§4.7, §4.8).
func BuildSchedule(ordering []*model.Event, people []*model.Person, requests model.PartnershipRequest) *model.Schedule {
	valid := make([]*model.Event, 0, len(ordering))
	for _, e := range ordering {
		if e.MeetsMin() {
			valid = append(valid, e)
		}
	}

	finalised := Finalize(people)

	s := &model.Schedule{
		Ordering:    ordering,
		ValidEvents: valid,
		People:      finalised,
	}
	s.Metrics = computeMetrics(valid, finalised, requests)
	return s
}

func computeMetrics(valid []*model.Event, people []*model.Person, requests model.PartnershipRequest) model.Metrics {
	var m model.Metrics

	eligibleUtil := 0
	utilSum := 0.0
	for _, p := range people {
		if p.NumEventsThisPeriod >= 1 {
			m.NumUniqueAttendees++
			m.PriorityFulfilled += p.OriginalPriority
		}
		m.TotalAttendees += p.NumEventsThisPeriod

		if !p.Responded || len(p.Availability) == 0 || p.EventLimit <= 0 {
			continue
		}
		denom := len(p.Availability)
		if p.EventLimit < denom {
			denom = p.EventLimit
		}
		if denom == 0 {
			continue
		}
		numer := p.NumEventsThisPeriod
		if numer > denom {
			numer = denom
		}
		eligibleUtil++
		utilSum += float64(numer) / float64(denom)
	}
	if eligibleUtil > 0 {
		m.NormalizedUtilization = utilSum / float64(eligibleUtil) * 100
	}

	mutualUnique, mutualRepeat, oneSided := partnershipCounts(valid, requests)
	m.MutualUniqueFulfilled = mutualUnique
	m.MutualRepeatFulfilled = mutualRepeat
	m.OneSidedFulfilled = oneSided
	m.PartnershipsFulfilled = mutualUnique + mutualRepeat

	return m
}

// partnershipCounts implements Partnership Fulfilment (§4.8): for every pair
// of co-attendees in every valid event, classify the pair as mutual (counted
// once per distinct pair, plus a repeat count for re-occurrences) or
// one-sided (counted per occurrence).
func partnershipCounts(valid []*model.Event, requests model.PartnershipRequest) (mutualUnique, mutualRepeat, oneSided int) {
	seenMutual := make(map[[2]model.PersonID]bool)
	for _, e := range valid {
		attendees := make([]model.PersonID, 0)
		for _, r := range model.Roles {
			attendees = append(attendees, e.Attendees[r]...)
		}
		for i := 0; i < len(attendees); i++ {
			for j := i + 1; j < len(attendees); j++ {
				a, b := attendees[i], attendees[j]
				key := pairKey(a, b)
				switch {
				case requests.IsMutual(a, b):
					if seenMutual[key] {
						mutualRepeat++
					} else {
						seenMutual[key] = true
						mutualUnique++
					}
				case requests.Requests(a, b) || requests.Requests(b, a):
					oneSided++
				}
			}
		}
	}
	return mutualUnique, mutualRepeat, oneSided
}

func pairKey(a, b model.PersonID) [2]model.PersonID {
	if a > b {
		a, b = b, a
	}
	return [2]model.PersonID{a, b}
}
