package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// structuralKey is the canonical, order-independent fingerprint of a
// schedule: for each valid event, its id plus the sorted set of
// (person, role) pairs assigned to it. Two schedules with this same key are
// considered equal regardless of attendee append order or alternates.
type structuralKey string

func fingerprint(s *model.Schedule) structuralKey {
	var b strings.Builder
	for _, e := range s.ValidEvents {
		fmt.Fprintf(&b, "%s|", e.ID)
		for _, pair := range e.AttendeePairs() {
			fmt.Fprintf(&b, "%d:%d;", pair.PersonID, pair.Role)
		}
		b.WriteByte('#')
	}
	return structuralKey(b.String())
}

// Dedupe removes structurally equivalent schedules, keeping the first of
// each equivalence class.
func Dedupe(schedules []*model.Schedule) []*model.Schedule {
	seen := make(map[structuralKey]bool, len(schedules))
	out := make([]*model.Schedule, 0, len(schedules))
	for _, s := range schedules {
		k := fingerprint(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

// rankKey returns the six-key lexicographic-maximisation tuple from §4.9.
func rankKey(m model.Metrics) [6]float64 {
	return [6]float64{
		float64(m.NumUniqueAttendees),
		float64(m.PriorityFulfilled),
		float64(m.MutualUniqueFulfilled),
		m.NormalizedUtilization,
		float64(m.MutualRepeatFulfilled),
		float64(m.OneSidedFulfilled),
	}
}

func keyGreater(a, b [6]float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func keyEqual(a, b [6]float64) bool {
	return a == b
}

// Rank sorts deduped schedules best-first by the six-key tuple and returns
// the top tier: every schedule tying the best on all six keys.
func Rank(schedules []*model.Schedule) []*model.Schedule {
	deduped := Dedupe(schedules)
	if len(deduped) == 0 {
		return nil
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return keyGreater(rankKey(deduped[i].Metrics), rankKey(deduped[j].Metrics))
	})
	best := rankKey(deduped[0].Metrics)
	tier := make([]*model.Schedule, 0, len(deduped))
	for _, s := range deduped {
		if !keyEqual(rankKey(s.Metrics), best) {
			break
		}
		tier = append(tier, s)
	}
	return tier
}
