package scheduler

import "github.com/carmelly/peeps-scheduler/pkg/core/model"

// TrimOverlap removes events one at a time, highest shared-availability
// overlap first (priority-weighted tiebreak), until at most maxEvents remain.
// See SPEC_FULL.md §4.3.
func TrimOverlap(events []*model.Event, people []*model.Person, maxEvents int) []*model.Event {
	remaining := append([]*model.Event(nil), events...)
	for len(remaining) > maxEvents {
		victim := pickOverlapVictim(remaining, people)
		remaining = removeEvent(remaining, victim)
	}
	return remaining
}

func pickOverlapVictim(events []*model.Event, people []*model.Person) *model.Event {
	shared := make(map[model.EventID]map[model.EventID]int, len(events))
	for _, e := range events {
		shared[e.ID] = make(map[model.EventID]int, len(events))
	}
	for i, a := range events {
		for j := i + 1; j < len(events); j++ {
			b := events[j]
			count := 0
			for _, p := range people {
				if p.Available(a.ID) && p.Available(b.ID) {
					count++
				}
			}
			shared[a.ID][b.ID] = count
			shared[b.ID][a.ID] = count
		}
	}

	overlap := make(map[model.EventID]int, len(events))
	for _, e := range events {
		total := 0
		for _, n := range shared[e.ID] {
			total += n
		}
		overlap[e.ID] = total
	}

	var candidates []*model.Event
	best := -1
	for _, e := range events {
		switch {
		case overlap[e.ID] > best:
			best = overlap[e.ID]
			candidates = []*model.Event{e}
		case overlap[e.ID] == best:
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	prioritySum := func(e *model.Event) int {
		sum := 0
		for _, p := range people {
			if p.Available(e.ID) {
				sum += p.Priority
			}
		}
		return sum
	}

	victim := candidates[0]
	victimSum := prioritySum(victim)
	for _, c := range candidates[1:] {
		sum := prioritySum(c)
		if sum < victimSum || (sum == victimSum && c.ID < victim.ID) {
			victim = c
			victimSum = sum
		}
	}
	return victim
}

func removeEvent(events []*model.Event, victim *model.Event) []*model.Event {
	out := make([]*model.Event, 0, len(events)-1)
	for _, e := range events {
		if e != victim {
			out = append(out, e)
		}
	}
	return out
}
