package scheduler

import "github.com/carmelly/peeps-scheduler/pkg/core/model"

// SanitizeEvents drops events that cannot possibly meet the absolute minimum
// headcount for either role, counting only raw availability (ignoring event
// limits and spacing, which are per-ordering concerns). This is a necessary,
// not sufficient, feasibility filter.
func SanitizeEvents(events []*model.Event, people []*model.Person, absMinRole int) []*model.Event {
	kept := make([]*model.Event, 0, len(events))
	for _, e := range events {
		leaders, followers := 0, 0
		for _, p := range people {
			if !p.Available(e.ID) {
				continue
			}
			switch p.PrimaryRole {
			case model.Leader:
				leaders++
			case model.Follower:
				followers++
			}
		}
		if leaders >= absMinRole && followers >= absMinRole {
			kept = append(kept, e)
		}
	}
	return kept
}
