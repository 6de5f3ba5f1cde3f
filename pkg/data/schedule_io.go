package data

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

type attendeeJSON struct {
	ID   model.PersonID `json:"id"`
	Name string         `json:"name"`
	Role string         `json:"role"`
}

type eventJSON struct {
	ID              model.EventID  `json:"id"`
	Date            time.Time      `json:"date"`
	DurationMinutes int            `json:"duration_minutes"`
	Attendees       []attendeeJSON `json:"attendees"`
	Alternates      []attendeeJSON `json:"alternates"`
}

type metricsJSON struct {
	NumUniqueAttendees    int     `json:"num_unique_attendees"`
	TotalAttendees        int     `json:"total_attendees"`
	PriorityFulfilled     int     `json:"priority_fulfilled"`
	NormalizedUtilization float64 `json:"normalized_utilization"`
	MutualUniqueFulfilled int     `json:"mutual_unique_fulfilled"`
	MutualRepeatFulfilled int     `json:"mutual_repeat_fulfilled"`
	OneSidedFulfilled     int     `json:"one_sided_fulfilled"`
	PartnershipsFulfilled int     `json:"partnerships_fulfilled"`
}

type scheduleJSON struct {
	Events  []eventJSON `json:"events"`
	Metrics metricsJSON `json:"metrics"`
}

// WriteSchedule encodes the Output Schedule record (§6) for one chosen
// schedule, using each person's display name for readability in the file
// without requiring a separate lookup on read.
func WriteSchedule(w io.Writer, s *model.Schedule, names map[model.PersonID]string) error {
	doc := scheduleJSON{
		Events: make([]eventJSON, 0, len(s.ValidEvents)),
		Metrics: metricsJSON{
			NumUniqueAttendees:    s.Metrics.NumUniqueAttendees,
			TotalAttendees:        s.Metrics.TotalAttendees,
			PriorityFulfilled:     s.Metrics.PriorityFulfilled,
			NormalizedUtilization: s.Metrics.NormalizedUtilization,
			MutualUniqueFulfilled: s.Metrics.MutualUniqueFulfilled,
			MutualRepeatFulfilled: s.Metrics.MutualRepeatFulfilled,
			OneSidedFulfilled:     s.Metrics.OneSidedFulfilled,
			PartnershipsFulfilled: s.Metrics.PartnershipsFulfilled,
		},
	}
	for _, e := range s.ValidEvents {
		ej := eventJSON{ID: e.ID, Date: e.Date, DurationMinutes: e.DurationMinutes}
		for _, r := range model.Roles {
			for _, id := range e.Attendees[r] {
				ej.Attendees = append(ej.Attendees, attendeeJSON{ID: id, Name: names[id], Role: r.String()})
			}
			for _, id := range e.Alternates[r] {
				ej.Alternates = append(ej.Alternates, attendeeJSON{ID: id, Name: names[id], Role: r.String()})
			}
		}
		doc.Events = append(doc.Events, ej)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadSchedule parses a results.json record back into a Schedule sufficient
// for history import (§4.17): valid events with their attendee and alternate
// assignments, and the aggregate metrics. The per-person fairness state is
// not part of this record; ImportPeriod pairs the result with the period's
// members record for that.
func ReadSchedule(r io.Reader) (*model.Schedule, error) {
	var doc scheduleJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode results.json: %w", err)
	}

	s := &model.Schedule{
		Metrics: model.Metrics{
			NumUniqueAttendees:    doc.Metrics.NumUniqueAttendees,
			TotalAttendees:        doc.Metrics.TotalAttendees,
			PriorityFulfilled:     doc.Metrics.PriorityFulfilled,
			NormalizedUtilization: doc.Metrics.NormalizedUtilization,
			MutualUniqueFulfilled: doc.Metrics.MutualUniqueFulfilled,
			MutualRepeatFulfilled: doc.Metrics.MutualRepeatFulfilled,
			OneSidedFulfilled:     doc.Metrics.OneSidedFulfilled,
			PartnershipsFulfilled: doc.Metrics.PartnershipsFulfilled,
		},
	}
	for _, ej := range doc.Events {
		e := &model.Event{
			ID:              ej.ID,
			Date:            ej.Date,
			DurationMinutes: ej.DurationMinutes,
			Attendees:       map[model.Role][]model.PersonID{model.Leader: {}, model.Follower: {}},
			Alternates:      map[model.Role][]model.PersonID{model.Leader: {}, model.Follower: {}},
		}
		for _, a := range ej.Attendees {
			role, err := model.RoleFromString(a.Role)
			if err != nil {
				return nil, fmt.Errorf("results.json event %q: %w", ej.ID, err)
			}
			e.Attendees[role] = append(e.Attendees[role], a.ID)
		}
		for _, a := range ej.Alternates {
			role, err := model.RoleFromString(a.Role)
			if err != nil {
				return nil, fmt.Errorf("results.json event %q: %w", ej.ID, err)
			}
			e.Alternates[role] = append(e.Alternates[role], a.ID)
		}
		s.ValidEvents = append(s.ValidEvents, e)
	}
	return s, nil
}
