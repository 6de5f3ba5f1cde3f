package data

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// cancellationsFile is the on-disk shape of the Cancellations record (§6).
type cancellationsFile struct {
	CancelledEvents      []string            `json:"cancelled_events"`
	CancelledAvailability map[string][]string `json:"cancelled_availability"`
}

// Cancellations is the parsed, validated Cancellations record.
type Cancellations struct {
	CancelledEvents map[model.EventID]bool
	// PerEmail maps an email to the set of events that person opted out of,
	// independent of the global cancellation list.
	PerEmail map[string]map[model.EventID]bool
}

// ReadCancellations parses and validates a Cancellations record against a
// known event set and known member emails (§6/§7): any reference to an
// unknown event id or email is a fatal input error.
func ReadCancellations(r io.Reader, knownEvents map[model.EventID]bool, knownEmails map[string]bool) (*Cancellations, error) {
	var raw cancellationsFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode cancellations: %w", err)
	}

	out := &Cancellations{
		CancelledEvents: make(map[model.EventID]bool, len(raw.CancelledEvents)),
		PerEmail:        make(map[string]map[model.EventID]bool, len(raw.CancelledAvailability)),
	}
	for _, id := range raw.CancelledEvents {
		eid := model.EventID(id)
		if !knownEvents[eid] {
			return nil, fmt.Errorf("cancellation references unknown event %q", id)
		}
		out.CancelledEvents[eid] = true
	}
	for email, ids := range raw.CancelledAvailability {
		if !knownEmails[email] {
			return nil, fmt.Errorf("cancellation references unknown email %q", email)
		}
		set := make(map[model.EventID]bool, len(ids))
		for _, id := range ids {
			eid := model.EventID(id)
			if !knownEvents[eid] {
				return nil, fmt.Errorf("cancellation references unknown event %q for %q", id, email)
			}
			set[eid] = true
		}
		out.PerEmail[email] = set
	}
	return out, nil
}

// Apply removes cancelled events outright and strips per-person opt-outs
// from availability, validating that every opt-out was actually listed as
// available in the first place (§6/§7).
func (c *Cancellations) Apply(events []*model.Event, people []*model.Person) ([]*model.Event, error) {
	kept := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if !c.CancelledEvents[e.ID] {
			kept = append(kept, e)
		}
	}

	for _, p := range people {
		for eid := range c.PerEmail[p.Email] {
			if !p.Availability[eid] {
				return nil, fmt.Errorf("cancellation for %q references event %q not in their availability", p.Email, eid)
			}
			delete(p.Availability, eid)
		}
	}
	return kept, nil
}
