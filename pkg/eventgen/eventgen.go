// Package eventgen turns a practice pool's recurrence rule plus explicit
// per-date overrides into the candidate Event list a period schedules over
// (SPEC_FULL.md §4.16), the same way the teacher's services package turns a
// rota's RRULE overrides into date-matching closures.
package eventgen

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// Override changes or skips a single generated date before it becomes an
// Event.
type Override struct {
	AppliesTo func(time.Time) bool
	Skip      bool
	// Duration, if set, looks up DurationTable by name in place of the
	// config's default duration for dates this override applies to.
	Duration string
}

// Config describes one period's recurring schedule.
type Config struct {
	RRule           string
	Start           time.Time
	End             time.Time
	DefaultDuration model.Duration
	DurationTable   []model.Duration
	MaxRole         int
	Overrides       []Override
}

// Generate expands the recurrence rule over [Start, End], applying overrides
// in order, and returns one Event per surviving occurrence.
func Generate(cfg Config) ([]*model.Event, error) {
	rule, err := rrule.StrToRRule(cfg.RRule)
	if err != nil {
		return nil, fmt.Errorf("parse rrule %q: %w", cfg.RRule, err)
	}
	rule.DTStart(cfg.Start)

	occurrences := rule.Between(cfg.Start, cfg.End, true)
	events := make([]*model.Event, 0, len(occurrences))
	for _, date := range occurrences {
		dur := cfg.DefaultDuration
		skip := false
		for _, o := range cfg.Overrides {
			if !o.AppliesTo(date) {
				continue
			}
			if o.Skip {
				skip = true
				break
			}
			if o.Duration != "" {
				if found, ok := lookupDuration(cfg.DurationTable, o.Duration); ok {
					dur = found
				}
			}
		}
		if skip {
			continue
		}
		id := model.EventID(date.Format("2006-01-02 15:04"))
		events = append(events, model.NewEvent(id, date, dur, cfg.MaxRole))
	}
	return events, nil
}

func lookupDuration(table []model.Duration, name string) (model.Duration, bool) {
	for _, d := range table {
		if d.Name == name {
			return d, true
		}
	}
	return model.Duration{}, false
}
