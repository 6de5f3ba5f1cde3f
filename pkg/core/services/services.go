// Package services exposes one orchestration function per CLI subcommand
// (§4.14), each taking a narrow per-operation store interface rather than a
// god-object handle, mirroring the teacher's AllocateRota(ctx, database,
// volunteerClient, formsClient, cfg, logger, ...) shape.
package services

import (
	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// durationTable converts the config's YAML-friendly duration entries into
// the model.Duration values the scheduler and eventgen operate on.
func durationTable(cfg *config.Config) []model.Duration {
	table := make([]model.Duration, len(cfg.DurationTable))
	for i, e := range cfg.DurationTable {
		table[i] = model.Duration{Name: e.Name, Minutes: e.Minutes, MinRole: e.MinRole}
	}
	return table
}

// knownEventIDs collects the id set of a candidate event list, used to
// validate cancellations and availability references (§6/§7).
func knownEventIDs(events []*model.Event) map[model.EventID]bool {
	out := make(map[model.EventID]bool, len(events))
	for _, e := range events {
		out[e.ID] = true
	}
	return out
}

// knownEmails collects the email set of a member roster, as written (not
// case-folded), used to validate cancellation references.
func knownEmails(people []*model.Person) map[string]bool {
	out := make(map[string]bool, len(people))
	for _, p := range people {
		out[p.Email] = true
	}
	return out
}

// knownPersonIDs collects the id set of a member roster, used to validate
// partnership references.
func knownPersonIDs(people []*model.Person) map[model.PersonID]bool {
	out := make(map[model.PersonID]bool, len(people))
	for _, p := range people {
		out[p.ID] = true
	}
	return out
}

// personNames builds the display-name lookup WriteSchedule wants, so the
// output record is readable without a separate members join on read.
func personNames(people []*model.Person) map[model.PersonID]string {
	out := make(map[model.PersonID]string, len(people))
	for _, p := range people {
		out[p.ID] = p.DisplayName
	}
	return out
}
