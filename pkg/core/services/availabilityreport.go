package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/data"
)

// AvailabilityReportStore is the narrow store the AvailabilityReport command needs.
type AvailabilityReportStore interface {
	ReadMembers() ([]*model.Person, error)
	ReadResponses() ([]data.Response, error)
	ReadCancellations(knownEvents map[model.EventID]bool, knownEmails map[string]bool) (*data.Cancellations, error)
}

// EventAvailability is one event's availability breakdown: who listed it in
// their primary role, plus who would additionally fill the opposite role
// because their switch preference allows it.
type EventAvailability struct {
	Leader       []string
	Follower     []string
	LeaderFill   []string
	FollowerFill []string
}

// AvailabilityReport is the result of §4.19's reporting pass: a per-event
// availability breakdown plus the unavailable/non-responder/cancellation
// summaries printed alongside it.
type AvailabilityReport struct {
	Events                []model.EventID
	ByEvent               map[model.EventID]*EventAvailability
	Unavailable           []string
	NonResponders         []string
	CancelledEvents       []model.EventID
	CancelledAvailability map[string][]model.EventID
}

// BuildAvailabilityReport runs the Availability Report (§4.19): it loads the
// roster, the period's raw responses, and cancellations, then groups
// availability by event without touching any canonical record. Unlike
// ApplyResponses, an unmatched or duplicate response email is a warning, not
// a fatal error — this command only reports, so it tolerates the same messy
// in-progress input a coordinator might be checking before collection closes.
func BuildAvailabilityReport(ctx context.Context, store AvailabilityReportStore, cfg *config.Config, logger *zap.Logger) (*AvailabilityReport, error) {
	logger.Info("loading members")
	people, err := store.ReadMembers()
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	logger.Info("loading responses")
	responses, err := store.ReadResponses()
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}

	byEmail := make(map[string]*model.Person, len(people))
	knownEmails := make(map[string]bool, len(people))
	for _, p := range people {
		email := strings.ToLower(p.Email)
		byEmail[email] = p
		knownEmails[email] = true
	}

	knownEvents := make(map[model.EventID]bool)
	for _, r := range responses {
		for _, id := range r.Availability {
			knownEvents[id] = true
		}
	}

	logger.Info("loading cancellations")
	cancellations, err := store.ReadCancellations(knownEvents, knownEmails)
	if err != nil {
		return nil, fmt.Errorf("load cancellations: %w", err)
	}

	report := &AvailabilityReport{
		ByEvent:               make(map[model.EventID]*EventAvailability),
		CancelledAvailability: make(map[string][]model.EventID),
	}

	responded := make(map[model.PersonID]bool, len(responses))
	seenEmails := make(map[string]bool, len(responses))
	for _, r := range responses {
		email := strings.ToLower(r.Email)
		member, ok := byEmail[email]
		if !ok {
			logger.Warn("skipping response with unmatched email", zap.String("email", r.Email))
			continue
		}
		if seenEmails[email] {
			logger.Warn("skipping duplicate response", zap.String("email", r.Email))
			continue
		}
		seenEmails[email] = true
		responded[member.ID] = true

		opted := cancellations.PerEmail[email]
		var available []model.EventID
		for _, id := range r.Availability {
			if cancellations.CancelledEvents[id] || opted[id] {
				continue
			}
			available = append(available, id)
		}
		if len(available) == 0 {
			report.Unavailable = append(report.Unavailable, member.DisplayName)
			continue
		}

		for _, id := range available {
			entry := report.ByEvent[id]
			if entry == nil {
				entry = &EventAvailability{}
				report.ByEvent[id] = entry
			}
			addName(entry, r.Role, member.DisplayName, false)
			if r.SwitchPref != model.PrimaryOnly {
				addName(entry, r.Role.Opposite(), member.DisplayName, true)
			}
		}
	}

	for _, p := range people {
		if p.Active && !responded[p.ID] {
			report.NonResponders = append(report.NonResponders, p.DisplayName)
		}
	}

	for email, ids := range cancellations.PerEmail {
		member, ok := byEmail[email]
		if !ok || len(ids) == 0 {
			continue
		}
		list := make([]model.EventID, 0, len(ids))
		for id := range ids {
			list = append(list, id)
		}
		sortEventIDs(list)
		report.CancelledAvailability[member.DisplayName] = list
	}

	for id := range cancellations.CancelledEvents {
		report.CancelledEvents = append(report.CancelledEvents, id)
	}
	for id := range report.ByEvent {
		report.Events = append(report.Events, id)
	}
	sortEventIDs(report.CancelledEvents)
	sortEventIDs(report.Events)
	sort.Strings(report.Unavailable)
	sort.Strings(report.NonResponders)

	return report, nil
}

// addName appends a display name to role r's primary list, or its fill list
// when fill is true (the caller passes the opposite role for a person
// willing to switch into it).
func addName(e *EventAvailability, r model.Role, name string, fill bool) {
	switch {
	case r == model.Leader && !fill:
		e.Leader = append(e.Leader, name)
	case r == model.Follower && !fill:
		e.Follower = append(e.Follower, name)
	case r == model.Leader && fill:
		e.LeaderFill = append(e.LeaderFill, name)
	case r == model.Follower && fill:
		e.FollowerFill = append(e.FollowerFill, name)
	}
}

func sortEventIDs(ids []model.EventID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
