package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/scheduler"
	"github.com/carmelly/peeps-scheduler/pkg/data"
	"github.com/carmelly/peeps-scheduler/pkg/eventgen"
)

// ScheduleStore is the narrow set of file operations the Schedule command
// needs, satisfied by *data.FileStore.
type ScheduleStore interface {
	ReadMembers() ([]*model.Person, error)
	ReadResponses() ([]data.Response, error)
	ReadCancellations(knownEvents map[model.EventID]bool, knownEmails map[string]bool) (*data.Cancellations, error)
	ReadPartnerships(knownIDs map[model.PersonID]bool) (model.PartnershipRequest, error)
	WriteMembers(people []*model.Person) error
	WriteSchedule(s *model.Schedule, names map[model.PersonID]string) error
}

// Chooser lets a tied top tier be resolved by something other than always
// picking index 0: the CLI's --interactive flow reads an index from stdin,
// tests and non-interactive --sequence-choice pick a fixed index.
type Chooser func(tier []*model.Schedule) (int, error)

// ScheduleOptions controls one Schedule invocation.
type ScheduleOptions struct {
	Choose Chooser
}

// ScheduleResult is the outcome the CLI reports.
type ScheduleResult struct {
	Chosen    *model.Schedule
	TierSize  int
	Truncated bool
}

// Schedule runs the full core data flow end to end (§2): generate the
// period's candidate events, sanitise/trim/search/rank them against the
// loaded roster, let the caller resolve a tied top tier, then persist
// results.json and the updated members record.
func Schedule(ctx context.Context, store ScheduleStore, cfg *config.Config, logger *zap.Logger, opts ScheduleOptions) (*ScheduleResult, error) {
	logger.Info("loading members")
	people, err := store.ReadMembers()
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	logger.Info("generating candidate events", zap.String("rrule", cfg.RRule))
	events, err := generateEvents(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate events: %w", err)
	}

	logger.Info("loading responses")
	responses, err := store.ReadResponses()
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}
	if err := data.ApplyResponses(people, responses, knownEventIDs(events)); err != nil {
		return nil, fmt.Errorf("apply responses: %w", err)
	}

	logger.Info("loading cancellations")
	cancellations, err := store.ReadCancellations(knownEventIDs(events), knownEmails(people))
	if err != nil {
		return nil, fmt.Errorf("load cancellations: %w", err)
	}
	events, err = cancellations.Apply(events, people)
	if err != nil {
		return nil, fmt.Errorf("apply cancellations: %w", err)
	}

	logger.Info("loading partnership requests")
	requests, err := store.ReadPartnerships(knownPersonIDs(people))
	if err != nil {
		return nil, fmt.Errorf("load partnerships: %w", err)
	}

	logger.Info("searching for candidate schedules",
		zap.Int("events", len(events)), zap.Int("people", len(people)))
	result, err := scheduler.Search(ctx, events, people, requests, scheduler.SearchConfig{
		AbsMinRole:    cfg.AbsMinRole,
		AbsMaxRole:    cfg.AbsMaxRole,
		MaxEvents:     cfg.MaxEvents,
		DurationTable: durationTable(cfg),
		Concurrency:   cfg.SearchConcurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(result.TopTier) == 0 {
		logger.Warn("search produced no valid schedule; member records left unchanged")
		return &ScheduleResult{TierSize: 0, Truncated: result.Truncated}, nil
	}

	choose := opts.Choose
	if choose == nil {
		choose = func(tier []*model.Schedule) (int, error) { return 0, nil }
	}
	idx, err := choose(result.TopTier)
	if err != nil {
		return nil, fmt.Errorf("choose schedule: %w", err)
	}
	if idx < 0 || idx >= len(result.TopTier) {
		return nil, fmt.Errorf("chosen index %d out of range [0,%d)", idx, len(result.TopTier))
	}
	chosen := result.TopTier[idx]

	logger.Info("writing results", zap.Int("valid_events", len(chosen.ValidEvents)))
	if err := store.WriteSchedule(chosen, personNames(people)); err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}
	if err := store.WriteMembers(chosen.People); err != nil {
		return nil, fmt.Errorf("write updated members: %w", err)
	}

	return &ScheduleResult{Chosen: chosen, TierSize: len(result.TopTier), Truncated: result.Truncated}, nil
}

func generateEvents(cfg *config.Config) ([]*model.Event, error) {
	start, err := time.Parse("2006-01-02", cfg.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("invalid periodStart %q: %w", cfg.PeriodStart, err)
	}
	end, err := time.Parse("2006-01-02", cfg.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid periodEnd %q: %w", cfg.PeriodEnd, err)
	}
	table := durationTable(cfg)
	if len(table) == 0 {
		return nil, fmt.Errorf("duration table is empty")
	}
	return eventgen.Generate(eventgen.Config{
		RRule:           cfg.RRule,
		Start:           start,
		End:             end,
		DefaultDuration: table[0],
		DurationTable:   table,
		MaxRole:         cfg.AbsMaxRole,
	})
}
