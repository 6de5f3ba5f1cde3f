package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/results"
	"github.com/carmelly/peeps-scheduler/pkg/data"
)

// ApplyResultsStore is the narrow store the ApplyResults command needs.
type ApplyResultsStore interface {
	ReadMembers() ([]*model.Person, error)
	ReadResponses() ([]data.Response, error)
	WriteMembers(people []*model.Person) error
}

// ApplyResults runs the Results Applier (§4.10): it re-derives the next
// period's members record from the authoritative attendance record, which
// may disagree with what Schedule originally chose (people added, removed,
// or switched role by hand before the period closed).
func ApplyResults(ctx context.Context, store ApplyResultsStore, cfg *config.Config, logger *zap.Logger, attendance []results.EventAttendance) ([]*model.Person, error) {
	logger.Info("loading members")
	people, err := store.ReadMembers()
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	logger.Info("loading responses to determine who responded this period")
	responses, err := store.ReadResponses()
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}
	responded := make(map[model.PersonID]bool, len(responses))
	byEmail := make(map[string]model.PersonID, len(people))
	for _, p := range people {
		byEmail[p.Email] = p.ID
	}
	for _, r := range responses {
		if id, ok := byEmail[r.Email]; ok {
			responded[id] = true
		}
	}

	logger.Info("applying attendance record", zap.Int("events", len(attendance)))
	updated := results.Apply(people, responded, attendance)

	if err := store.WriteMembers(updated); err != nil {
		return nil, fmt.Errorf("write updated members: %w", err)
	}
	return updated, nil
}
