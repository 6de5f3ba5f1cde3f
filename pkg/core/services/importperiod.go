package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// ImportPeriodStore is the narrow store the ImportPeriod command needs.
type ImportPeriodStore interface {
	ReadMembers() ([]*model.Person, error)
	ReadSchedule() (*model.Schedule, error)
}

// HistoryStore is the subset of *history.Store ImportPeriod writes through.
type HistoryStore interface {
	InsertPeriod(ctx context.Context, folder string, schedule *model.Schedule, people []*model.Person) error
}

// ImportPeriod loads a closed period's results.json and members.csv and
// records them in the history store (§4.17), keyed by the period's folder
// name. Re-importing the same folder replaces its prior record.
func ImportPeriod(ctx context.Context, store ImportPeriodStore, hist HistoryStore, cfg *config.Config, logger *zap.Logger, folder string) error {
	logger.Info("loading closed period's results", zap.String("folder", folder))
	schedule, err := store.ReadSchedule()
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	logger.Info("loading closed period's members")
	people, err := store.ReadMembers()
	if err != nil {
		return fmt.Errorf("load members: %w", err)
	}

	if err := hist.InsertPeriod(ctx, folder, schedule, people); err != nil {
		return fmt.Errorf("insert period %q: %w", folder, err)
	}
	logger.Info("period imported", zap.String("folder", folder), zap.Int("valid_events", len(schedule.ValidEvents)))
	return nil
}
