package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// ListMembersStore is the narrow store the ListMembers command needs.
type ListMembersStore interface {
	ReadMembers() ([]*model.Person, error)
}

// ListMembers loads the canonical member roster in the record's row order.
// It does not sort; the members writers in this repository write rows in
// Index order (§4.6's descending-priority order).
func ListMembers(ctx context.Context, store ListMembersStore, cfg *config.Config, logger *zap.Logger) ([]*model.Person, error) {
	logger.Info("loading members")
	people, err := store.ReadMembers()
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return people, nil
}
