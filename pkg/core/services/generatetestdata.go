package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// GenerateTestDataStore is the narrow store the GenerateTestData command
// writes through.
type GenerateTestDataStore interface {
	WriteMembers(people []*model.Person) error
}

// GenerateTestDataOptions sizes the synthetic roster.
type GenerateTestDataOptions struct {
	NumLeaders   int
	NumFollowers int
	Seed         int64
}

var firstNames = []string{"Alex", "Jordan", "Sam", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery", "Quinn"}
var lastNames = []string{"Nguyen", "Patel", "Garcia", "Kim", "Smith", "Okafor", "Rossi", "Dubois", "Haddad", "Novak"}

// GenerateTestData fabricates a plausible member roster for exercising the
// CLI's other subcommands without a real dataset: a mix of leaders and
// followers with random names and join dates. Switch preferences, event
// limits, and spacing rules are left at their zero values, and responses,
// availability, and cancellations are left for a
// subsequent "request availability" collection period, mirroring how a
// brand-new practice pool starts with members but no responses yet.
func GenerateTestData(ctx context.Context, store GenerateTestDataStore, cfg *config.Config, logger *zap.Logger, opts GenerateTestDataOptions) ([]*model.Person, error) {
	if opts.NumLeaders <= 0 || opts.NumFollowers <= 0 {
		return nil, fmt.Errorf("numLeaders and numFollowers must both be positive")
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	var people []*model.Person
	id := 1
	add := func(role model.Role) {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		people = append(people, &model.Person{
			ID:           model.PersonID(id),
			FullName:     fmt.Sprintf("%s %s", first, last),
			DisplayName:  first,
			Email:        fmt.Sprintf("%s.%s%d@example.com", first, last, id),
			PrimaryRole:  role,
			Active:       true,
			DateJoined:   time.Now().UTC().AddDate(0, -rng.Intn(24), 0),
			Index:        id - 1,
			Availability: map[model.EventID]bool{},
		})
		id++
	}
	for i := 0; i < opts.NumLeaders; i++ {
		add(model.Leader)
	}
	for i := 0; i < opts.NumFollowers; i++ {
		add(model.Follower)
	}

	logger.Info("generated synthetic roster", zap.Int("leaders", opts.NumLeaders), zap.Int("followers", opts.NumFollowers))
	if err := store.WriteMembers(people); err != nil {
		return nil, fmt.Errorf("write generated members: %w", err)
	}
	return people, nil
}
