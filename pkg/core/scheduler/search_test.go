package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

func simpleSearchConfig() SearchConfig {
	return SearchConfig{
		AbsMinRole:    2,
		AbsMaxRole:    3,
		MaxEvents:     7,
		DurationTable: durationTable,
		Concurrency:   4,
	}
}

func TestSearch_ProducesNonEmptyTopTierForFeasibleInput(t *testing.T) {
	e1 := newEvent("e1", 0, shortDuration, 3)
	var people []*model.Person
	for i := 0; i < 3; i++ {
		people = append(people, newPerson(model.PersonID(i), model.Leader, "e1"))
		people = append(people, newPerson(model.PersonID(10+i), model.Follower, "e1"))
	}

	result, err := Search(context.Background(), []*model.Event{e1}, people, model.PartnershipRequest{}, simpleSearchConfig())
	require.NoError(t, err)
	require.NotEmpty(t, result.TopTier)
	assert.False(t, result.Truncated)
	assert.True(t, result.TopTier[0].ValidEvents[0].MeetsMin())
}

func TestSearch_IsDeterministicAcrossRuns(t *testing.T) {
	e1 := newEvent("e1", 0, shortDuration, 3)
	e2 := newEvent("e2", 1, shortDuration, 3)
	var people []*model.Person
	for i := 0; i < 3; i++ {
		people = append(people, newPerson(model.PersonID(i), model.Leader, "e1", "e2"))
		people = append(people, newPerson(model.PersonID(10+i), model.Follower, "e1", "e2"))
	}
	for _, p := range people {
		p.EventLimit = 1
	}

	cfg := simpleSearchConfig()
	r1, err := Search(context.Background(), []*model.Event{e1, e2}, people, model.PartnershipRequest{}, cfg)
	require.NoError(t, err)
	r2, err := Search(context.Background(), []*model.Event{e1, e2}, people, model.PartnershipRequest{}, cfg)
	require.NoError(t, err)

	require.Equal(t, len(r1.TopTier), len(r2.TopTier))
	for i := range r1.TopTier {
		assert.Equal(t, r1.TopTier[i].Metrics, r2.TopTier[i].Metrics)
	}
}

func TestSearch_NoFeasibleEventReturnsEmptyTopTier(t *testing.T) {
	e1 := newEvent("e1", 0, shortDuration, 3)
	people := []*model.Person{newPerson(1, model.Leader, "e1")}

	result, err := Search(context.Background(), []*model.Event{e1}, people, model.PartnershipRequest{}, simpleSearchConfig())
	require.NoError(t, err)
	assert.Empty(t, result.TopTier)
}

func TestSearch_CancelledContextTruncates(t *testing.T) {
	e1 := newEvent("e1", 0, shortDuration, 3)
	people := []*model.Person{newPerson(1, model.Leader, "e1")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Search(ctx, []*model.Event{e1}, people, model.PartnershipRequest{}, simpleSearchConfig())
	require.NoError(t, err)
	assert.True(t, result.Truncated)
}
