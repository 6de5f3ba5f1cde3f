package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

type mockGenerateTestDataStore struct {
	wrote []*model.Person
}

func (m *mockGenerateTestDataStore) WriteMembers(people []*model.Person) error {
	m.wrote = people
	return nil
}

func TestGenerateTestData_ProducesRequestedCounts(t *testing.T) {
	store := &mockGenerateTestDataStore{}
	people, err := GenerateTestData(context.Background(), store, testConfig(), zap.NewNop(), GenerateTestDataOptions{
		NumLeaders: 4, NumFollowers: 6, Seed: 42,
	})
	require.NoError(t, err)
	assert.Len(t, people, 10)
	assert.Equal(t, people, store.wrote)

	var leaders, followers int
	seen := map[model.PersonID]bool{}
	for _, p := range people {
		assert.False(t, seen[p.ID], "person ids must be unique")
		seen[p.ID] = true
		if p.PrimaryRole == model.Leader {
			leaders++
		} else {
			followers++
		}
	}
	assert.Equal(t, 4, leaders)
	assert.Equal(t, 6, followers)
}

func TestGenerateTestData_RejectsNonPositiveCounts(t *testing.T) {
	store := &mockGenerateTestDataStore{}
	_, err := GenerateTestData(context.Background(), store, testConfig(), zap.NewNop(), GenerateTestDataOptions{
		NumLeaders: 0, NumFollowers: 5,
	})
	assert.Error(t, err)
}
