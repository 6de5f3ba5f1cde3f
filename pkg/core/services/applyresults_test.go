package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/results"
	"github.com/carmelly/peeps-scheduler/pkg/data"
)

type mockApplyResultsStore struct {
	members      []*model.Person
	responses    []data.Response
	wroteMembers []*model.Person
}

func (m *mockApplyResultsStore) ReadMembers() ([]*model.Person, error)     { return m.members, nil }
func (m *mockApplyResultsStore) ReadResponses() ([]data.Response, error)   { return m.responses, nil }
func (m *mockApplyResultsStore) WriteMembers(people []*model.Person) error { m.wroteMembers = people; return nil }

func TestApplyResults_BumpsUnscheduledResponders(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	members := []*model.Person{
		{ID: 1, Email: "attended@example.com", Priority: 2},
		{ID: 2, Email: "skipped@example.com", Priority: 0},
	}
	responses := []data.Response{
		{Email: "attended@example.com"},
		{Email: "skipped@example.com"},
	}
	attendance := []results.EventAttendance{
		{EventID: "e1", Date: date, Attendees: []model.AttendeePair{{PersonID: 1, Role: model.Leader}}},
	}

	store := &mockApplyResultsStore{members: members, responses: responses}
	updated, err := ApplyResults(context.Background(), store, testConfig(), zap.NewNop(), attendance)
	require.NoError(t, err)
	require.NotNil(t, store.wroteMembers)

	byID := map[model.PersonID]*model.Person{}
	for _, p := range updated {
		byID[p.ID] = p
	}
	assert.Equal(t, 0, byID[1].Priority, "attendee's priority resets to zero")
	assert.Equal(t, 1, byID[2].Priority, "responded-but-unscheduled person gets the fairness bump")
}
