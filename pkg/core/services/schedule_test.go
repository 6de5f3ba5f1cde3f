package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/data"
)

// mockScheduleStore implements ScheduleStore for testing.
type mockScheduleStore struct {
	members       []*model.Person
	responses     []data.Response
	cancellations *data.Cancellations
	partnerships  model.PartnershipRequest
	wroteMembers  []*model.Person
	wroteSchedule *model.Schedule
}

func (m *mockScheduleStore) ReadMembers() ([]*model.Person, error) { return m.members, nil }
func (m *mockScheduleStore) ReadResponses() ([]data.Response, error) { return m.responses, nil }
func (m *mockScheduleStore) ReadCancellations(knownEvents map[model.EventID]bool, knownEmails map[string]bool) (*data.Cancellations, error) {
	if m.cancellations != nil {
		return m.cancellations, nil
	}
	return &data.Cancellations{CancelledEvents: map[model.EventID]bool{}, PerEmail: map[string]map[model.EventID]bool{}}, nil
}
func (m *mockScheduleStore) ReadPartnerships(knownIDs map[model.PersonID]bool) (model.PartnershipRequest, error) {
	return m.partnerships, nil
}
func (m *mockScheduleStore) WriteMembers(people []*model.Person) error {
	m.wroteMembers = people
	return nil
}
func (m *mockScheduleStore) WriteSchedule(s *model.Schedule, names map[model.PersonID]string) error {
	m.wroteSchedule = s
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		DataFolder:  "testdata",
		MaxEvents:   7,
		AbsMinRole:  2,
		AbsMaxRole:  3,
		RRule:       "FREQ=WEEKLY;COUNT=1",
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-31",
		DurationTable: []config.DurationEntry{
			{Name: "long", Minutes: 120, MinRole: 3},
			{Name: "short", Minutes: 90, MinRole: 2},
		},
	}
}

func person(id int, role model.Role, eventID model.EventID) *model.Person {
	return &model.Person{
		ID:           model.PersonID(id),
		FullName:     "Test Person",
		DisplayName:  "Test",
		Email:        "person@example.com",
		PrimaryRole:  role,
		Active:       true,
		DateJoined:   time.Now(),
		EventLimit:   1,
		Responded:    true,
		Availability: map[model.EventID]bool{eventID: true},
	}
}

func TestSchedule_FillsSingleEvent(t *testing.T) {
	cfg := testConfig()
	cfg.RRule = "FREQ=WEEKLY;COUNT=1;BYDAY=SA"
	cfg.PeriodStart = "2025-03-01"
	cfg.PeriodEnd = "2025-03-08"

	eventID := model.EventID("2025-03-01 00:00")
	var members []*model.Person
	for i := 1; i <= 3; i++ {
		members = append(members, person(i, model.Leader, eventID))
		members = append(members, person(i+10, model.Follower, eventID))
	}
	for i, p := range members {
		p.Email = "p" + string(rune('a'+i)) + "@example.com"
	}

	store := &mockScheduleStore{members: members}
	logger := zap.NewNop()

	result, err := Schedule(context.Background(), store, cfg, logger, ScheduleOptions{})
	require.NoError(t, err)
	require.NotNil(t, result.Chosen)
	require.NotEmpty(t, result.Chosen.ValidEvents)
	require.NotNil(t, store.wroteSchedule)
	require.NotNil(t, store.wroteMembers)
}

func TestSchedule_RejectsResponseWithUnknownEventAvailability(t *testing.T) {
	cfg := testConfig()
	cfg.RRule = "FREQ=WEEKLY;COUNT=1;BYDAY=SA"
	cfg.PeriodStart = "2025-03-01"
	cfg.PeriodEnd = "2025-03-08"

	eventID := model.EventID("2025-03-01 00:00")
	members := []*model.Person{
		{ID: 1, Email: "a@example.com", PrimaryRole: model.Leader, Availability: map[model.EventID]bool{}, Active: true},
	}
	store := &mockScheduleStore{
		members: members,
		responses: []data.Response{
			{Email: "a@example.com", Availability: []model.EventID{eventID, "2099-01-01 00:00"}, EventLimit: 1},
		},
	}

	_, err := Schedule(context.Background(), store, cfg, zap.NewNop(), ScheduleOptions{})
	require.ErrorContains(t, err, "unknown event")
	require.Nil(t, store.wroteMembers)
	require.Nil(t, store.wroteSchedule)
}

func TestSchedule_EmptySearchLeavesMembersUnwritten(t *testing.T) {
	cfg := testConfig()
	cfg.RRule = "FREQ=WEEKLY;COUNT=1;BYDAY=SA"
	cfg.PeriodStart = "2025-03-01"
	cfg.PeriodEnd = "2025-03-08"

	// Nobody is available for the generated event, so sanitisation drops it
	// and the search is empty.
	members := []*model.Person{
		{ID: 1, Email: "a@example.com", PrimaryRole: model.Leader, Availability: map[model.EventID]bool{}, Responded: true},
	}
	store := &mockScheduleStore{members: members}

	result, err := Schedule(context.Background(), store, cfg, zap.NewNop(), ScheduleOptions{})
	require.NoError(t, err)
	require.Equal(t, 0, result.TierSize)
	require.Nil(t, store.wroteMembers)
	require.Nil(t, store.wroteSchedule)
}
