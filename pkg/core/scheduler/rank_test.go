package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

func scheduleWith(eventID model.EventID, pairs ...model.AttendeePair) *model.Schedule {
	e := model.NewEvent(eventID, date(0), shortDuration, 6)
	for _, pr := range pairs {
		e.AddAttendee(pr.Role, pr.PersonID)
	}
	return &model.Schedule{ValidEvents: []*model.Event{e}}
}

func TestDedupe_IgnoresAttendeeAppendOrder(t *testing.T) {
	a := scheduleWith("e1", model.AttendeePair{PersonID: 1, Role: model.Leader}, model.AttendeePair{PersonID: 2, Role: model.Follower})
	b := scheduleWith("e1", model.AttendeePair{PersonID: 2, Role: model.Follower}, model.AttendeePair{PersonID: 1, Role: model.Leader})

	deduped := Dedupe([]*model.Schedule{a, b})
	assert.Len(t, deduped, 1)
}

func TestDedupe_DistinguishesDifferentAssignments(t *testing.T) {
	a := scheduleWith("e1", model.AttendeePair{PersonID: 1, Role: model.Leader})
	b := scheduleWith("e1", model.AttendeePair{PersonID: 2, Role: model.Leader})

	deduped := Dedupe([]*model.Schedule{a, b})
	assert.Len(t, deduped, 2)
}

func TestRank_TiesOnFirstFourKeysBrokenByMutualRepeat(t *testing.T) {
	a := &model.Schedule{
		ValidEvents: []*model.Event{model.NewEvent("e1", date(0), shortDuration, 4)},
		Metrics:     model.Metrics{NumUniqueAttendees: 4, PriorityFulfilled: 3, MutualUniqueFulfilled: 1, NormalizedUtilization: 50, MutualRepeatFulfilled: 0, OneSidedFulfilled: 0},
	}
	b := &model.Schedule{
		ValidEvents: []*model.Event{model.NewEvent("e2", date(0), shortDuration, 4)},
		Metrics:     model.Metrics{NumUniqueAttendees: 4, PriorityFulfilled: 3, MutualUniqueFulfilled: 1, NormalizedUtilization: 50, MutualRepeatFulfilled: 1, OneSidedFulfilled: 0},
	}

	top := Rank([]*model.Schedule{a, b})
	require.Len(t, top, 1)
	assert.Same(t, b, top[0])
}

func TestRank_TiedSchedulesFormMultiElementTier(t *testing.T) {
	a := &model.Schedule{
		ValidEvents: []*model.Event{model.NewEvent("e1", date(0), shortDuration, 4)},
		Metrics:     model.Metrics{NumUniqueAttendees: 4},
	}
	b := &model.Schedule{
		ValidEvents: []*model.Event{model.NewEvent("e2", date(0), shortDuration, 4)},
		Metrics:     model.Metrics{NumUniqueAttendees: 4},
	}

	top := Rank([]*model.Schedule{a, b})
	assert.Len(t, top, 2)
}

func TestRank_EmptyInputReturnsNil(t *testing.T) {
	assert.Nil(t, Rank(nil))
}
