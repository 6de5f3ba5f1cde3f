package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

func TestCanAttend_RequiresAvailability(t *testing.T) {
	p := newPerson(1, model.Leader, "e1")
	e2 := newEvent("e2", 1, shortDuration, 4)
	assert.False(t, CanAttend(p, e2))

	e1 := newEvent("e1", 0, shortDuration, 4)
	assert.True(t, CanAttend(p, e1))
}

func TestCanAttend_EventLimitBlocksAtCapacity(t *testing.T) {
	p := newPerson(1, model.Leader, "e1", "e2")
	p.EventLimit = 1
	p.NumEventsThisPeriod = 1
	e1 := newEvent("e1", 0, shortDuration, 4)
	assert.False(t, CanAttend(p, e1))
}

func TestCanAttend_MinIntervalZeroAllowsSameDay(t *testing.T) {
	p := newPerson(1, model.Leader, "e1", "e2")
	p.EventLimit = 2
	p.MinIntervalDays = 0
	e1 := newEvent("e1", 0, shortDuration, 4)
	e2 := model.NewEvent("e2", e1.Date, shortDuration, 4)
	p.RecordAttendance(e1.Date)
	assert.True(t, CanAttend(p, e2))
}

func TestCanAttend_MinIntervalBlocksFutureAssignment(t *testing.T) {
	// Mirrors original_source's "bidirectional_blocks_future" case: a later
	// assigned date that is too close to the candidate event blocks it even
	// though the candidate comes first chronologically.
	p := newPerson(1, model.Leader, "e1", "e2")
	p.EventLimit = 2
	p.MinIntervalDays = 2
	future := newEvent("e2", 1, shortDuration, 4)
	p.RecordAttendance(future.Date)

	candidate := newEvent("e1", 0, shortDuration, 4)
	assert.False(t, CanAttend(p, candidate))
}
