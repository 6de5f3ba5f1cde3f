package data

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

func TestReadAttendance_ParsesEventsAndRoles(t *testing.T) {
	doc := `[
		{"event_id": "2025-03-01 19:00", "date": "2025-03-01T19:00:00Z", "attendees": [
			{"id": 1, "role": "Leader"},
			{"id": 2, "role": "Follow"}
		]}
	]`
	attendance, err := ReadAttendance(bytes.NewBufferString(doc))
	require.NoError(t, err)
	require.Len(t, attendance, 1)
	assert.Equal(t, model.EventID("2025-03-01 19:00"), attendance[0].EventID)
	require.Len(t, attendance[0].Attendees, 2)
	assert.Equal(t, model.PersonID(1), attendance[0].Attendees[0].PersonID)
	assert.Equal(t, model.Leader, attendance[0].Attendees[0].Role)
	assert.Equal(t, model.Follower, attendance[0].Attendees[1].Role)
}

func TestReadAttendance_RejectsUnknownRole(t *testing.T) {
	doc := `[{"event_id": "e1", "date": "2025-03-01T19:00:00Z", "attendees": [{"id": 1, "role": "Wizard"}]}]`
	_, err := ReadAttendance(bytes.NewBufferString(doc))
	assert.ErrorContains(t, err, "unknown role")
}
