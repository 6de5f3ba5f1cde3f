package data

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

func TestReadCancellations_RejectsUnknownEvent(t *testing.T) {
	body := `{"cancelled_events": ["2026-01-05 19:00"], "cancelled_availability": {}}`
	_, err := ReadCancellations(bytes.NewBufferString(body), map[model.EventID]bool{}, map[string]bool{})
	assert.ErrorContains(t, err, "unknown event")
}

func TestReadCancellations_RejectsUnknownEmail(t *testing.T) {
	body := `{"cancelled_events": [], "cancelled_availability": {"nobody@example.com": ["e1"]}}`
	known := map[model.EventID]bool{"e1": true}
	_, err := ReadCancellations(bytes.NewBufferString(body), known, map[string]bool{})
	assert.ErrorContains(t, err, "unknown email")
}

func TestCancellations_ApplyRemovesEventsAndOptOuts(t *testing.T) {
	body := `{"cancelled_events": ["e2"], "cancelled_availability": {"alice@example.com": ["e1"]}}`
	known := map[model.EventID]bool{"e1": true, "e2": true}
	emails := map[string]bool{"alice@example.com": true}
	c, err := ReadCancellations(bytes.NewBufferString(body), known, emails)
	require.NoError(t, err)

	e1 := model.NewEvent("e1", mustDate(t, "2026-01-01"), shortDurationForTest, 4)
	e2 := model.NewEvent("e2", mustDate(t, "2026-01-02"), shortDurationForTest, 4)
	alice := &model.Person{Email: "alice@example.com", Availability: map[model.EventID]bool{"e1": true}}

	kept, err := c.Apply([]*model.Event{e1, e2}, []*model.Person{alice})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, model.EventID("e1"), kept[0].ID)
	assert.False(t, alice.Availability["e1"])
}

func TestCancellations_ApplyRejectsOptOutNotInAvailability(t *testing.T) {
	body := `{"cancelled_events": [], "cancelled_availability": {"alice@example.com": ["e1"]}}`
	known := map[model.EventID]bool{"e1": true}
	emails := map[string]bool{"alice@example.com": true}
	c, err := ReadCancellations(bytes.NewBufferString(body), known, emails)
	require.NoError(t, err)

	e1 := model.NewEvent("e1", mustDate(t, "2026-01-01"), shortDurationForTest, 4)
	alice := &model.Person{Email: "alice@example.com", Availability: map[model.EventID]bool{}}

	_, err = c.Apply([]*model.Event{e1}, []*model.Person{alice})
	assert.ErrorContains(t, err, "not in their availability")
}

var shortDurationForTest = model.Duration{Name: "short", Minutes: 90, MinRole: 2}
