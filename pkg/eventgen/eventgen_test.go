package eventgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

var (
	short = model.Duration{Name: "short", Minutes: 90, MinRole: 2}
	long  = model.Duration{Name: "long", Minutes: 120, MinRole: 3}
	table = []model.Duration{long, short}
)

func TestGenerate_WeeklyRecurrence(t *testing.T) {
	start := time.Date(2026, time.January, 5, 19, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 21)

	events, err := Generate(Config{
		RRule:           "FREQ=WEEKLY",
		Start:           start,
		End:             end,
		DefaultDuration: short,
		DurationTable:   table,
		MaxRole:         6,
	})
	require.NoError(t, err)
	assert.Len(t, events, 4)
	assert.Equal(t, "short", events[0].DurationName)
}

func TestGenerate_SkipOverrideDropsDate(t *testing.T) {
	start := time.Date(2026, time.January, 5, 19, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	skipDate := start.AddDate(0, 0, 7)

	events, err := Generate(Config{
		RRule:           "FREQ=WEEKLY",
		Start:           start,
		End:             end,
		DefaultDuration: short,
		DurationTable:   table,
		MaxRole:         6,
		Overrides: []Override{
			{
				AppliesTo: func(d time.Time) bool { return d.Equal(skipDate) },
				Skip:      true,
			},
		},
	})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestGenerate_DurationOverride(t *testing.T) {
	start := time.Date(2026, time.January, 5, 19, 0, 0, 0, time.UTC)
	end := start

	events, err := Generate(Config{
		RRule:           "FREQ=WEEKLY",
		Start:           start,
		End:             end,
		DefaultDuration: short,
		DurationTable:   table,
		MaxRole:         6,
		Overrides: []Override{
			{
				AppliesTo: func(d time.Time) bool { return true },
				Duration:  "long",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "long", events[0].DurationName)
	assert.Equal(t, 3, events[0].MinRole)
}
