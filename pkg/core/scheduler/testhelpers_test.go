package scheduler

import (
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

var (
	shortDuration = model.Duration{Name: "short", Minutes: 90, MinRole: 2}
	longDuration  = model.Duration{Name: "long", Minutes: 120, MinRole: 3}
	durationTable = []model.Duration{longDuration, shortDuration}
)

func newPerson(id model.PersonID, role model.Role, availability ...model.EventID) *model.Person {
	avail := make(map[model.EventID]bool, len(availability))
	for _, a := range availability {
		avail[a] = true
	}
	return &model.Person{
		ID:           id,
		FullName:     "Person",
		PrimaryRole:  role,
		Active:       true,
		SwitchPref:   model.PrimaryOnly,
		Availability: avail,
		EventLimit:   len(availability),
		Responded:    true,
	}
}

func date(offset int) time.Time {
	return time.Date(2026, time.March, 1+offset, 19, 0, 0, 0, time.UTC)
}

func newEvent(id model.EventID, offset int, dur model.Duration, maxRole int) *model.Event {
	return model.NewEvent(id, date(offset), dur, maxRole)
}
