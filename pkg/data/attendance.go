package data

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
	"github.com/carmelly/peeps-scheduler/pkg/core/results"
)

type attendanceAttendeeJSON struct {
	ID   model.PersonID `json:"id"`
	Role string         `json:"role"`
}

type attendanceEventJSON struct {
	EventID   model.EventID            `json:"event_id"`
	Date      time.Time                `json:"date"`
	Attendees []attendanceAttendeeJSON `json:"attendees"`
}

// ReadAttendance parses the authoritative "what actually happened" record
// (§4.10) the Results Applier consumes: one entry per event, with the
// actual attendees and roles as they occurred, which may differ from what
// Schedule originally chose.
func ReadAttendance(r io.Reader) ([]results.EventAttendance, error) {
	var raw []attendanceEventJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode attendance record: %w", err)
	}

	out := make([]results.EventAttendance, 0, len(raw))
	for _, ev := range raw {
		rec := results.EventAttendance{EventID: ev.EventID, Date: ev.Date}
		for _, a := range ev.Attendees {
			role, err := model.RoleFromString(a.Role)
			if err != nil {
				return nil, fmt.Errorf("attendance record event %q: %w", ev.EventID, err)
			}
			rec.Attendees = append(rec.Attendees, model.AttendeePair{PersonID: a.ID, Role: role})
		}
		out = append(out, rec)
	}
	return out, nil
}
