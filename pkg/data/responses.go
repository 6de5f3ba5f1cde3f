package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

var responsesHeader = []string{
	"timestamp", "email", "role", "switch_pref", "max_sessions",
	"availability", "duration_override", "min_interval_days",
}

// Response is one parsed row of the Responses record (§6), prior to being
// matched against a canonical member by email.
type Response struct {
	Timestamp       string
	Email           string
	Role            model.Role
	SwitchPref      model.SwitchPreference
	EventLimit      int
	Availability    []model.EventID
	DurationOverride string
	MinIntervalDays int
}

// ReadResponses parses the Responses record.
func ReadResponses(r io.Reader) ([]Response, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read responses csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := checkHeader(rows[0], responsesHeader); err != nil {
		return nil, err
	}

	out := make([]Response, 0, len(rows)-1)
	for i, row := range rows[1:] {
		resp, err := parseResponseRow(row)
		if err != nil {
			return nil, fmt.Errorf("responses csv row %d: %w", i+2, err)
		}
		out = append(out, resp)
	}
	return out, nil
}

func parseResponseRow(row []string) (Response, error) {
	if len(row) != len(responsesHeader) {
		return Response{}, fmt.Errorf("expected %d fields, got %d", len(responsesHeader), len(row))
	}
	role, err := model.RoleFromString(row[2])
	if err != nil {
		return Response{}, err
	}
	switchPref, err := model.SwitchPreferenceFromString(row[3])
	if err != nil {
		return Response{}, err
	}
	limit, err := strconv.Atoi(row[4])
	if err != nil {
		return Response{}, fmt.Errorf("invalid max_sessions %q: %w", row[4], err)
	}
	var availability []model.EventID
	if trimmed := strings.TrimSpace(row[5]); trimmed != "" {
		for _, part := range strings.Split(trimmed, ",") {
			availability = append(availability, model.EventID(strings.TrimSpace(part)))
		}
	}
	minInterval, err := strconv.Atoi(row[7])
	if err != nil {
		return Response{}, fmt.Errorf("invalid min_interval_days %q: %w", row[7], err)
	}

	return Response{
		Timestamp:        row[0],
		Email:            row[1],
		Role:             role,
		SwitchPref:       switchPref,
		EventLimit:       limit,
		Availability:     availability,
		DurationOverride: row[6],
		MinIntervalDays:  minInterval,
	}, nil
}

// ApplyResponses merges parsed responses onto the canonical member list,
// matched by email, and marks every matched person as having responded. A
// response whose email has no matching member, or whose availability names
// an event outside knownEvents, is a fatal input error (§6/§7, invariant I2):
// the collaborator rejects it before it reaches the core.
func ApplyResponses(people []*model.Person, responses []Response, knownEvents map[model.EventID]bool) error {
	byEmail := make(map[string]*model.Person, len(people))
	for _, p := range people {
		byEmail[strings.ToLower(p.Email)] = p
	}
	for _, r := range responses {
		p, ok := byEmail[strings.ToLower(r.Email)]
		if !ok {
			return fmt.Errorf("response references unknown email %q", r.Email)
		}
		for _, id := range r.Availability {
			if !knownEvents[id] {
				return fmt.Errorf("response references unknown event %q", id)
			}
		}
		p.SwitchPref = r.SwitchPref
		p.EventLimit = r.EventLimit
		p.MinIntervalDays = r.MinIntervalDays
		p.Responded = true
		p.Availability = make(map[model.EventID]bool, len(r.Availability))
		for _, id := range r.Availability {
			p.Availability[id] = true
		}
	}
	return nil
}
