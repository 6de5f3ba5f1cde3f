// Package data implements the external collaborators described in
// SPEC_FULL.md §6: CSV/JSON readers and writers for members, responses,
// cancellations, partnerships, and the output schedule. The core scheduler
// package never imports this package; all I/O happens at the boundary.
package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

var membersHeader = []string{
	"id", "full_name", "display_name", "email", "role",
	"index", "priority", "total_attended", "active", "date_joined",
}

const memberDateLayout = "2006-01-02"

// ReadMembers parses the Members record (§6): one row per person, carrying
// identity, primary role, and the cross-period fairness counters.
func ReadMembers(r io.Reader) ([]*model.Person, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read members csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := checkHeader(rows[0], membersHeader); err != nil {
		return nil, err
	}

	people := make([]*model.Person, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p, err := parseMemberRow(row)
		if err != nil {
			return nil, fmt.Errorf("members csv row %d: %w", i+2, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func parseMemberRow(row []string) (*model.Person, error) {
	if len(row) != len(membersHeader) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(membersHeader), len(row))
	}
	if strings.TrimSpace(row[0]) == "" {
		return nil, fmt.Errorf("member requires an 'id' field")
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", row[0], err)
	}
	if strings.TrimSpace(row[4]) == "" {
		return nil, fmt.Errorf("member requires a 'role' field")
	}
	role, err := model.RoleFromString(row[4])
	if err != nil {
		return nil, err
	}
	index, err := strconv.Atoi(row[5])
	if err != nil {
		return nil, fmt.Errorf("invalid index %q: %w", row[5], err)
	}
	priority, err := strconv.Atoi(row[6])
	if err != nil {
		return nil, fmt.Errorf("invalid priority %q: %w", row[6], err)
	}
	totalAttended, err := strconv.Atoi(row[7])
	if err != nil {
		return nil, fmt.Errorf("invalid total_attended %q: %w", row[7], err)
	}
	active := strings.EqualFold(strings.TrimSpace(row[8]), "true")
	dateJoined, err := time.Parse(memberDateLayout, row[9])
	if err != nil {
		return nil, fmt.Errorf("invalid date_joined %q: %w", row[9], err)
	}

	return &model.Person{
		ID:            model.PersonID(id),
		FullName:      row[1],
		DisplayName:   row[2],
		Email:         row[3],
		PrimaryRole:   role,
		Index:         index,
		Priority:      priority,
		TotalAttended: totalAttended,
		Active:        active,
		DateJoined:    dateJoined,
		Availability:  map[model.EventID]bool{},
	}, nil
}

// WriteMembers writes the Members record back out, the shape the Results
// Applier's output takes (§6 "Updated members record").
func WriteMembers(w io.Writer, people []*model.Person) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(membersHeader); err != nil {
		return err
	}
	for _, p := range people {
		row := []string{
			strconv.Itoa(int(p.ID)),
			p.FullName,
			p.DisplayName,
			p.Email,
			p.PrimaryRole.String(),
			strconv.Itoa(p.Index),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.TotalAttended),
			strconv.FormatBool(p.Active),
			p.DateJoined.Format(memberDateLayout),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("unexpected header: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("unexpected header: got %v, want %v", got, want)
		}
	}
	return nil
}
