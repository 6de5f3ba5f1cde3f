// Package history implements the SQLite-backed period history store
// (SPEC_FULL.md §4.17): the Go-native home for the Python original's
// db/backup.py, db/migrate.py, and snapshot_generator.py subsystem, which
// the distilled spec names as an out-of-core-scope external collaborator.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS periods (
	folder        TEXT PRIMARY KEY,
	imported_at   TEXT NOT NULL,
	schedule_json TEXT NOT NULL,
	people_json   TEXT NOT NULL
);
`

// Store is a thin wrapper around a SQLite database, following the same
// narrow-wrapper shape as the teacher's pkg/db.DB (one method per operation,
// no query building leaking into callers), reworked onto database/sql
// instead of a Sheets-backed query layer.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path and ensures its schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// PersonSnapshot is the JSON-friendly projection of a Person's cross-period
// state; the core model package carries no JSON tags of its own, so history
// owns this shape rather than leaking serialization concerns into the core.
type PersonSnapshot struct {
	ID            model.PersonID `json:"id"`
	Email         string         `json:"email"`
	Priority      int            `json:"priority"`
	TotalAttended int            `json:"total_attended"`
	Index         int            `json:"index"`
}

// EventSnapshot is the JSON-friendly projection of one valid event.
type EventSnapshot struct {
	ID        model.EventID        `json:"id"`
	Date      time.Time            `json:"date"`
	Attendees []model.AttendeePair `json:"attendees"`
}

// ScheduleSnapshot is what gets persisted for one historical period.
type ScheduleSnapshot struct {
	Events  []EventSnapshot `json:"events"`
	Metrics model.Metrics   `json:"metrics"`
}

func snapshotSchedule(s *model.Schedule) ScheduleSnapshot {
	snap := ScheduleSnapshot{Metrics: s.Metrics}
	for _, e := range s.ValidEvents {
		snap.Events = append(snap.Events, EventSnapshot{ID: e.ID, Date: e.Date, Attendees: e.AttendeePairs()})
	}
	return snap
}

func snapshotPeople(people []*model.Person) []PersonSnapshot {
	out := make([]PersonSnapshot, 0, len(people))
	for _, p := range people {
		out = append(out, PersonSnapshot{ID: p.ID, Email: p.Email, Priority: p.Priority, TotalAttended: p.TotalAttended, Index: p.Index})
	}
	return out
}

// InsertPeriod records one closed period's schedule and resulting person
// state, replacing any existing record for the same folder (re-importing a
// period is idempotent).
func (s *Store) InsertPeriod(ctx context.Context, folder string, schedule *model.Schedule, people []*model.Person) error {
	scheduleJSON, err := json.Marshal(snapshotSchedule(schedule))
	if err != nil {
		return fmt.Errorf("marshal schedule snapshot: %w", err)
	}
	peopleJSON, err := json.Marshal(snapshotPeople(people))
	if err != nil {
		return fmt.Errorf("marshal people snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO periods (folder, imported_at, schedule_json, people_json) VALUES (?, ?, ?, ?)
		 ON CONFLICT(folder) DO UPDATE SET imported_at = excluded.imported_at, schedule_json = excluded.schedule_json, people_json = excluded.people_json`,
		folder, time.Now().UTC().Format(time.RFC3339), string(scheduleJSON), string(peopleJSON))
	if err != nil {
		return fmt.Errorf("insert period %q: %w", folder, err)
	}
	return nil
}

// PeriodRecord is one row read back from the history store.
type PeriodRecord struct {
	Folder     string
	ImportedAt time.Time
	Schedule   ScheduleSnapshot
	People     []PersonSnapshot
}

// GetPeriod reads back a single period's record by folder name.
func (s *Store) GetPeriod(ctx context.Context, folder string) (*PeriodRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT folder, imported_at, schedule_json, people_json FROM periods WHERE folder = ?`, folder)
	var rec PeriodRecord
	var importedAt, scheduleJSON, peopleJSON string
	if err := row.Scan(&rec.Folder, &importedAt, &scheduleJSON, &peopleJSON); err != nil {
		return nil, fmt.Errorf("get period %q: %w", folder, err)
	}
	ts, err := time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("parse imported_at for %q: %w", folder, err)
	}
	rec.ImportedAt = ts
	if err := json.Unmarshal([]byte(scheduleJSON), &rec.Schedule); err != nil {
		return nil, fmt.Errorf("unmarshal schedule for %q: %w", folder, err)
	}
	if err := json.Unmarshal([]byte(peopleJSON), &rec.People); err != nil {
		return nil, fmt.Errorf("unmarshal people for %q: %w", folder, err)
	}
	return &rec, nil
}

// ListPeriods returns every recorded folder name, most recently imported
// first.
func (s *Store) ListPeriods(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT folder FROM periods ORDER BY imported_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	var folders []string
	for rows.Next() {
		var folder string
		if err := rows.Scan(&folder); err != nil {
			return nil, fmt.Errorf("scan period folder: %w", err)
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}
