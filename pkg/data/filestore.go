package data

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// FileStore is the concrete, file-backed implementation of the narrow
// per-operation store interfaces declared in pkg/core/services. It knows
// nothing about the scheduling engine; it only resolves a period's data
// folder into the handful of files described in SPEC_FULL.md §6.
type FileStore struct {
	MembersPath       string
	ResponsesPath     string
	CancellationsPath string
	PartnershipsPath  string
	ResultsPath       string
}

// NewFileStore resolves the conventional file layout for a data folder:
// members.csv and responses.csv live directly under it, results.json is
// written there by Schedule, and cancellations/partnerships paths are
// whatever the config names (empty means "not supplied").
func NewFileStore(dataFolder, cancellationsFile, partnershipsFile string) *FileStore {
	return &FileStore{
		MembersPath:       filepath.Join(dataFolder, "members.csv"),
		ResponsesPath:     filepath.Join(dataFolder, "responses.csv"),
		CancellationsPath: cancellationsFile,
		PartnershipsPath:  partnershipsFile,
		ResultsPath:       filepath.Join(dataFolder, "results.json"),
	}
}

// ReadMembers loads the canonical Members record.
func (fs *FileStore) ReadMembers() ([]*model.Person, error) {
	f, err := os.Open(fs.MembersPath)
	if err != nil {
		return nil, fmt.Errorf("open members file: %w", err)
	}
	defer f.Close()
	return ReadMembers(f)
}

// WriteMembers overwrites the canonical Members record.
func (fs *FileStore) WriteMembers(people []*model.Person) error {
	f, err := os.Create(fs.MembersPath)
	if err != nil {
		return fmt.Errorf("create members file: %w", err)
	}
	defer f.Close()
	return WriteMembers(f, people)
}

// ReadResponses loads the period's Responses record.
func (fs *FileStore) ReadResponses() ([]Response, error) {
	f, err := os.Open(fs.ResponsesPath)
	if err != nil {
		return nil, fmt.Errorf("open responses file: %w", err)
	}
	defer f.Close()
	return ReadResponses(f)
}

// ReadCancellations loads the Cancellations record, or returns an empty,
// valid record if no cancellations file was configured for this period.
func (fs *FileStore) ReadCancellations(knownEvents map[model.EventID]bool, knownEmails map[string]bool) (*Cancellations, error) {
	if fs.CancellationsPath == "" {
		return &Cancellations{
			CancelledEvents: map[model.EventID]bool{},
			PerEmail:        map[string]map[model.EventID]bool{},
		}, nil
	}
	f, err := os.Open(fs.CancellationsPath)
	if err != nil {
		return nil, fmt.Errorf("open cancellations file: %w", err)
	}
	defer f.Close()
	return ReadCancellations(f, knownEvents, knownEmails)
}

// ReadPartnerships loads the Partnerships record, or an empty one if none
// was configured.
func (fs *FileStore) ReadPartnerships(knownIDs map[model.PersonID]bool) (model.PartnershipRequest, error) {
	if fs.PartnershipsPath == "" {
		return model.PartnershipRequest{}, nil
	}
	f, err := os.Open(fs.PartnershipsPath)
	if err != nil {
		return nil, fmt.Errorf("open partnerships file: %w", err)
	}
	defer f.Close()
	return ReadPartnerships(f, knownIDs)
}

// WriteSchedule writes the chosen schedule out as the period's results.json.
func (fs *FileStore) WriteSchedule(s *model.Schedule, names map[model.PersonID]string) error {
	f, err := os.Create(fs.ResultsPath)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()
	return WriteSchedule(f, s, names)
}

// ReadSchedule loads the period's previously written results.json.
func (fs *FileStore) ReadSchedule() (*model.Schedule, error) {
	f, err := os.Open(fs.ResultsPath)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()
	return ReadSchedule(f)
}
