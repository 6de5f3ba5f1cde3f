package data

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/carmelly/peeps-scheduler/pkg/core/model"
)

// ReadPartnerships parses the Partnerships record (§6): a JSON object
// mapping a person id to the list of person ids they'd like to be scheduled
// with. Self-references and references to unknown ids are fatal.
func ReadPartnerships(r io.Reader, knownIDs map[model.PersonID]bool) (model.PartnershipRequest, error) {
	raw := map[string][]int{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode partnerships: %w", err)
	}

	requests := model.PartnershipRequest{}
	for fromStr, tos := range raw {
		from, err := strconv.Atoi(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid partnership id %q: %w", fromStr, err)
		}
		fromID := model.PersonID(from)
		if !knownIDs[fromID] {
			return nil, fmt.Errorf("partnership references unknown person id %d", from)
		}
		for _, to := range tos {
			toID := model.PersonID(to)
			if !knownIDs[toID] {
				return nil, fmt.Errorf("partnership references unknown person id %d", to)
			}
			if toID == fromID {
				return nil, fmt.Errorf("partnership for person %d references itself", from)
			}
			requests.Add(fromID, toID)
		}
	}
	return requests, nil
}
