package model

// PartnershipRequest is a directed "I would like to be scheduled with this
// person" graph. Mutuality (A requests B and B requests A) is derived, not
// stored.
type PartnershipRequest map[PersonID]map[PersonID]bool

// Requests reports whether a requested b.
func (pr PartnershipRequest) Requests(a, b PersonID) bool {
	return pr[a] != nil && pr[a][b]
}

// IsMutual reports whether a and b both requested each other.
func (pr PartnershipRequest) IsMutual(a, b PersonID) bool {
	return pr.Requests(a, b) && pr.Requests(b, a)
}

// Add records that from requested to.
func (pr PartnershipRequest) Add(from, to PersonID) {
	if pr[from] == nil {
		pr[from] = make(map[PersonID]bool)
	}
	pr[from][to] = true
}
