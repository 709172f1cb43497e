package board

import (
	"sort"
)

// IDSet tracks a set of entity ids. The persistence boundary requires an
// explicit array form, so the set converts to a sorted slice on save and is
// rebuilt from one on load; membership, not order, is the contract.
type IDSet map[string]struct{}

// NewIDSet returns a set containing the given ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// IDSetFromArray rebuilds a set from its persisted array form.
func IDSetFromArray(ids []string) IDSet {
	return NewIDSet(ids...)
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts an id.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Remove deletes an id.
func (s IDSet) Remove(id string) {
	delete(s, id)
}

// Toggle flips membership and returns the new state.
func (s IDSet) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// ToArray returns the members as a sorted slice.
func (s IDSet) ToArray() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
