package unitmeta

import (
	"fmt"

	"fortio.org/safecast"
)

// Store keeps the metadata of every loaded dependency unit, numbered in
// load order. UnitID 0 stays reserved for the unit being compiled, so
// the first dependency gets ID 1.
type Store struct {
	units []*Payload
}

func NewStore() *Store {
	return &Store{}
}

// Add registers a dependency unit and returns its assigned ID.
func (s *Store) Add(p *Payload) UnitID {
	s.units = append(s.units, p)
	n, err := safecast.Conv[uint32](len(s.units))
	if err != nil {
		panic(fmt.Errorf("unit count overflow: %w", err))
	}
	return UnitID(n)
}

// Len returns the number of loaded dependency units.
func (s *Store) Len() int {
	return len(s.units)
}

// Name returns the recorded unit name, or "" for LocalUnit and unknown IDs.
func (s *Store) Name(unit UnitID) string {
	p := s.payload(unit)
	if p == nil {
		return ""
	}
	return p.UnitName
}

// EachUnit calls fn for every loaded dependency unit, in load order.
func (s *Store) EachUnit(fn func(unit UnitID)) {
	for i := range s.units {
		fn(UnitID(i + 1)) //nolint:gosec // bounded by Add
	}
}

// EachLangItem calls fn for every lang-item binding the unit recorded at
// its own compilation. fn returns false to stop early.
func (s *Store) EachLangItem(unit UnitID, fn func(node NodeID, item uint32) bool) {
	p := s.payload(unit)
	if p == nil {
		return
	}
	for _, it := range p.Items {
		if !fn(it.Node, it.Item) {
			return
		}
	}
}

func (s *Store) payload(unit UnitID) *Payload {
	if unit == LocalUnit || int(unit) > len(s.units) {
		return nil
	}
	return s.units[unit-1]
}
