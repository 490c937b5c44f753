package solver

import (
	"fmt"

	"github.com/gridworks/kropki/pkg/kropki"
)

type trailEntry struct {
	cell kropki.CellIndex
	prev kropki.Domain
}

// State holds the 81 cell domains of one solve attempt together with
// the undo trail that records every narrowing since the start of the
// current branch. It knows nothing about constraints or scheduling.
type State struct {
	domains [kropki.NN]kropki.Domain
	trail   []trailEntry
}

// NewState returns a state with every cell holding the full domain
// and an empty trail.
func NewState() *State {
	s := &State{
		trail: make([]trailEntry, 0, 256),
	}
	for i := range s.domains {
		s.domains[i] = kropki.DigitsMask
	}
	return s
}

// Domain returns the current domain of the given cell.
func (s *State) Domain(i kropki.CellIndex) kropki.Domain {
	return s.domains[i]
}

// Narrow intersects the cell's domain with mask. An empty result fails
// with ErrContradiction and leaves the stored domain unchanged; a
// change is recorded on the trail before the new domain is stored.
func (s *State) Narrow(i kropki.CellIndex, mask kropki.Domain) (bool, error) {
	old := s.domains[i]
	next := old & mask
	if next == 0 {
		return false, kropki.ErrContradiction
	}
	if next == old {
		return false, nil
	}
	s.trail = append(s.trail, trailEntry{cell: i, prev: old})
	s.domains[i] = next
	return true, nil
}

// Assign narrows the cell to a singleton mask.
func (s *State) Assign(i kropki.CellIndex, single kropki.Domain) (bool, error) {
	if !single.IsSingleton() {
		return false, fmt.Errorf("assign needs a single digit, got %s", single)
	}
	return s.Narrow(i, single)
}

// Checkpoint returns the current trail length.
func (s *State) Checkpoint() int {
	return len(s.trail)
}

// Restore pops trail entries down to the checkpoint, writing each
// previous domain back verbatim in reverse chronological order.
// Restoring to a checkpoint at or beyond the current length is a no-op.
func (s *State) Restore(checkpoint int) {
	for len(s.trail) > checkpoint {
		e := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		s.domains[e.cell] = e.prev
	}
}

// Solved reports whether every domain is a singleton.
func (s *State) Solved() bool {
	for i := range s.domains {
		if !s.domains[i].IsSingleton() {
			return false
		}
	}
	return true
}

// Domains returns a read-only snapshot of all 81 domains.
func (s *State) Domains() [kropki.NN]kropki.Domain {
	return s.domains
}
