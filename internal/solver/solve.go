package solver

import (
	"context"
	"fmt"

	"github.com/gridworks/kropki/pkg/kropki"
)

// Solver owns the board state, the registered constraints, the
// cell-to-constraint watcher index, and the pending-work queue, and
// layers an MRV depth-first search on top of fixpoint propagation.
type Solver struct {
	state       *State
	constraints []kropki.Constraint
	watchers    [kropki.NN][]int

	// FIFO of pending constraint indices. Duplicate entries are
	// tolerated; rules are idempotent at fixpoint.
	queue []int
	head  int

	tracer   kropki.Tracer
	branches uint64
}

// New returns a solver with a fresh state, configured by the given
// options.
func New(options ...Option) (*Solver, error) {
	s := &Solver{state: NewState()}
	for _, option := range append(options, defaults...) {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type Option func(s *Solver) error

// WithConstraints registers the given constraints in order.
func WithConstraints(constraints ...kropki.Constraint) Option {
	return func(s *Solver) error {
		for _, c := range constraints {
			if err := s.Register(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithTracer installs a tracer notified of every branch decision.
func WithTracer(t kropki.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = kropki.DefaultTracer{}
		}
		return nil
	},
}

// Register appends the constraint and records it as a watcher of
// every cell in its scope. The watcher index is never mutated once
// propagation starts.
func (s *Solver) Register(c kropki.Constraint) error {
	scope := c.Scope()
	if len(scope) < 2 {
		return fmt.Errorf("constraint %q: scope needs at least two cells", c)
	}
	for _, i := range scope {
		if !i.Valid() {
			return fmt.Errorf("constraint %q: cell index %d out of range", c, i)
		}
	}
	ci := len(s.constraints)
	s.constraints = append(s.constraints, c)
	for _, i := range scope {
		s.watchers[i] = append(s.watchers[i], ci)
	}
	return nil
}

func (s *Solver) enqueue(ci int) {
	s.queue = append(s.queue, ci)
}

func (s *Solver) dequeue() (int, bool) {
	if s.head >= len(s.queue) {
		s.queue = s.queue[:0]
		s.head = 0
		return 0, false
	}
	ci := s.queue[s.head]
	s.head++
	return ci, true
}

func (s *Solver) queueEmpty() bool {
	return s.head >= len(s.queue)
}

// EnqueueAll schedules every constraint, used once at the start of a
// fresh top-level solve so global constraints are checked even when no
// given triggered them.
func (s *Solver) EnqueueAll() {
	for ci := range s.constraints {
		s.enqueue(ci)
	}
}

// EnqueueWatchers schedules every constraint watching the given cell,
// used after any external assignment.
func (s *Solver) EnqueueWatchers(i kropki.CellIndex) {
	for _, ci := range s.watchers[i] {
		s.enqueue(ci)
	}
}

// Propagate drains the pending queue to a fixpoint. When a rule
// reports a change, the watchers of every cell in that constraint's
// scope are re-enqueued, not only the changed cell's; the extra
// re-checks are harmless because rules are idempotent at fixpoint.
// A contradiction aborts the drain immediately. Reports whether any
// progress was made.
func (s *Solver) Propagate() (bool, error) {
	progress := false
	for {
		ci, ok := s.dequeue()
		if !ok {
			return progress, nil
		}
		changed, err := s.constraints[ci].Propagate(s.state)
		if err != nil {
			return progress, err
		}
		if changed {
			progress = true
			for _, j := range s.constraints[ci].Scope() {
				s.EnqueueWatchers(j)
			}
		}
	}
}

// Search runs MRV-ordered depth-first search from the current state,
// interleaving propagation with branching. It reports whether a
// solution was found; ctx is checked once per node, which is the seam
// for callers composing a deadline or branch budget around the core.
func (s *Solver) Search(ctx context.Context) (bool, error) {
	if len(s.state.trail) == 0 && s.queueEmpty() {
		s.EnqueueAll()
	}
	return s.search(ctx, 0)
}

func (s *Solver) search(ctx context.Context, depth int) (bool, error) {
	if ctx.Err() != nil {
		return false, kropki.ErrIncomplete
	}

	if _, err := s.Propagate(); err != nil {
		// Dead branch; the caller restores its checkpoint.
		return false, nil
	}
	if s.state.Solved() {
		return true, nil
	}
	// Defend against rules that detect empty domains without raising
	// them as contradictions.
	for i := range s.state.domains {
		if s.state.domains[i] == 0 {
			return false, nil
		}
	}

	cell, ok := s.chooseMRV()
	if !ok {
		return true, nil
	}
	dom := s.state.Domain(cell)

	checkpoint := s.state.Checkpoint()
	for d := 1; d <= kropki.N; d++ {
		if !dom.Has(d) {
			continue
		}
		s.branches++
		s.tracer.Trace(searchPosition{cell: cell, digit: d, depth: depth, branches: s.branches})

		if _, err := s.state.Assign(cell, kropki.SingletonOf(d)); err == nil {
			s.EnqueueWatchers(cell)
			found, err := s.search(ctx, depth+1)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
		s.state.Restore(checkpoint)
	}
	return false, nil
}

// chooseMRV selects the cell with the smallest domain size strictly
// greater than one, breaking ties by lowest cell index. It reports
// false when every cell is already singleton.
func (s *Solver) chooseMRV() (kropki.CellIndex, bool) {
	best := kropki.CellIndex(-1)
	bestCount := 0
	for i := range s.state.domains {
		cnt := s.state.domains[i].Count()
		if cnt > 1 && (best < 0 || cnt < bestCount) {
			best = kropki.CellIndex(i)
			bestCount = cnt
		}
	}
	return best, best >= 0
}

// Solved reports whether every domain is a singleton.
func (s *Solver) Solved() bool {
	return s.state.Solved()
}

// Domains returns a read-only snapshot of all 81 domains.
func (s *Solver) Domains() [kropki.NN]kropki.Domain {
	return s.state.Domains()
}

// Branches returns the number of branch decisions taken so far.
func (s *Solver) Branches() uint64 {
	return s.branches
}

type searchPosition struct {
	cell     kropki.CellIndex
	digit    int
	depth    int
	branches uint64
}

func (p searchPosition) Cell() kropki.CellIndex { return p.cell }
func (p searchPosition) Digit() int             { return p.digit }
func (p searchPosition) Depth() int             { return p.depth }
func (p searchPosition) Branches() uint64       { return p.branches }
