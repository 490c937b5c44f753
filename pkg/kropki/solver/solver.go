// Package solver is the public entry point for solving 9x9 puzzles
// built from a givens string and a set of adjacency constraints.
package solver

import (
	"context"
	"strings"

	engine "github.com/gridworks/kropki/internal/solver"
	"github.com/gridworks/kropki/pkg/kropki"
	"github.com/gridworks/kropki/pkg/kropki/constraint"
)

// Solver configures and runs one propagation-plus-search solve per
// call to Solve.
type Solver struct {
	constraints []kropki.Constraint
	tracer      kropki.Tracer
}

// NewSolver returns a solver configured by the given options. Classic
// puzzles want WithClassicGroups; Kropki variants add dots on top.
func NewSolver(options ...Option) (*Solver, error) {
	s := &Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type Option func(s *Solver) error

// WithClassicGroups registers the 27 row, column, and box groups.
func WithClassicGroups() Option {
	return func(s *Solver) error {
		s.constraints = append(s.constraints, constraint.ClassicGroups()...)
		return nil
	}
}

// WithConstraints registers extra constraints in order.
func WithConstraints(constraints ...kropki.Constraint) Option {
	return func(s *Solver) error {
		s.constraints = append(s.constraints, constraints...)
		return nil
	}
}

// WithWhiteDot adds a white dot between two cells given as zero-based
// (row, column) pairs.
func WithWhiteDot(r1, c1, r2, c2 int) Option {
	return WithConstraints(constraint.WhiteDot(r1, c1, r2, c2))
}

// WithBlackDot adds a black dot between two cells given as zero-based
// (row, column) pairs.
func WithBlackDot(r1, c1, r2, c2 int) Option {
	return WithConstraints(constraint.BlackDot(r1, c1, r2, c2))
}

// WithChain adds a strictly increasing chain over cells given as
// zero-based (row, column) pairs, in order.
func WithChain(rc ...[2]int) Option {
	return WithConstraints(constraint.Chain(rc...))
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

// Solve decodes the givens, propagates to a fixpoint, and searches for
// a solution. Malformed or inconsistent givens and cancellation
// (kropki.ErrIncomplete) are returned as errors; an exhausted search
// returns a Solution whose Error is kropki.ErrNotSatisfiable, with the
// domains as they stood after the givens' fixpoint.
func (s *Solver) Solve(ctx context.Context, givens string) (*Solution, error) {
	eng, err := engine.New(
		engine.WithConstraints(s.constraints...),
		engine.WithTracer(s.tracer),
	)
	if err != nil {
		return nil, err
	}
	if err := eng.LoadGivens(givens); err != nil {
		return nil, err
	}
	found, err := eng.Search(ctx)
	if err != nil {
		return nil, err
	}
	solution := &Solution{
		domains:  eng.Domains(),
		branches: eng.Branches(),
	}
	if !found {
		solution.err = kropki.ErrNotSatisfiable
	}
	return solution, nil
}

// Solution is a read-only snapshot of the 81 domains at the end of a
// solve, usable for rendering or debugging even when no solution was
// found.
type Solution struct {
	domains  [kropki.NN]kropki.Domain
	branches uint64
	err      error
}

// Error returns kropki.ErrNotSatisfiable when the search exhausted all
// branches, nil otherwise.
func (s *Solution) Error() error {
	return s.err
}

// Solved reports whether every domain is a singleton.
func (s *Solution) Solved() bool {
	for i := range s.domains {
		if !s.domains[i].IsSingleton() {
			return false
		}
	}
	return true
}

// Domain returns the domain of one cell as a nine-bit mask.
func (s *Solution) Domain(i kropki.CellIndex) kropki.Domain {
	return s.domains[i]
}

// Domains returns a snapshot of all 81 domains.
func (s *Solution) Domains() [kropki.NN]kropki.Domain {
	return s.domains
}

// Digit returns the finalized digit of a cell, or 0 when the cell is
// not singleton.
func (s *Solution) Digit(i kropki.CellIndex) int {
	d, ok := s.domains[i].Digit()
	if !ok {
		return 0
	}
	return d
}

// Branches returns the number of branch decisions the search took.
func (s *Solution) Branches() uint64 {
	return s.branches
}

// String renders the board as nine rows of digits, blanks for cells
// that are not finalized.
func (s *Solution) String() string {
	var sb strings.Builder
	for row := 0; row < kropki.N; row++ {
		for col := 0; col < kropki.N; col++ {
			if d := s.Digit(kropki.Index(row, col)); d != 0 {
				sb.WriteByte(byte('0' + d))
			} else {
				sb.WriteByte(' ')
			}
			if col != kropki.N-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
