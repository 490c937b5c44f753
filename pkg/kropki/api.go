package kropki

import (
	"errors"
	"fmt"
	"math/bits"
)

// Board geometry: 9 rows by 9 columns, cells addressed row-major.
const (
	N  = 9
	NN = N * N
)

// CellIndex identifies one of the 81 cells of the grid.
type CellIndex int

// Index returns the cell at the given zero-based row and column.
func Index(row, col int) CellIndex {
	return CellIndex(row*N + col)
}

func (i CellIndex) Row() int { return int(i) / N }
func (i CellIndex) Col() int { return int(i) % N }
func (i CellIndex) Box() int { return (i.Row()/3)*3 + i.Col()/3 }

// Valid reports whether the index addresses a cell on the board.
func (i CellIndex) Valid() bool { return i >= 0 && i < NN }

// String implements fmt.Stringer using one-based puzzle coordinates.
func (i CellIndex) String() string {
	return fmt.Sprintf("r%dc%d", i.Row()+1, i.Col()+1)
}

// Domain is the set of digits still possible for a cell, packed as a
// bitmask: bit d represents digit d for 1 <= d <= 9, bit 0 is unused.
// An empty Domain is never a valid resting state; reaching one signals
// a contradiction.
type Domain uint16

const (
	// DigitsMask is the full domain containing all nine digits.
	DigitsMask Domain = 0b_11_1111_1110
	// EvenMask contains the digits that have a half in 1..9.
	EvenMask Domain = 1<<2 | 1<<4 | 1<<6 | 1<<8
)

// SingletonOf returns the domain containing only the digit d.
func SingletonOf(d int) Domain {
	return 1 << d
}

// DomainOf returns the domain containing exactly the given digits.
func DomainOf(digits ...int) Domain {
	var m Domain
	for _, d := range digits {
		m |= SingletonOf(d)
	}
	return m
}

// Has reports whether the digit d is still possible.
func (m Domain) Has(d int) bool { return m&SingletonOf(d) != 0 }

// Count returns the number of digits still possible.
func (m Domain) Count() int { return bits.OnesCount16(uint16(m)) }

// IsSingleton reports whether exactly one digit remains.
func (m Domain) IsSingleton() bool { return m.Count() == 1 }

// Digit returns the remaining digit of a singleton domain, or false
// when the domain holds zero or several digits.
func (m Domain) Digit() (int, bool) {
	if !m.IsSingleton() {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(m)), true
}

// Min returns the smallest digit in the domain, or 0 when empty.
func (m Domain) Min() int {
	if m == 0 {
		return 0
	}
	return bits.TrailingZeros16(uint16(m))
}

// Max returns the largest digit in the domain, or 0 when empty.
func (m Domain) Max() int {
	if m == 0 {
		return 0
	}
	return bits.Len16(uint16(m)) - 1
}

// String renders the domain as a nine-bit pattern, digit 9 leftmost.
func (m Domain) String() string {
	return fmt.Sprintf("%09b", uint16(m)>>1)
}

// Board is the mutable view of cell domains that constraint rules
// propagate against. Implementations record every narrowing on an undo
// trail and must never store an empty domain: a narrowing that would
// empty a domain fails with ErrContradiction and leaves the stored
// domain untouched.
type Board interface {
	// Domain returns the current domain of the given cell.
	Domain(CellIndex) Domain
	// Narrow intersects the cell's domain with mask and reports
	// whether the stored domain changed.
	Narrow(CellIndex, Domain) (bool, error)
	// Assign is Narrow specialized to a singleton mask. Passing a
	// non-singleton mask is a caller error.
	Assign(CellIndex, Domain) (bool, error)
}

// Constraint implementations narrow the domains of a fixed scope of
// cells. Rules must be monotone (only ever remove digits) and
// idempotent at fixpoint: re-running a rule on an already-consistent
// scope reports no change.
type Constraint interface {
	String() string
	// Scope returns the cells this constraint watches.
	Scope() []CellIndex
	// Propagate narrows the scope's domains and reports whether any
	// domain changed, or ErrContradiction when the scope cannot be
	// satisfied.
	Propagate(Board) (bool, error)
}

var (
	// ErrContradiction signals that a domain was narrowed to empty or
	// that two finalized cells in an all-different scope share a
	// digit. It is a routine pruning signal, not a fatal condition.
	ErrContradiction = errors.New("contradiction")

	// ErrIncomplete is returned when the search is cancelled before a
	// solution could be found.
	ErrIncomplete = errors.New("cancelled before a solution could be found")

	// ErrNotSatisfiable is returned when the search exhausts every
	// branch without finding a solution.
	ErrNotSatisfiable = errors.New("constraints not satisfiable")
)

// DecodeError reports an invalid character in a givens string. The
// position counts non-whitespace characters only.
type DecodeError struct {
	Position int
	Char     rune
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
}

// LengthError reports a givens string whose non-whitespace length is
// not exactly 81.
type LengthError struct {
	Got int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("need %d puzzle characters, got %d", NN, e.Got)
}
