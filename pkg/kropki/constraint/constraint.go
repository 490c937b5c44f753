package constraint

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/gridworks/kropki/pkg/kropki"
)

type AllDifferentConstraint struct {
	cells [kropki.N]kropki.CellIndex
}

func (c *AllDifferentConstraint) String() string {
	s := make([]string, len(c.cells))
	for i, cell := range c.cells {
		s[i] = cell.String()
	}
	return fmt.Sprintf("%s are all different", strings.Join(s, ", "))
}

func (c *AllDifferentConstraint) Scope() []kropki.CellIndex {
	return c.cells[:]
}

// Propagate runs one pass over the nine-cell scope: it fails on a
// duplicated finalized digit, assigns hidden singles, and removes the
// digits already taken by singleton cells from every other domain.
// This is a partial arc-consistency pass, adequate because each group
// has exactly as many cells as digits.
func (c *AllDifferentConstraint) Propagate(b kropki.Board) (bool, error) {
	changed := false

	var taken kropki.Domain
	var count [kropki.N + 1]int
	var lastPos [kropki.N + 1]kropki.CellIndex

	for _, i := range c.cells {
		di := b.Domain(i)
		if di == 0 {
			return false, kropki.ErrContradiction
		}
		for m := uint16(di); m != 0; m &= m - 1 {
			d := bits.TrailingZeros16(m)
			count[d]++
			lastPos[d] = i
		}
		if di.IsSingleton() {
			taken |= di
		}
	}

	// Two cells finalized to the same digit cannot both stand. Cells
	// that merely still admit the digit are fine.
	for d := 1; d <= kropki.N; d++ {
		if count[d] < 2 {
			continue
		}
		bit := kropki.SingletonOf(d)
		singles := 0
		for _, i := range c.cells {
			if b.Domain(i) == bit {
				singles++
				if singles >= 2 {
					return false, kropki.ErrContradiction
				}
			}
		}
	}

	// Hidden singles: a digit admissible in exactly one cell goes there.
	for d := 1; d <= kropki.N; d++ {
		if count[d] != 1 {
			continue
		}
		ch, err := b.Assign(lastPos[d], kropki.SingletonOf(d))
		if err != nil {
			return false, err
		}
		if ch {
			changed = true
		}
	}

	// Strip finalized digits from every non-singleton domain.
	if taken != 0 {
		for _, i := range c.cells {
			di := b.Domain(i)
			if di.IsSingleton() {
				continue
			}
			ch, err := b.Narrow(i, di&^taken)
			if err != nil {
				return false, err
			}
			if ch {
				changed = true
			}
		}
	}

	return changed, nil
}

// AllDifferent returns a constraint requiring the nine cells to hold
// nine distinct digits.
func AllDifferent(cells [kropki.N]kropki.CellIndex) kropki.Constraint {
	return &AllDifferentConstraint{cells: cells}
}

type KropkiWhiteConstraint struct {
	a, b kropki.CellIndex
}

func (c *KropkiWhiteConstraint) String() string {
	return fmt.Sprintf("%s and %s differ by exactly 1", c.a, c.b)
}

func (c *KropkiWhiteConstraint) Scope() []kropki.CellIndex {
	return []kropki.CellIndex{c.a, c.b}
}

// Propagate narrows each side to the digits reachable from the other
// side's domain shifted up and down by one. Both reachable sets are
// computed before either narrow so the result is order-independent.
func (c *KropkiWhiteConstraint) Propagate(b kropki.Board) (bool, error) {
	da := b.Domain(c.a)
	db := b.Domain(c.b)

	reachFromB := (db<<1 | db>>1) & kropki.DigitsMask
	reachFromA := (da<<1 | da>>1) & kropki.DigitsMask

	changed := false
	ch, err := b.Narrow(c.a, reachFromB)
	if err != nil {
		return false, err
	}
	changed = changed || ch
	ch, err = b.Narrow(c.b, reachFromA)
	if err != nil {
		return false, err
	}
	return changed || ch, nil
}

// KropkiWhite returns a white-dot constraint: the two cells' final
// digits differ by exactly 1.
func KropkiWhite(a, b kropki.CellIndex) kropki.Constraint {
	return &KropkiWhiteConstraint{a: a, b: b}
}

type KropkiBlackConstraint struct {
	a, b kropki.CellIndex
}

func (c *KropkiBlackConstraint) String() string {
	return fmt.Sprintf("%s and %s are in ratio 2:1", c.a, c.b)
}

func (c *KropkiBlackConstraint) Scope() []kropki.CellIndex {
	return []kropki.CellIndex{c.a, c.b}
}

// Propagate narrows each side to the union of "double of the other
// side's digits" and "half of the other side's even digits", with the
// same simultaneous-computation discipline as the white dot.
func (c *KropkiBlackConstraint) Propagate(b kropki.Board) (bool, error) {
	reachFromB := ratioReach(b.Domain(c.b))
	reachFromA := ratioReach(b.Domain(c.a))

	changed := false
	ch, err := b.Narrow(c.a, reachFromB)
	if err != nil {
		return false, err
	}
	changed = changed || ch
	ch, err = b.Narrow(c.b, reachFromA)
	if err != nil {
		return false, err
	}
	return changed || ch, nil
}

// ratioReach returns the digits reachable from m under the 2:1 ratio:
// doubles of digits up to 4 and halves of the even digits.
func ratioReach(m kropki.Domain) kropki.Domain {
	var reach kropki.Domain
	for d := 1; d*2 <= kropki.N; d++ {
		if m.Has(d) {
			reach |= kropki.SingletonOf(d * 2)
		}
	}
	for h := uint16(m & kropki.EvenMask); h != 0; h &= h - 1 {
		reach |= kropki.SingletonOf(bits.TrailingZeros16(h) / 2)
	}
	return reach
}

// KropkiBlack returns a black-dot constraint: one cell's final digit
// is exactly double the other's.
func KropkiBlack(a, b kropki.CellIndex) kropki.Constraint {
	return &KropkiBlackConstraint{a: a, b: b}
}

type IncreasingChainConstraint struct {
	cells []kropki.CellIndex
}

func (c *IncreasingChainConstraint) String() string {
	s := make([]string, len(c.cells))
	for i, cell := range c.cells {
		s[i] = cell.String()
	}
	return fmt.Sprintf("%s are strictly increasing", strings.Join(s, ", "))
}

func (c *IncreasingChainConstraint) Scope() []kropki.CellIndex {
	return c.cells
}

// Propagate tightens a running lower bound along the chain and a
// running upper bound against it: each cell must exceed the smallest
// digit its predecessor can still take and stay below the largest
// digit its successor can still take.
func (c *IncreasingChainConstraint) Propagate(b kropki.Board) (bool, error) {
	changed := false

	low := 0
	for _, i := range c.cells {
		ch, err := b.Narrow(i, digitsAbove(low))
		if err != nil {
			return false, err
		}
		changed = changed || ch
		low = b.Domain(i).Min()
	}

	high := kropki.N + 1
	for k := len(c.cells) - 1; k >= 0; k-- {
		i := c.cells[k]
		ch, err := b.Narrow(i, digitsBelow(high))
		if err != nil {
			return false, err
		}
		changed = changed || ch
		high = b.Domain(i).Max()
	}

	return changed, nil
}

// digitsAbove returns the domain of digits strictly greater than d.
func digitsAbove(d int) kropki.Domain {
	return kropki.DigitsMask &^ (kropki.SingletonOf(d+1) - 1)
}

// digitsBelow returns the domain of digits strictly less than d.
func digitsBelow(d int) kropki.Domain {
	return kropki.DigitsMask & (kropki.SingletonOf(d) - 1)
}

// IncreasingChain returns a constraint requiring the cells' final
// digits to be strictly increasing in list order.
func IncreasingChain(cells ...kropki.CellIndex) kropki.Constraint {
	return &IncreasingChainConstraint{cells: cells}
}
