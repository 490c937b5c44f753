package constraint

import (
	"github.com/gridworks/kropki/pkg/kropki"
)

// ClassicGroups returns the 27 all-different groups of a classic
// board: 9 rows, 9 columns, and 9 three-by-three boxes.
func ClassicGroups() []kropki.Constraint {
	groups := make([]kropki.Constraint, 0, 27)

	for r := 0; r < kropki.N; r++ {
		var cells [kropki.N]kropki.CellIndex
		for c := 0; c < kropki.N; c++ {
			cells[c] = kropki.Index(r, c)
		}
		groups = append(groups, AllDifferent(cells))
	}

	for c := 0; c < kropki.N; c++ {
		var cells [kropki.N]kropki.CellIndex
		for r := 0; r < kropki.N; r++ {
			cells[r] = kropki.Index(r, c)
		}
		groups = append(groups, AllDifferent(cells))
	}

	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var cells [kropki.N]kropki.CellIndex
			k := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					cells[k] = kropki.Index(br*3+dr, bc*3+dc)
					k++
				}
			}
			groups = append(groups, AllDifferent(cells))
		}
	}

	return groups
}

// WhiteDot returns a white-dot constraint between two cells given as
// zero-based (row, column) pairs.
func WhiteDot(r1, c1, r2, c2 int) kropki.Constraint {
	return KropkiWhite(kropki.Index(r1, c1), kropki.Index(r2, c2))
}

// BlackDot returns a black-dot constraint between two cells given as
// zero-based (row, column) pairs.
func BlackDot(r1, c1, r2, c2 int) kropki.Constraint {
	return KropkiBlack(kropki.Index(r1, c1), kropki.Index(r2, c2))
}

// Chain returns a strictly increasing chain over cells given as
// zero-based (row, column) pairs, in order.
func Chain(rc ...[2]int) kropki.Constraint {
	cells := make([]kropki.CellIndex, len(rc))
	for i, p := range rc {
		cells[i] = kropki.Index(p[0], p[1])
	}
	return IncreasingChain(cells...)
}
