// Package sat holds a CNF encoding of the classic board rules on top
// of the gini solver. It backs the board generator and gives tests an
// independent decision procedure to cross-check the propagation engine
// against.
package sat

import (
	"fmt"
	"math/rand"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/gridworks/kropki/pkg/kropki"
)

const satisfiable = 1

// lit returns the literal for "digit d appears at (row, col)", with d
// in 1..9: one SAT variable per (row, col, digit) triple.
func lit(row, col, d int) z.Lit {
	n := d - 1 + col*kropki.N + row*kropki.NN
	return z.Var(n + 1).Pos()
}

// newClassic returns a gini solver loaded with the classic rules:
// every cell holds at least one digit, and no digit repeats within a
// row, column, or box.
func newClassic() *gini.Gini {
	g := gini.New()

	// every position on the board has a number
	for row := 0; row < kropki.N; row++ {
		for col := 0; col < kropki.N; col++ {
			for d := 1; d <= kropki.N; d++ {
				g.Add(lit(row, col, d))
			}
			g.Add(z.LitNull)
		}
	}

	// every row has unique numbers
	for d := 1; d <= kropki.N; d++ {
		for row := 0; row < kropki.N; row++ {
			for colA := 0; colA < kropki.N; colA++ {
				for colB := colA + 1; colB < kropki.N; colB++ {
					g.Add(lit(row, colA, d).Not())
					g.Add(lit(row, colB, d).Not())
					g.Add(z.LitNull)
				}
			}
		}
	}

	// every column has unique numbers
	for d := 1; d <= kropki.N; d++ {
		for col := 0; col < kropki.N; col++ {
			for rowA := 0; rowA < kropki.N; rowA++ {
				for rowB := rowA + 1; rowB < kropki.N; rowB++ {
					g.Add(lit(rowA, col, d).Not())
					g.Add(lit(rowB, col, d).Not())
					g.Add(z.LitNull)
				}
			}
		}
	}

	// every box has unique numbers
	offs := []struct{ r, c int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for br := 0; br < kropki.N; br += 3 {
		for bc := 0; bc < kropki.N; bc += 3 {
			for d := 1; d <= kropki.N; d++ {
				for i, offA := range offs {
					for j := i + 1; j < len(offs); j++ {
						offB := offs[j]
						g.Add(lit(br+offA.r, bc+offA.c, d).Not())
						g.Add(lit(br+offB.r, bc+offB.c, d).Not())
						g.Add(z.LitNull)
					}
				}
			}
		}
	}

	return g
}

// readBoard extracts the solved board from a satisfied solver.
func readBoard(g *gini.Gini) [kropki.NN]int {
	var board [kropki.NN]int
	for row := 0; row < kropki.N; row++ {
		for col := 0; col < kropki.N; col++ {
			for d := 1; d <= kropki.N; d++ {
				if g.Value(lit(row, col, d)) {
					board[kropki.Index(row, col)] = d
					break
				}
			}
		}
	}
	return board
}

// Generate produces a random solved classic board by assuming a random
// permutation of the digits across the first row; any permutation
// extends to a full board, so the solve cannot fail.
func Generate(rng *rand.Rand) ([kropki.NN]int, error) {
	g := newClassic()

	assumptions := make([]z.Lit, 0, kropki.N)
	for col, d := range rng.Perm(kropki.N) {
		assumptions = append(assumptions, lit(0, col, d+1))
	}
	g.Assume(assumptions...)

	if g.Solve() != satisfiable {
		return [kropki.NN]int{}, fmt.Errorf("classic rules unexpectedly unsatisfiable")
	}
	return readBoard(g), nil
}

// Verify checks a fully assigned board against the classic rules by
// assuming all 81 placements and asking the solver for a model.
func Verify(board [kropki.NN]int) error {
	g := newClassic()
	assumptions := make([]z.Lit, 0, kropki.NN)
	for cell, d := range board {
		if d < 1 || d > kropki.N {
			return fmt.Errorf("cell %s holds %d, want 1..9", kropki.CellIndex(cell), d)
		}
		i := kropki.CellIndex(cell)
		assumptions = append(assumptions, lit(i.Row(), i.Col(), d))
	}
	g.Assume(assumptions...)
	if g.Solve() != satisfiable {
		return fmt.Errorf("board violates the classic rules")
	}
	return nil
}
