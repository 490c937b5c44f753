package solver

import (
	"fmt"
	"unicode"

	"github.com/gridworks/kropki/pkg/kropki"
)

// decodeGivens parses a puzzle string whose non-whitespace characters
// number exactly 81, read row-major. '.' and '0' mark blank cells,
// '1'-'9' are given digits; anything else is a decode error naming the
// offending position and character.
func decodeGivens(text string) ([]int, error) {
	digits := make([]int, 0, kropki.NN)
	pos := 0
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			continue
		}
		switch {
		case ch == '.' || ch == '0':
			digits = append(digits, 0)
		case ch >= '1' && ch <= '9':
			digits = append(digits, int(ch-'0'))
		default:
			return nil, kropki.DecodeError{Position: pos, Char: ch}
		}
		pos++
	}
	if len(digits) != kropki.NN {
		return nil, kropki.LengthError{Got: len(digits)}
	}
	return digits, nil
}

// LoadGivens decodes the puzzle string, assigns every given digit,
// enqueues its watchers, and runs one propagation pass to a fixpoint.
// A contradiction at this stage means the givens are inherently
// inconsistent.
func (s *Solver) LoadGivens(text string) error {
	digits, err := decodeGivens(text)
	if err != nil {
		return err
	}
	for i, d := range digits {
		if d == 0 {
			continue
		}
		cell := kropki.CellIndex(i)
		if _, err := s.state.Assign(cell, kropki.SingletonOf(d)); err != nil {
			return fmt.Errorf("givens are inconsistent at %s: %w", cell, err)
		}
		s.EnqueueWatchers(cell)
	}
	if _, err := s.Propagate(); err != nil {
		return fmt.Errorf("givens are inconsistent: %w", err)
	}
	return nil
}
