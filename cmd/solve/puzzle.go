package solve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridworks/kropki/pkg/kropki"
	"github.com/gridworks/kropki/pkg/kropki/constraint"
)

// Puzzle holds the givens string and the adjacency constraints decoded
// from a puzzle file.
type Puzzle struct {
	Givens      string
	Constraints []kropki.Constraint
}

// NewPuzzle parses a puzzle file: lines of givens characters
// ('.' or '0' for blanks) that together must cover all 81 cells, plus
// optional constraint lines using one-based coordinates:
//
//	white <row> <col> <row> <col>
//	black <row> <col> <row> <col>
//	chain <row> <col> <row> <col> [<row> <col> ...]
//
// Blank lines and lines starting with '#' are ignored.
func NewPuzzle(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)

	var givens strings.Builder
	var constraints []kropki.Constraint
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "white", "black":
			coords, err := parseCoords(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			if len(coords) != 2 {
				return nil, fmt.Errorf("line %d: %s dot wants exactly two cells", lineNo, fields[0])
			}
			if fields[0] == "white" {
				constraints = append(constraints, constraint.WhiteDot(coords[0][0], coords[0][1], coords[1][0], coords[1][1]))
			} else {
				constraints = append(constraints, constraint.BlackDot(coords[0][0], coords[0][1], coords[1][0], coords[1][1]))
			}
		case "chain":
			coords, err := parseCoords(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			if len(coords) < 2 {
				return nil, fmt.Errorf("line %d: chain wants at least two cells", lineNo)
			}
			constraints = append(constraints, constraint.Chain(coords...))
		default:
			// a row of givens characters
			givens.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading puzzle data: %w", err)
	}

	return &Puzzle{
		Givens:      givens.String(),
		Constraints: constraints,
	}, nil
}

// parseCoords decodes one-based (row, col) pairs into zero-based pairs.
func parseCoords(fields []string, lineNo int) ([][2]int, error) {
	if len(fields) == 0 || len(fields)%2 != 0 {
		return nil, fmt.Errorf("line %d: coordinates come in (row, col) pairs", lineNo)
	}
	coords := make([][2]int, 0, len(fields)/2)
	for k := 0; k < len(fields); k += 2 {
		row, err := parseCoord(fields[k], lineNo)
		if err != nil {
			return nil, err
		}
		col, err := parseCoord(fields[k+1], lineNo)
		if err != nil {
			return nil, err
		}
		coords = append(coords, [2]int{row - 1, col - 1})
	}
	return coords, nil
}

func parseCoord(field string, lineNo int) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not a number", lineNo, field)
	}
	if v < 1 || v > kropki.N {
		return 0, fmt.Errorf("line %d: coordinate %d out of range 1..%d", lineNo, v, kropki.N)
	}
	return v, nil
}
