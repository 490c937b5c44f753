package solve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const puzzleRows = `2...7.1.3
.7..8..5.
3....6...
..6......
91..5..28
......5..
...3....4
.2..9..7.
5.4.1...6
`

func TestNewPuzzleParsesGivensRows(t *testing.T) {
	puzzle, err := NewPuzzle(strings.NewReader(puzzleRows))
	require.NoError(t, err)
	assert.Len(t, puzzle.Givens, 81)
	assert.Empty(t, puzzle.Constraints)
}

func TestNewPuzzleParsesDotsAndChains(t *testing.T) {
	input := `# a commented puzzle
` + puzzleRows + `
white 1 2 1 3
black 4 5 5 5
chain 7 1 8 1 9 1
`
	puzzle, err := NewPuzzle(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, puzzle.Givens, 81)
	require.Len(t, puzzle.Constraints, 3)
	assert.Equal(t, "r1c2 and r1c3 differ by exactly 1", puzzle.Constraints[0].String())
	assert.Equal(t, "r4c5 and r5c5 are in ratio 2:1", puzzle.Constraints[1].String())
	assert.Equal(t, "r7c1, r8c1, r9c1 are strictly increasing", puzzle.Constraints[2].String())
}

func TestNewPuzzleRejectsBadLines(t *testing.T) {
	type tc struct {
		Name  string
		Input string
	}

	for _, tt := range []tc{
		{
			Name:  "dot with too many cells",
			Input: "white 1 1 1 2 1 3\n",
		},
		{
			Name:  "dot with odd coordinate count",
			Input: "black 1 1 2\n",
		},
		{
			Name:  "coordinate out of range",
			Input: "white 1 1 1 10\n",
		},
		{
			Name:  "coordinate not a number",
			Input: "white 1 1 1 x\n",
		},
		{
			Name:  "chain with a single cell",
			Input: "chain 1 1\n",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := NewPuzzle(strings.NewReader(tt.Input))
			assert.Error(t, err)
		})
	}
}
