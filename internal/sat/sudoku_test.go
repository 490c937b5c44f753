package sat

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridworks/kropki/internal/solver"
	"github.com/gridworks/kropki/pkg/kropki"
	"github.com/gridworks/kropki/pkg/kropki/constraint"
)

func TestGenerateProducesValidBoard(t *testing.T) {
	board, err := Generate(rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	for _, group := range constraint.ClassicGroups() {
		var seen kropki.Domain
		for _, cell := range group.Scope() {
			d := board[cell]
			require.GreaterOrEqual(t, d, 1)
			require.LessOrEqual(t, d, kropki.N)
			assert.False(t, seen.Has(d), "duplicate %d in %s", d, group)
			seen |= kropki.SingletonOf(d)
		}
	}
	assert.NoError(t, Verify(board))
}

func TestGenerateVariesWithSeed(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyRejectsCorruptedBoard(t *testing.T) {
	board, err := Generate(rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	board[1] = board[0] // duplicate within the first row
	assert.Error(t, Verify(board))
}

func TestVerifyRejectsOutOfRangeDigit(t *testing.T) {
	board, err := Generate(rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	board[40] = 0
	assert.Error(t, Verify(board))
}

// The propagation engine and the SAT backend must agree on what a
// solved classic board looks like.
func TestEngineAcceptsGeneratedBoard(t *testing.T) {
	board, err := Generate(rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	var givens strings.Builder
	for _, d := range board {
		givens.WriteByte(byte('0' + d))
	}

	s, err := solver.New(solver.WithConstraints(constraint.ClassicGroups()...))
	require.NoError(t, err)
	require.NoError(t, s.LoadGivens(givens.String()))
	assert.True(t, s.Solved())
}

// And the other way around: a board solved by propagation and search
// must satisfy the SAT encoding.
func TestSATAcceptsEngineSolution(t *testing.T) {
	s, err := solver.New(solver.WithConstraints(constraint.ClassicGroups()...))
	require.NoError(t, err)

	found, err := s.Search(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	var board [kropki.NN]int
	for i, m := range s.Domains() {
		d, ok := m.Digit()
		require.True(t, ok)
		board[i] = d
	}
	assert.NoError(t, Verify(board))
}
