package solver_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/minesweeper-sim/internal/mines"
	"github.com/kpetrov/minesweeper-sim/internal/solver"
)

func TestPlayEmptyBoard(t *testing.T) {
	b, err := mines.FromDimensions(5, 5, 0, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	state, stats := solver.New(b, rand.New(rand.NewPCG(1, 2))).Play()
	assert.Equal(t, mines.Win, state)
	assert.Equal(t, 1, stats.Moves)
	assert.Equal(t, 1, stats.Guesses)
}

func TestSafeMoveAfterSatisfiedHint(t *testing.T) {
	// Opening (2,0) floods the bottom rows, and the corner hint at
	// (0,0) then pins the mine onto (0,1). That satisfies the border
	// hints, so (0,2) is provably safe and the solver must win without
	// a single guess.
	b, err := mines.FromMineMask([][]bool{
		{false, true, false},
		{false, false, false},
		{false, false, false},
	})
	require.NoError(t, err)
	require.Equal(t, mines.RevealSafe, b.Reveal(2, 0).Kind)
	require.Equal(t, mines.RevealSafe, b.Reveal(0, 0).Kind)

	s := solver.New(b, rand.New(rand.NewPCG(1, 2)))
	state, stats := s.Play()
	assert.Equal(t, mines.Win, state)
	assert.Equal(t, 1, stats.Moves)
	assert.Equal(t, 0, stats.Guesses)
}

func TestPlayStopsWhenOnlyMinesRemain(t *testing.T) {
	// 1x3 with a mined center: after the two safe cells the board is
	// won; no move may target the deduced mine.
	b, err := mines.FromMineMask([][]bool{
		{false, true, false},
	})
	require.NoError(t, err)

	state, _ := solver.New(b, rand.New(rand.NewPCG(7, 7))).Play()
	if state == mines.Loss {
		// a first-move guess may always hit the mine; anything else
		// must end in a win
		return
	}
	assert.Equal(t, mines.Win, state)
}

func TestPlayManyRandomBoards(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	wins := 0
	for range 40 {
		b, err := mines.FromDimensions(6, 6, 4, r)
		require.NoError(t, err)
		state, stats := solver.New(b, r).Play()
		assert.True(t, state.Terminal())
		assert.Greater(t, stats.Moves, 0)
		if state == mines.Win {
			wins++
		}
	}
	// sparse 6x6 boards are mostly solvable; the exact count depends on
	// the seed but it should never be hopeless
	assert.Greater(t, wins, 5)
}
