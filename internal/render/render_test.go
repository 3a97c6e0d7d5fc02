package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/minesweeper-sim/internal/mines"
	"github.com/kpetrov/minesweeper-sim/internal/render"
)

func TestTextCoveredBoard(t *testing.T) {
	b, err := mines.FromMineMask([][]bool{
		{false, true},
		{false, false},
	})
	require.NoError(t, err)

	assert.Equal(t, "\n| . . |\n| . . |\n", render.Text(b))
}

func TestTextRevealedBoard(t *testing.T) {
	b, err := mines.FromMineMask([][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, true},
	})
	require.NoError(t, err)

	require.Equal(t, mines.RevealSafe, b.Reveal(0, 0).Kind)

	assert.Equal(t, "\n|       |\n|   1 1 |\n|   1 . |\n", render.Text(b))
}

func TestTextExposedMine(t *testing.T) {
	b, err := mines.FromMineMask([][]bool{{true}})
	require.NoError(t, err)

	require.Equal(t, mines.RevealMine, b.Reveal(0, 0).Kind)

	assert.Equal(t, "\n| X |\n", render.Text(b))
}
