package imagemask_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/minesweeper-sim/internal/imagemask"
	"github.com/kpetrov/minesweeper-sim/internal/mines"
)

func testImage() *image.RGBA {
	// 3x2: black pixels at (0,0) and (2,1), a red-less blue pixel at
	// (1,0); everything else white
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.Set(x, y, color.White)
		}
	}
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	img.Set(2, 1, color.Black)
	return img
}

func TestFromImage(t *testing.T) {
	mask := imagemask.FromImage(testImage())

	// only the red channel decides, so the blue pixel is a mine too
	assert.Equal(t, [][]bool{
		{true, true, false},
		{false, false, true},
	}, mask)
}

func TestFromPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	mask, err := imagemask.FromPNG(&buf)
	require.NoError(t, err)

	b, err := mines.FromMineMask(mask)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, 3, b.Cols())
	assert.Equal(t, 3, b.NumMines())
}

func TestFromPNGGarbage(t *testing.T) {
	_, err := imagemask.FromPNG(bytes.NewBufferString("not a png"))
	assert.Error(t, err)
}
