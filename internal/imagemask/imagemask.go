// Package imagemask derives mine masks from images: a pixel is a mine
// exactly when its red channel is zero, so black pixels on a white
// background draw the minefield. The mask matches the image pixel for
// pixel and feeds straight into the board factory.
package imagemask

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// FromImage converts a decoded image into a mine mask, one row per pixel
// row.
func FromImage(img image.Image) [][]bool {
	bounds := img.Bounds()
	mask := make([][]bool, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]bool, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			row[x-bounds.Min.X] = r == 0
		}
		mask[y-bounds.Min.Y] = row
	}
	return mask
}

// FromPNG decodes a PNG stream and converts it with [FromImage].
func FromPNG(r io.Reader) ([][]bool, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("unable to decode png: %w", err)
	}
	return FromImage(img), nil
}

// FromPNGFile reads and converts a PNG file.
func FromPNGFile(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()
	return FromPNG(f)
}
