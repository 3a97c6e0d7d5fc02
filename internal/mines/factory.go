package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

func newBoard(mines []bool, rows, cols int) *Board {
	numMines := 0
	for _, m := range mines {
		if m {
			numMines++
		}
	}
	covered := make([]bool, rows*cols)
	for i := range covered {
		covered[i] = true
	}
	return &Board{
		rows: rows, cols: cols,
		mines:      mines,
		counts:     neighborCounts(mines, rows, cols),
		covered:    covered,
		numMines:   numMines,
		numCovered: rows * cols,
		state:      InProgress,
	}
}

// FromDimensions builds a rows x cols board with numMines mines drawn
// uniformly without replacement from all cells, using r as the source of
// randomness.
func FromDimensions(rows, cols, numMines int, r *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &InvalidConfigurationError{
			Rows: rows, Cols: cols, NumMines: numMines,
			Reason: "dimensions must be positive",
		}
	}
	if numMines < 0 || numMines > rows*cols {
		return nil, &InvalidConfigurationError{
			Rows: rows, Cols: cols, NumMines: numMines,
			Reason: "mine count must be between 0 and rows*cols",
		}
	}

	mines := make([]bool, rows*cols)

	/*
	 * Write down the list of possible mine locations, then pick
	 * numMines off it at random, swapping each pick out of the
	 * candidate range.
	 */
	candidates := make([]int, rows*cols)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range numMines {
		i := r.IntN(k)
		mines[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	Log.WithFields(logrus.Fields{
		"rows": rows, "cols": cols, "mines": numMines,
	}).Debug("generated board")

	return newBoard(mines, rows, cols), nil
}

// FromMineMask builds a board from an externally supplied mine layout,
// one row per inner slice. The mask is copied; the caller may reuse it.
// All rows must have the same length.
func FromMineMask(mask [][]bool) (*Board, error) {
	rows := len(mask)
	if rows == 0 || len(mask[0]) == 0 {
		return nil, &InvalidConfigurationError{
			Rows: rows, Reason: "mask must have at least one row and column",
		}
	}
	cols := len(mask[0])
	mines := make([]bool, rows*cols)
	for row, r := range mask {
		if len(r) != cols {
			return nil, &InvalidConfigurationError{
				Rows: rows, Cols: cols,
				Reason: "mask rows must all have the same length",
			}
		}
		for col, m := range r {
			mines[row*cols+col] = m
		}
	}
	return newBoard(mines, rows, cols), nil
}
