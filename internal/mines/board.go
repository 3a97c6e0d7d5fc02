package mines

import (
	"slices"
	"strconv"
)

type GameState int8

const (
	InProgress GameState = iota
	Win
	Loss
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "!"
	}
}

// Terminal reports whether the game can no longer change state.
func (s GameState) Terminal() bool {
	return s == Win || s == Loss
}

type Square int8

const (
	Covered     Square = -1
	Mine        Square = -2
	OutOfBounds Square = -3
	// 0-8 for an open square with that many mined neighbors
)

func (s Square) String() string {
	switch {
	case s == Covered:
		return "."
	case s == Mine:
		return "X"
	case s == OutOfBounds:
		return "#"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Board is a single minesweeper game. Cells are stored in flat row-major
// slices indexed row*cols+col. The mine and count grids are fixed at
// construction; only the covered grid, the covered counter and the game
// state change afterwards, and only through [Board.Reveal].
//
// A Board is not safe for concurrent mutation. Callers that explore
// hypothetical moves in parallel must work on [Board.Clone] copies.
type Board struct {
	rows, cols int
	mines      []bool
	counts     []int8
	covered    []bool
	numMines   int
	numCovered int
	state      GameState
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

// NumMines returns the number of mines laid at construction.
func (b *Board) NumMines() int { return b.numMines }

// NumCovered returns the number of cells still covered.
func (b *Board) NumCovered() int { return b.numCovered }

func (b *Board) State() GameState { return b.state }

// Square reports a single cell the way a player sees it: OutOfBounds for
// coordinates off the grid, Covered for an unrevealed cell, Mine for a
// revealed mine and otherwise the cell's neighbor-mine hint (0-8).
func (b *Board) Square(row, col int) Square {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return OutOfBounds
	}
	i := row*b.cols + col
	if b.covered[i] {
		return Covered
	}
	if b.mines[i] {
		return Mine
	}
	return Square(b.counts[i])
}

// Clone returns an independent deep copy of the board. Mutating the copy
// leaves the receiver untouched, so solvers can branch on hypothetical
// moves.
func (b *Board) Clone() *Board {
	dup := *b
	dup.mines = slices.Clone(b.mines)
	dup.counts = slices.Clone(b.counts)
	dup.covered = slices.Clone(b.covered)
	return &dup
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}
