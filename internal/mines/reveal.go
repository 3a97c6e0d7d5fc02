package mines

type RevealKind int8

const (
	RevealSafe RevealKind = iota
	RevealMine
	RevealOutOfBounds
	RevealRepeat
)

func (k RevealKind) String() string {
	switch k {
	case RevealSafe:
		return "safe"
	case RevealMine:
		return "mine"
	case RevealOutOfBounds:
		return "out_of_bounds"
	case RevealRepeat:
		return "repeat"
	default:
		return "!"
	}
}

// Blocked reports whether the reveal was a no-op. Out-of-range and
// already-revealed targets are kept apart for diagnostics but behave
// identically: neither mutates the board.
func (k RevealKind) Blocked() bool {
	return k == RevealOutOfBounds || k == RevealRepeat
}

type RevealResult struct {
	Kind RevealKind
	Hint int8 // neighbor-mine count, set only for RevealSafe
}

// Reveal uncovers the cell at row, col.
//
// A blocked target (off the grid or already uncovered) leaves the board
// untouched. Uncovering a mine loses the game and never cascades.
// Uncovering a safe cell with a zero hint floods its whole connected
// zero-hint region plus the bordering hinted ring. The game is won once
// only mines remain covered; a terminal state is never overwritten, even
// though further reveals keep uncovering cells.
func (b *Board) Reveal(row, col int) RevealResult {
	if !b.inBounds(row, col) {
		return RevealResult{Kind: RevealOutOfBounds}
	}
	i := row*b.cols + col
	if !b.covered[i] {
		return RevealResult{Kind: RevealRepeat}
	}

	b.covered[i] = false
	b.numCovered--

	if b.mines[i] {
		/* a mine beats the covered-count check, no matter the order */
		if !b.state.Terminal() {
			b.state = Loss
		}
		return RevealResult{Kind: RevealMine}
	}

	b.settle()

	if b.counts[i] == 0 {
		b.cascade(i)
	}

	return RevealResult{Kind: RevealSafe, Hint: b.counts[i]}
}

// cascade floods outward from an uncovered zero-hint cell, uncovering
// every covered neighbor and expanding through those that are themselves
// zero-hint. A zero-hint cell has no mine anywhere in its 3x3 window, so
// the flood can never reach a mine. The work list replaces the recursion
// of a naive implementation and is bounded by the cell count.
func (b *Board) cascade(start int) {
	todo := []int{start}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		row, col := i/b.cols, i%b.cols
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				rr, cc := row+dr, col+dc
				if !b.inBounds(rr, cc) {
					continue
				}
				j := rr*b.cols + cc
				if !b.covered[j] {
					continue
				}
				b.covered[j] = false
				b.numCovered--
				b.settle()
				if b.counts[j] == 0 {
					todo = append(todo, j)
				}
			}
		}
	}
}

// settle promotes an in-progress game to Win once exactly as many cells
// are covered as there are mines.
func (b *Board) settle() {
	if !b.state.Terminal() && b.numCovered == b.numMines {
		b.state = Win
	}
}
