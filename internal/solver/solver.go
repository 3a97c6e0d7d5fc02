// Package solver plays a board the way a careful human would: it opens
// neighbors of satisfied hints, marks cells that must be mines, and only
// guesses when deduction runs dry. It sees the board exclusively through
// the query API plus its own bookkeeping, never the hidden mine grid.
package solver

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/kpetrov/minesweeper-sim/internal/mines"
)

var Log = logrus.New()

type Move struct {
	Row, Col int
	Guess    bool
}

type Stats struct {
	Moves, Guesses int
}

type Solver struct {
	board *mines.Board
	r     *rand.Rand
	mine  []bool // cells deduced to hold a mine
}

func New(b *mines.Board, r *rand.Rand) *Solver {
	return &Solver{
		board: b,
		r:     r,
		mine:  make([]bool, b.Rows()*b.Cols()),
	}
}

// NextMove picks the next cell to reveal. It reports false when no covered
// cell is left to open, which only happens once every covered cell has
// been deduced to be a mine.
func (s *Solver) NextMove() (Move, bool) {
	for s.deduceMines() {
	}

	if move, ok := s.findSafeMove(); ok {
		return move, true
	}

	return s.findGuessMove()
}

// Play reveals cells until the game ends and returns the final state.
func (s *Solver) Play() (mines.GameState, Stats) {
	var stats Stats
	for s.board.State() == mines.InProgress {
		move, ok := s.NextMove()
		if !ok {
			break
		}
		res := s.board.Reveal(move.Row, move.Col)
		stats.Moves++
		if move.Guess {
			stats.Guesses++
		}
		Log.WithFields(logrus.Fields{
			"row": move.Row, "col": move.Col,
			"guess": move.Guess, "result": res.Kind,
		}).Debug("solver move")
	}
	return s.board.State(), stats
}

// deduceMines marks every covered neighbor of a hint as a mine wherever
// the hint equals its covered-neighbor count, and reports whether any new
// mine was marked. Callers loop it to a fixpoint; each marked mine can
// satisfy further hints.
func (s *Solver) deduceMines() bool {
	marked := false
	for row := range s.board.Rows() {
		for col := range s.board.Cols() {
			hint := s.board.Square(row, col)
			if hint <= 0 {
				continue
			}
			flagged, unknown := s.neighborInfo(row, col)
			if int(hint) == flagged+len(unknown) && len(unknown) > 0 {
				for _, i := range unknown {
					s.mine[i] = true
				}
				marked = true
			}
		}
	}
	return marked
}

// findSafeMove looks for a hint whose mines are all accounted for; any
// other covered neighbor of such a hint is certainly safe.
func (s *Solver) findSafeMove() (Move, bool) {
	for row := range s.board.Rows() {
		for col := range s.board.Cols() {
			hint := s.board.Square(row, col)
			if hint <= 0 {
				continue
			}
			flagged, unknown := s.neighborInfo(row, col)
			if int(hint) == flagged && len(unknown) > 0 {
				i := unknown[0]
				return Move{Row: i / s.board.Cols(), Col: i % s.board.Cols()}, true
			}
		}
	}
	return Move{}, false
}

// findGuessMove picks uniformly among the covered cells not deduced to be
// mines.
func (s *Solver) findGuessMove() (Move, bool) {
	var candidates []int
	for row := range s.board.Rows() {
		for col := range s.board.Cols() {
			i := row*s.board.Cols() + col
			if s.board.Square(row, col) == mines.Covered && !s.mine[i] {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		return Move{}, false
	}
	i := candidates[s.r.IntN(len(candidates))]
	return Move{Row: i / s.board.Cols(), Col: i % s.board.Cols(), Guess: true}, true
}

// neighborInfo counts deduced mines among the covered neighbors of a cell
// and collects the remaining covered, undeduced neighbor indices.
func (s *Solver) neighborInfo(row, col int) (flagged int, unknown []int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if s.board.Square(rr, cc) != mines.Covered {
				continue
			}
			i := rr*s.board.Cols() + cc
			if s.mine[i] {
				flagged++
			} else {
				unknown = append(unknown, i)
			}
		}
	}
	return
}
