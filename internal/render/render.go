// Package render formats a board as ascii for terminals and test output.
package render

import (
	"fmt"
	"strings"

	"github.com/kpetrov/minesweeper-sim/internal/mines"
)

// Query is the read-only slice of the board API the renderer needs.
type Query interface {
	Rows() int
	Cols() int
	Square(row, col int) mines.Square
}

// Text renders the player's view of the board, one bordered line per row,
// two characters per cell: " ." covered, " X" mine, digits for nonzero
// hints, blank for a zero hint.
func Text(q Query) string {
	var b strings.Builder
	fmt.Fprint(&b, "\n")
	for row := range q.Rows() {
		fmt.Fprint(&b, "|")
		for col := range q.Cols() {
			switch sq := q.Square(row, col); {
			case sq == mines.Covered:
				fmt.Fprint(&b, " .")
			case sq == mines.Mine:
				fmt.Fprint(&b, " X")
			case sq == 0:
				fmt.Fprint(&b, "  ")
			default:
				fmt.Fprintf(&b, " %d", sq)
			}
		}
		fmt.Fprint(&b, " |\n")
	}
	return b.String()
}
