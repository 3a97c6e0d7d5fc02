package mines

// neighborCounts sums, for every cell, the mine grid over the 3x3 window
// centered on that cell, clipped at the edges. The window includes the
// center cell: a mined cell counts its own mine on top of its neighbors.
// Hints only ever surface for non-mine cells, where the self term is zero,
// so the inflated value on mine cells stays unobservable through
// [Board.Square].
func neighborCounts(mines []bool, rows, cols int) []int8 {
	counts := make([]int8, rows*cols)
	for row := range rows {
		for col := range cols {
			var n int8
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					rr, cc := row+dr, col+dc
					if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
						continue
					}
					if mines[rr*cols+cc] {
						n++
					}
				}
			}
			counts[row*cols+col] = n
		}
	}
	return counts
}
