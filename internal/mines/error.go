package mines

import "fmt"

type InvalidConfigurationError struct {
	Rows, Cols, NumMines int
	Reason               string
}

// [InvalidConfigurationError] implements [error]
func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid board configuration %dx%d with %d mines: %s",
		e.Rows, e.Cols, e.NumMines, e.Reason,
	)
}
