package util

import "fmt"

// Cell is a coordinate on the board.
type Cell struct {
	X, Y int
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d, %d)", cell.X, cell.Y)
}

// Check panics on any non-nil error.
func Check(e error) {
	if e != nil {
		panic(e)
	}
}
