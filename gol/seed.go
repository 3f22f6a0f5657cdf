package gol

import "math/rand"

// randomGrid fills a fresh board from a seeded source, roughly half alive.
// The same seed always produces the same board.
func randomGrid(width, height int, seed int64) *Grid {
	rng := rand.New(rand.NewSource(seed))
	grid := MakeGrid(width, height)
	for i := range grid.cells {
		if rng.Intn(2) == 1 {
			grid.cells[i] = 255
		}
	}
	return grid
}
