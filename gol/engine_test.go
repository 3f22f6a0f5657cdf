package gol

import (
	"testing"

	"uk.ac.bris.cs/lifesim/util"
)

// advance takes ownership of the board and runs the engine for the given
// number of generations, returning the final board.
func advance(initial *Grid, threads, turns int) *Grid {
	engine := makeEngine(initial, threads)
	for i := 0; i < turns; i++ {
		engine.Step()
	}
	engine.Stop()
	return engine.Current()
}

func gridFromPattern(width, height int, pattern []string, offsetX, offsetY int) *Grid {
	grid := MakeGrid(width, height)
	for y, row := range pattern {
		for x, char := range row {
			if char == '#' {
				grid.set(offsetX+x, offsetY+y, 255)
			}
		}
	}
	return grid
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, size := range []int{3, 8, 33} {
		result := advance(MakeGrid(size, size), 4, 10)
		if result.countAlive() != 0 {
			t.Errorf("%dx%d all-dead board produced live cells", size, size)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	grid := MakeGrid(8, 8)
	grid.set(4, 4, 255)
	result := advance(grid, 2, 1)
	if result.countAlive() != 0 {
		t.Error("a cell with no live neighbours survived")
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	// Centre cell has four live neighbours
	grid := gridFromPattern(8, 8, []string{
		"###",
		"##.",
	}, 2, 2)
	result := advance(grid, 2, 1)
	if result.at(3, 2) != 0 {
		t.Error("a cell with four live neighbours survived")
	}
}

// A 2x2 block is a still life: it must be unchanged after any number of
// generations.
func TestBlockIsStable(t *testing.T) {
	grid := gridFromPattern(6, 6, []string{
		"##",
		"##",
	}, 2, 2)
	want := grid.aliveCells()
	result := advance(grid, 4, 25)
	got := result.aliveCells()
	if len(got) != len(want) {
		t.Fatalf("block changed: %d live cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("block changed: cell %v, want %v", got[i], want[i])
		}
	}
}

// A glider translates by (+1, +1) modulo the board size every 4 generations.
func TestGliderTranslates(t *testing.T) {
	const width, height = 12, 12
	glider := []string{
		".#.",
		"..#",
		"###",
	}
	initial := gridFromPattern(width, height, glider, 4, 4)
	start := initial.aliveCells()

	result := advance(initial, 4, 4)
	want := make(map[util.Cell]bool, len(start))
	for _, cell := range start {
		want[util.Cell{X: (cell.X + 1) % width, Y: (cell.Y + 1) % height}] = true
	}
	got := result.aliveCells()
	if len(got) != len(want) {
		t.Fatalf("got %d live cells, want %d", len(got), len(want))
	}
	for _, cell := range got {
		if !want[cell] {
			t.Errorf("unexpected live cell %v", cell)
		}
	}
}

// The glider must also survive crossing the toroidal seam.
func TestGliderWrapsAroundBoard(t *testing.T) {
	const width, height = 10, 10
	glider := []string{
		".#.",
		"..#",
		"###",
	}
	initial := gridFromPattern(width, height, glider, 3, 3)
	start := initial.aliveCells()

	// 4*height generations bring the glider all the way around
	result := advance(initial, 4, 4*height)
	got := result.aliveCells()
	if len(got) != len(start) {
		t.Fatalf("got %d live cells, want %d", len(got), len(start))
	}
	for i := range start {
		if got[i] != start[i] {
			t.Fatalf("cell %v, want %v", got[i], start[i])
		}
	}
}

func TestAliveCountTracksBoard(t *testing.T) {
	engine := makeEngine(randomGrid(32, 32, 3), 4)
	defer engine.Stop()
	for i := 0; i < 8; i++ {
		engine.Step()
		if engine.Alive() != engine.Current().countAlive() {
			t.Fatalf("generation %d: Alive() = %d, board has %d",
				engine.Generation(), engine.Alive(), engine.Current().countAlive())
		}
	}
}

func TestGenerationCounter(t *testing.T) {
	engine := makeEngine(MakeGrid(8, 8), 2)
	defer engine.Stop()
	for i := 1; i <= 5; i++ {
		engine.Step()
		if engine.Generation() != i {
			t.Fatalf("Generation() = %d after %d steps", engine.Generation(), i)
		}
	}
}
