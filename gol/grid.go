package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifesim/util"
)

// Grid is a fixed-size toroidal board. Cells are stored row-major, one byte
// per cell, 0 for dead and 255 for alive so the backing slice doubles as PGM
// pixel data.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// MakeGrid returns an all-dead grid of the given dimensions.
func MakeGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gol: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// MakeGridFromData wraps an existing pixel array.
// Ownership of the array is transferred to the grid.
func MakeGridFromData(width, height int, cells []uint8) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gol: invalid grid dimensions %dx%d", width, height))
	}
	if len(cells) != width*height {
		panic(fmt.Sprintf("gol: pixel array length %d does not match %dx%d grid", len(cells), width, height))
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (grid *Grid) at(x, y int) uint8 {
	return grid.cells[y*grid.width+x]
}

func (grid *Grid) set(x, y int, value uint8) {
	grid.cells[y*grid.width+x] = value
}

// aliveCells collects the coordinates of every live cell in row-major order.
func (grid *Grid) aliveCells() []util.Cell {
	cells := make([]util.Cell, 0, 1024)
	for y := 0; y != grid.height; y++ {
		for x := 0; x != grid.width; x++ {
			if grid.cells[y*grid.width+x] != 0 {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (grid *Grid) countAlive() int {
	count := 0
	for _, cell := range grid.cells {
		if cell != 0 {
			count++
		}
	}
	return count
}

// gridState owns the two generation buffers. "cur" is read-only while a
// generation is in flight, "nxt" is written only by the worker owning each
// tile. swap exchanges the two references, never the data.
type gridState struct {
	cur        *Grid
	nxt        *Grid
	generation int
}

func makeGridState(cur, nxt *Grid) *gridState {
	if cur.width != nxt.width || cur.height != nxt.height {
		panic(fmt.Sprintf("gol: buffer dimension mismatch %dx%d vs %dx%d",
			cur.width, cur.height, nxt.width, nxt.height))
	}
	return &gridState{cur: cur, nxt: nxt}
}

// swap must only be called once every write of the in-flight generation has
// completed.
func (state *gridState) swap() {
	state.cur, state.nxt = state.nxt, state.cur
	state.generation++
}
