package gol

import "testing"

func TestNextCell(t *testing.T) {
	for neighbours := 0; neighbours <= 8; neighbours++ {
		wantAlive := neighbours == 2 || neighbours == 3
		if got := nextCell(255, neighbours) != 0; got != wantAlive {
			t.Errorf("alive cell with %d neighbours: got alive=%v, want %v", neighbours, got, wantAlive)
		}
		wantBorn := neighbours == 3
		if got := nextCell(0, neighbours) != 0; got != wantBorn {
			t.Errorf("dead cell with %d neighbours: got alive=%v, want %v", neighbours, got, wantBorn)
		}
	}
}

func TestLiveNeighboursInterior(t *testing.T) {
	grid := MakeGrid(8, 8)
	grid.set(3, 3, 255)
	grid.set(4, 3, 255)
	grid.set(5, 5, 255)
	if got := grid.liveNeighbours(4, 4); got != 3 {
		t.Errorf("liveNeighbours(4, 4) = %d, want 3", got)
	}
	if got := grid.liveNeighbours(1, 1); got != 0 {
		t.Errorf("liveNeighbours(1, 1) = %d, want 0", got)
	}
}

// The four wrap-corners of (0, 0) live on the opposite edges of the board.
func TestLiveNeighboursWrapsCorners(t *testing.T) {
	const width, height = 5, 4
	grid := MakeGrid(width, height)
	grid.set(width-1, height-1, 255)
	grid.set(0, height-1, 255)
	grid.set(width-1, 0, 255)
	if got := grid.liveNeighbours(0, 0); got != 3 {
		t.Errorf("liveNeighbours(0, 0) = %d, want 3", got)
	}
}

func TestLiveNeighboursWrapsEdges(t *testing.T) {
	const width, height = 6, 5
	grid := MakeGrid(width, height)
	grid.set(width-1, 2, 255)
	if got := grid.liveNeighbours(0, 2); got != 1 {
		t.Errorf("left edge: liveNeighbours(0, 2) = %d, want 1", got)
	}
	grid = MakeGrid(width, height)
	grid.set(3, height-1, 255)
	if got := grid.liveNeighbours(3, 0); got != 1 {
		t.Errorf("top edge: liveNeighbours(3, 0) = %d, want 1", got)
	}
}
