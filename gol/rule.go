package gol

// liveNeighbours counts the live cells among the eight neighbours of (x, y),
// wrapping each axis modulo its extent. Interior cells skip the modulo
// arithmetic.
func (grid *Grid) liveNeighbours(x, y int) int {
	count := 0
	if x == 0 || y == 0 || x == grid.width-1 || y == grid.height-1 {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				wx := (x + dx + grid.width) % grid.width
				wy := (y + dy + grid.height) % grid.height
				if grid.cells[wy*grid.width+wx] != 0 {
					count++
				}
			}
		}
		return count
	}
	index := y*grid.width + x
	for _, offset := range [8]int{
		-grid.width - 1, -grid.width, -grid.width + 1,
		-1, 1,
		grid.width - 1, grid.width, grid.width + 1,
	} {
		if grid.cells[index+offset] != 0 {
			count++
		}
	}
	return count
}

// nextCell applies the birth/survival rule: a cell is alive in the next
// generation iff it has exactly 3 live neighbours, or it is alive now and has
// exactly 2.
func nextCell(current uint8, neighbours int) uint8 {
	if neighbours == 3 || (neighbours == 2 && current != 0) {
		return 255
	}
	return 0
}
