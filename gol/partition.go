package gol

import (
	"math"

	"uk.ac.bris.cs/lifesim/util"
)

// tile is a rectangular block of cells owned by one worker for a generation.
// end is not inclusive.
type tile struct {
	start util.Cell
	end   util.Cell
}

// divideToTiles partitions the board into disjoint rectangular tiles, one per
// worker, together covering every cell exactly once. The requested worker
// count is floored to the nearest composite number (primes partition into
// thin strips), which is then factor-decomposed to arrange the tiles in a
// near-square layout.
func divideToTiles(width, height, threads int) []tile {
	if threads <= 1 {
		return []tile{{
			start: util.Cell{X: 0, Y: 0},
			end:   util.Cell{X: width, Y: height},
		}}
	}
	// Floor to nearest composite number
	ntile := 2
	if threads < 4 {
		ntile = threads
	} else {
		for number := 4; number <= threads; number++ {
			if !isPrime(number) {
				ntile = number
			}
		}
	}
	// Factor decomposition
	factors := make([]int, 0)
	for number := ntile; number != 1; {
		for factor := 2; ; factor++ {
			if number%factor == 0 {
				number /= factor
				factors = append(factors, factor)
				break
			}
		}
	}
	// Split the factors into a near-square vertical x horizontal arrangement
	i := 0
	desired := math.Sqrt(float64(ntile))
	vertical := 1
	horizontal := 1
	for ; i != len(factors); i++ {
		if float64(vertical) >= desired {
			break
		}
		vertical *= factors[len(factors)-i-1]
	}
	for ; i != len(factors); i++ {
		horizontal *= factors[len(factors)-i-1]
	}
	// Tile boundaries by rounding, so uneven dimensions stay covered
	tiles := make([]tile, horizontal*vertical)
	tileWidth := float64(width) / float64(horizontal)
	tileHeight := float64(height) / float64(vertical)
	for y := 0; y != vertical; y++ {
		for x := 0; x != horizontal; x++ {
			tiles[y*horizontal+x] = tile{
				start: util.Cell{
					X: int(math.Round(float64(x) * tileWidth)),
					Y: int(math.Round(float64(y) * tileHeight))},
				end: util.Cell{
					X: int(math.Round(float64(x+1) * tileWidth)),
					Y: int(math.Round(float64(y+1) * tileHeight))},
			}
		}
	}
	return tiles
}

func isPrime(number int) bool {
	for factor := 2; factor != number; factor++ {
		if number%factor == 0 {
			return false
		}
	}
	return true
}
