package gol

import (
	"sync"

	"uk.ac.bris.cs/lifesim/util"
)

// phase tracks where the engine is inside a generation. Steady state is
// phaseIdle; the other phases only exist while Step is executing.
type phase uint8

const (
	phaseIdle phase = iota
	phaseDispatching
	phaseWaiting
	phaseSwapping
)

// turnResult is sent by each worker after finishing its tile for a turn.
type turnResult struct {
	countDiff int         // Difference in alive cell count within the tile
	flipped   []util.Cell // Cells that changed state within the tile
}

// engine advances the board one generation at a time. A fixed pool of
// workers, one per tile, persists across generations: between turns every
// worker is parked on a shared condition variable, Step broadcasts to start a
// turn and collects one result per tile as the barrier. Workers share no
// mutable state because each owns a disjoint write range of the next buffer
// and only reads the frozen current buffer.
type engine struct {
	grids   *gridState
	tiles   []tile
	cond    *sync.Cond
	running bool // Protected by cond.L; false instructs workers to exit
	results chan turnResult
	alive   int // Live cell count, maintained from per-tile diffs
	phase   phase
}

// makeEngine takes ownership of the initial board and starts one worker per
// tile. It returns once every worker is parked and ready for the first turn.
func makeEngine(initial *Grid, threads int) *engine {
	e := &engine{
		grids:   makeGridState(initial, MakeGrid(initial.width, initial.height)),
		tiles:   divideToTiles(initial.width, initial.height, threads),
		cond:    sync.NewCond(new(sync.Mutex)),
		running: true,
		results: make(chan turnResult),
		alive:   initial.countAlive(),
	}
	for _, t := range e.tiles {
		go e.worker(t)
		<-e.results // Make sure the goroutine is parked
	}
	return e
}

// Step computes one generation and returns the cells that flipped. It must
// not be called again before it returns.
func (e *engine) Step() []util.Cell {
	if e.phase != phaseIdle {
		panic("gol: generation already in flight")
	}
	// Broadcast as critical section so no worker can miss the wake-up: each
	// worker holds the lock from sending its result until it is parked again.
	e.phase = phaseDispatching
	e.cond.L.Lock()
	e.cond.Broadcast()
	e.cond.L.Unlock()
	// Barrier: one result per tile
	e.phase = phaseWaiting
	flipped := make([]util.Cell, 0, 1024)
	for range e.tiles {
		result := <-e.results
		e.alive += result.countDiff
		flipped = append(flipped, result.flipped...)
	}
	// All writes for this generation are complete
	e.phase = phaseSwapping
	e.grids.swap()
	e.phase = phaseIdle
	return flipped
}

// Stop releases the worker pool. The engine must be idle.
func (e *engine) Stop() {
	if e.phase != phaseIdle {
		panic("gol: stopping with a generation in flight")
	}
	e.cond.L.Lock()
	e.running = false
	e.cond.Broadcast()
	e.cond.L.Unlock()
}

// Current returns the board produced by the last completed generation.
// Callers must not retain it across a Step.
func (e *engine) Current() *Grid {
	return e.grids.cur
}

func (e *engine) Generation() int {
	return e.grids.generation
}

func (e *engine) Alive() int {
	return e.alive
}

// worker evaluates one tile per turn until the engine stops. It reads the
// current buffer and writes only its own tile of the next buffer, so no
// locking is needed during a turn; the condition variable is only the
// between-turns parking spot.
func (e *engine) worker(t tile) {
	e.cond.L.Lock()
	e.results <- turnResult{} // notify the engine that this worker is ready
	e.cond.Wait()
	for e.running {
		e.cond.L.Unlock()
		result := e.computeTile(t)
		e.cond.L.Lock()
		e.results <- result
		e.cond.Wait() // Wait for the other workers and the swap
	}
	e.cond.L.Unlock()
}

func (e *engine) computeTile(t tile) turnResult {
	cur, nxt := e.grids.cur, e.grids.nxt
	result := turnResult{flipped: make([]util.Cell, 0, 256)}
	for y := t.start.Y; y != t.end.Y; y++ {
		for x := t.start.X; x != t.end.X; x++ {
			current := cur.at(x, y)
			next := nextCell(current, cur.liveNeighbours(x, y))
			nxt.set(x, y, next)
			if next != current {
				result.flipped = append(result.flipped, util.Cell{X: x, Y: y})
				if next != 0 {
					result.countDiff++
				} else {
					result.countDiff--
				}
			}
		}
	}
	return result
}
