package gol

import (
	"fmt"
	"time"
)

type distributorChannels struct {
	events     chan<- Event
	keyPresses <-chan rune
}

// frameDuration is the nominal render frame interval the cadence ratio is
// expressed against.
const frameDuration = time.Second / 60

// distributor seeds the board, drives the engine and interacts with the
// other goroutines.
func distributor(p Params, io *ioState, c distributorChannels) {

	defer io.quit()

	// Seed the board: either a deterministic random fill or a pgm image
	var initial *Grid
	if p.Random {
		initial = randomGrid(p.ImageWidth, p.ImageHeight, p.Seed)
	} else {
		operation := ioOperation{
			command:  ioInput,
			filename: fmt.Sprintf("%dx%d", p.ImageWidth, p.ImageHeight),
		}
		io.sendRequest(&operation)
		io.waitRequest()
		initial = MakeGridFromData(p.ImageWidth, p.ImageHeight, operation.data)
	}
	c.events <- CellsFlipped{0, initial.aliveCells()}

	engine := makeEngine(initial, p.Threads)
	defer engine.Stop()

	// Write file function
	write := func(turn int) {
		filename := fmt.Sprintf("%dx%dx%d", p.ImageWidth, p.ImageHeight, turn)
		operation := &ioOperation{
			command:  ioOutput,
			filename: filename,
			data:     engine.Current().cells,
		}
		io.sendRequest(operation)
		io.waitRequest()
		c.events <- ImageOutputComplete{turn, filename}
	}

	// Alive timer
	ticker := time.NewTicker(time.Second * 2)
	defer ticker.Stop()

	// Generation gate: with a cadence ratio of N the engine advances once
	// per N nominal render frames; zero means run flat out.
	var gate <-chan time.Time
	if p.Cadence > 0 {
		gateTicker := time.NewTicker(frameDuration * time.Duration(p.Cadence))
		defer gateTicker.Stop()
		gate = gateTicker.C
	}

	// Evaluate each turn
	turn := 0
	paused := false
	c.events <- StateChange{turn, Executing}
	for turn != p.Turns {
		if gate != nil {
			<-gate
		}
		flipped := engine.Step()
		c.events <- CellsFlipped{turn, flipped}
		turn++
		c.events <- TurnComplete{turn}
		// Handle events
	handle:
		select {
		case <-ticker.C:
			c.events <- AliveCellsCount{turn, engine.Alive()}
		case char := <-c.keyPresses:
			switch char {
			case 's':
				write(turn)
			case 'q':
				goto quit
			case 'p':
				paused = !paused
				if paused {
					c.events <- StateChange{turn, Paused}
				} else {
					c.events <- StateChange{turn, Executing}
				}
			}
		default:
		}
		if paused {
			goto handle
		}
	}

quit:
	c.events <- FinalTurnComplete{turn, engine.Current().aliveCells()}

	// Write file
	write(turn)

	c.events <- StateChange{turn, Quitting}

	// Close the channel to stop the SDL goroutine gracefully. Removing may cause deadlock.
	close(c.events)
}
