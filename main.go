package main

import (
	"flag"
	"fmt"
	"runtime"

	"uk.ac.bris.cs/lifesim/gol"
	"uk.ac.bris.cs/lifesim/sdl"
)

func main() {
	runtime.LockOSThread()
	var params gol.Params

	flag.IntVar(
		&params.Threads,
		"t",
		8,
		"Specify the number of worker threads to use. Defaults to 8.")

	flag.IntVar(
		&params.ImageWidth,
		"w",
		512,
		"Specify the width of the board. Defaults to 512.")

	flag.IntVar(
		&params.ImageHeight,
		"h",
		512,
		"Specify the height of the board. Defaults to 512.")

	flag.IntVar(
		&params.Turns,
		"turns",
		10000000000,
		"Specify the number of turns to process. Defaults to 10000000000.")

	flag.IntVar(
		&params.Cadence,
		"cadence",
		6,
		"Specify the number of render frames per generation. 0 runs flat out. Defaults to 6.")

	flag.BoolVar(
		&params.Random,
		"random",
		false,
		"Seed the board randomly instead of loading a pgm image.")

	flag.Int64Var(
		&params.Seed,
		"seed",
		1,
		"Specify the seed for the random board. Defaults to 1.")

	noVis := flag.Bool(
		"noVis",
		false,
		"Disables the SDL window, so there is no visualisation during the execution.")

	flag.Parse()

	fmt.Println("Threads:", params.Threads)
	fmt.Println("Width:", params.ImageWidth)
	fmt.Println("Height:", params.ImageHeight)

	events := make(chan gol.Event, 1000)
	keyPresses := make(chan rune, 10)

	go gol.Run(params, events, keyPresses)

	if *noVis {
		for event := range events {
			if len(event.String()) > 0 {
				fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
			}
		}
		return
	}

	w := sdl.NewWindow(int32(params.ImageWidth), int32(params.ImageHeight))
	defer w.Destroy()

	for {
		if key := w.PollEvent(); key != 0 {
			keyPresses <- key
		}

		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch e := event.(type) {
			case gol.CellsFlipped:
				for _, cell := range e.Cells {
					w.FlipPixel(cell.X, cell.Y)
				}
			case gol.TurnComplete:
				w.RenderFrame()
			case gol.FinalTurnComplete:
				w.RenderFrame()
			default:
				if len(event.String()) > 0 {
					fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
				}
			}
		default:
		}
	}
}
