package gol

// Params provides the details of how to run the Game of Life and how to seed
// the board. With Random set the board is filled from Seed; otherwise the
// image images/<width>x<height>.pgm is loaded. Cadence is the number of
// nominal render frames per generation (0 runs flat out).
type Params struct {
	Turns       int
	Threads     int
	ImageWidth  int
	ImageHeight int
	Cadence     int
	Random      bool
	Seed        int64
}

// Run starts the processing of Game of Life. It should initialise channels and goroutines.
func Run(p Params, events chan<- Event, keyPresses <-chan rune) {

	io := makeIo(p.ImageWidth, p.ImageHeight)

	distributorChannels := distributorChannels{
		events:     events,
		keyPresses: keyPresses,
	}
	distributor(p, io, distributorChannels)
}
