package gol

import (
	"testing"

	"uk.ac.bris.cs/lifesim/util"
)

// Run with a seeded random board must report the same final state as driving
// the engine directly.
func TestRunMatchesEngine(t *testing.T) {
	const width, height, turns, seed = 32, 24, 20, 11

	want := advance(randomGrid(width, height, seed), 1, turns).aliveCells()

	p := Params{
		Turns:       turns,
		Threads:     6,
		ImageWidth:  width,
		ImageHeight: height,
		Random:      true,
		Seed:        seed,
	}
	events := make(chan Event)
	go Run(p, events, nil)

	var got []util.Cell
	completed := 0
	for event := range events {
		switch e := event.(type) {
		case FinalTurnComplete:
			got = e.Alive
			completed = e.CompletedTurns
		}
	}

	if completed != turns {
		t.Fatalf("FinalTurnComplete after %d turns, want %d", completed, turns)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d live cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %v, want %v", got[i], want[i])
		}
	}
}
