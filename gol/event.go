package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifesim/util"
)

// Event is sent by the engine to report its progress.
type Event interface {
	fmt.Stringer
	// GetCompletedTurns should return the number of fully completed turns.
	GetCompletedTurns() int
}

// AliveCellsCount is an Event notifying the user about the current number of alive cells.
// This Event should be sent every 2s.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// ImageOutputComplete is an Event notifying the user about the completion of output.
// This Event should be sent every time an image has been saved.
type ImageOutputComplete struct {
	CompletedTurns int
	Filename       string
}

// StateChange is an Event notifying the user about the change of state of execution.
// This Event should be sent every time the execution is paused, resumed or quit.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// CellsFlipped is an Event notifying the GUI about a change of state of many cells.
// This event should be sent every time a generation flips any cells.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is an Event notifying the GUI about turn completion.
// SDL will render a frame when this event is sent.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete is an Event notifying the testing framework about the new world state after the last turn.
// The data included with this Event is used directly by the tests.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %d", event.CellsCount)
}

func (event ImageOutputComplete) String() string {
	return fmt.Sprintf("File %v output complete", event.Filename)
}

func (event StateChange) String() string {
	return fmt.Sprintf("State change %v", event.NewState)
}

func (event CellsFlipped) String() string {
	return ""
}

func (event TurnComplete) String() string {
	return ""
}

func (event FinalTurnComplete) String() string {
	return "Final Turn Complete"
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event ImageOutputComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellsFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
