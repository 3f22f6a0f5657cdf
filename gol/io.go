package gol

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"uk.ac.bris.cs/lifesim/util"
)

// ioState is the internal state of the io goroutine. The distributor and the
// io goroutine hand requests over through a condition variable: sendRequest
// publishes an operation and signals, the io goroutine marks it completed and
// signals back, waitRequest blocks until then.
type ioState struct {
	width     int
	height    int
	operation *ioOperation
	cond      *sync.Cond
}

// ioCommand allows requesting behaviour from the io (pgm) goroutine.
type ioCommand uint8

const (
	ioOutput ioCommand = iota
	ioInput
	ioQuit
)

type ioOperation struct {
	command   ioCommand
	filename  string
	data      []uint8
	completed bool
}

func makeIo(width, height int) *ioState {
	io := &ioState{
		width:  width,
		height: height,
		cond:   sync.NewCond(new(sync.Mutex)),
	}
	// Hold the lock until the io goroutine parks in Wait, so a request
	// sent before it starts cannot lose its signal.
	io.cond.L.Lock()
	go io.start()
	return io
}

// start is the entrypoint of the io goroutine. It inherits the lock taken by
// makeIo and releases it inside the first Wait.
func (io *ioState) start() {
	for {
		io.cond.Wait()
		switch io.operation.command {
		case ioInput:
			io.readPgmImage()
		case ioOutput:
			io.writePgmImage()
		case ioQuit:
			io.cond.L.Unlock()
			return
		}
		io.operation.completed = true
		io.cond.Signal()
	}
}

// writePgmImage writes the operation's cell data to out/<filename>.pgm.
func (io *ioState) writePgmImage() {
	_ = os.Mkdir("out", os.ModePerm)

	file, err := os.Create("out/" + io.operation.filename + ".pgm")
	util.Check(err)
	defer file.Close()

	_, err = fmt.Fprintf(file, "P5\n%d %d\n255\n", io.width, io.height)
	util.Check(err)
	_, err = file.Write(io.operation.data)
	util.Check(err)
	util.Check(file.Sync())

	fmt.Println("File", io.operation.filename, "output done!")
}

// readPgmImage loads images/<filename>.pgm into the operation's data slice.
func (io *ioState) readPgmImage() {
	data, err := os.ReadFile("images/" + io.operation.filename + ".pgm")
	util.Check(err)

	fields := strings.SplitN(string(data), "\n", 4)
	if len(fields) != 4 || fields[0] != "P5" {
		panic("Not a pgm file")
	}

	dimensions := strings.Fields(fields[1])
	width, _ := strconv.Atoi(dimensions[0])
	if width != io.width {
		panic("Incorrect width")
	}
	height, _ := strconv.Atoi(dimensions[1])
	if height != io.height {
		panic("Incorrect height")
	}
	maxval, _ := strconv.Atoi(strings.TrimSpace(fields[2]))
	if maxval != 255 {
		panic("Incorrect maxval/bit depth")
	}

	io.operation.data = []uint8(fields[3])[:width*height]

	fmt.Println("File", io.operation.filename, "input done!")
}

// sendRequest initiates an IO request.
func (io *ioState) sendRequest(operation *ioOperation) {
	io.cond.L.Lock()
	io.operation = operation
	io.cond.Signal()
	io.cond.L.Unlock()
}

// waitRequest blocks until the last IO operation has completed.
func (io *ioState) waitRequest() {
	io.cond.L.Lock()
	for !io.operation.completed {
		io.cond.Wait()
	}
	io.cond.L.Unlock()
}

// quit tells the io goroutine to exit.
func (io *ioState) quit() {
	io.cond.L.Lock()
	io.operation = &ioOperation{command: ioQuit}
	io.cond.Signal()
	io.cond.L.Unlock()
}
