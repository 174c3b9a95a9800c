package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates an update outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNilProducer indicates Drain was called without a producer.
	ErrNilProducer = errors.New("grid: nil producer")
)

// Coord is a 1-based (Row, Col) pair. Whether it addresses real or internal
// space depends on the caller.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State is a cell state. Values are owned by each generator; the zero value
// means "never written".
type State uint8

// Unset is the zero State held by every cell of a fresh Grid.
const Unset State = 0

// Update describes one real cell's new state.
type Update struct {
	Row      int
	Col      int
	State    State
	Progress float64
}

// At returns the update's coordinate.
func (u Update) At() Coord { return Coord{Row: u.Row, Col: u.Col} }

// Set builds an Update for real coordinate c.
func Set(c Coord, s State, progress float64) Update {
	return Update{Row: c.Row, Col: c.Col, State: s, Progress: progress}
}

// Batch is the ordered group of updates emitted at one suspension point.
type Batch []Update

// Progress returns the progress of the last update in b, or -1 for an empty batch.
func (b Batch) Progress() float64 {
	if len(b) == 0 {
		return -1
	}
	return b[len(b)-1].Progress
}

// Producer yields batches one pull at a time.
// Next returns (batch, true, nil) while the stream is live, (nil, false, nil)
// once it has ended normally, and a non-nil error on abnormal termination.
type Producer interface {
	Next() (Batch, bool, error)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func() (Batch, bool, error)

// Next calls f.
func (f ProducerFunc) Next() (Batch, bool, error) { return f() }

// Stats summarizes what a Grid has applied so far.
type Stats struct {
	Batches  int
	Updates  int
	Progress float64
}
