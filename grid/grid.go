package grid

import (
	"context"
	"fmt"
)

// Option configures a Grid.
type Option func(*Grid)

// WithOnBatch installs fn, called with each batch after it has been applied.
func WithOnBatch(fn func(Batch)) Option {
	return func(g *Grid) {
		g.onBatch = fn
	}
}

// Grid is the reference consumer: a persistent row-major array of States.
// It is not safe for concurrent use.
type Grid struct {
	width, height int
	cells         []State
	onBatch       func(Batch)
	stats         Stats
}

// New returns a width×height grid with every cell Unset.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width returns the real grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the real grid height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether real coordinate c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 1 && c.Row <= g.height && c.Col >= 1 && c.Col <= g.width
}

// index maps a 1-based real coordinate to its slot: (row-1)*width + (col-1).
func (g *Grid) index(c Coord) int {
	return (c.Row-1)*g.width + (c.Col - 1)
}

// At returns the state of real cell c.
func (g *Grid) At(c Coord) (State, error) {
	if !g.InBounds(c) {
		return Unset, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.cells[g.index(c)], nil
}

// Cells returns a copy of the backing array in row-major order.
func (g *Grid) Cells() []State {
	out := make([]State, len(g.cells))
	copy(out, g.cells)
	return out
}

// Row returns a copy of real row r (1-based), or nil when out of range.
func (g *Grid) Row(r int) []State {
	if r < 1 || r > g.height {
		return nil
	}
	out := make([]State, g.width)
	copy(out, g.cells[(r-1)*g.width:r*g.width])
	return out
}

// Stats returns counters for everything applied so far.
func (g *Grid) Stats() Stats { return g.stats }

// Apply writes every update of b in order, then invokes the batch callback.
// The whole batch is validated first; on error nothing is written.
func (g *Grid) Apply(b Batch) error {
	for _, u := range b {
		if !g.InBounds(u.At()) {
			return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, u.At(), g.width, g.height)
		}
	}
	for _, u := range b {
		g.cells[g.index(u.At())] = u.State
	}
	g.stats.Batches++
	g.stats.Updates += len(b)
	if len(b) > 0 {
		g.stats.Progress = b.Progress()
	}
	if g.onBatch != nil {
		g.onBatch(b)
	}
	return nil
}

// Drain pulls p until it ends, applying each batch in order.
// ctx is checked before every pull; cancellation leaves the grid in its
// partially generated state and returns ctx.Err().
func (g *Grid) Drain(ctx context.Context, p Producer) (Stats, error) {
	if p == nil {
		return g.stats, ErrNilProducer
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		if err := ctx.Err(); err != nil {
			return g.stats, err
		}
		b, ok, err := p.Next()
		if err != nil {
			return g.stats, err
		}
		if !ok {
			return g.stats, nil
		}
		if err := g.Apply(b); err != nil {
			return g.stats, err
		}
	}
}
