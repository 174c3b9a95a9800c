package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for Solve.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrBlocked is returned when start or goal is not passable.
	ErrBlocked = errors.New("solve: endpoint is not passable")

	// ErrNoPath is returned when goal cannot be reached from start.
	ErrNoPath = errors.New("solve: no path between endpoints")
)

// Option configures Solve.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// Passable reports whether a cell state can be walked on.
	// The default treats every state except grid.Unset as passable.
	Passable func(grid.State) bool

	// OnVisit is called when a cell is dequeued. A non-nil error aborts the search.
	OnVisit func(c grid.Coord, depth int) error
}

// DefaultOptions returns Options with a background context, no-op hook and
// the any-written-cell passable test.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Passable: func(s grid.State) bool { return s != grid.Unset },
		OnVisit:  func(grid.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPassable sets the passable test.
func WithPassable(fn func(grid.State) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithOnVisit installs a visit hook.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	Path  []grid.Coord
	Order []grid.Coord
	Depth []int // row-major over the grid; -1 for unreached cells
}

// Len returns the number of moves on Path.
func (r *Result) Len() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
