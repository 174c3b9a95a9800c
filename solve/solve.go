package solve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// walker holds mutable search state.
type walker struct {
	g      *grid.Grid
	cells  []grid.State
	opts   Options
	queue  []int
	parent []int
	res    *Result
}

// Solve runs breadth-first search on g from start to goal.
// Returns ErrGridNil, grid.ErrOutOfBounds or ErrBlocked for bad input,
// ErrNoPath when goal is unreachable, or the context or hook error that stopped it.
func Solve(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, c := range []grid.Coord{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %s", grid.ErrOutOfBounds, c)
		}
	}

	n := g.Width() * g.Height()
	w := &walker{
		g:      g,
		cells:  g.Cells(),
		opts:   o,
		queue:  make([]int, 0, n),
		parent: make([]int, n),
		res: &Result{
			Order: make([]grid.Coord, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := range w.parent {
		w.parent[i] = -1
		w.res.Depth[i] = -1
	}

	s, t := w.index(start), w.index(goal)
	if !o.Passable(w.cells[s]) || !o.Passable(w.cells[t]) {
		return nil, ErrBlocked
	}

	w.res.Depth[s] = 0
	w.queue = append(w.queue, s)
	if err := w.loop(t); err != nil {
		return nil, err
	}
	if w.res.Depth[t] < 0 {
		return nil, ErrNoPath
	}
	w.res.Path = w.path(t)
	return w.res, nil
}

func (w *walker) index(c grid.Coord) int {
	return (c.Row-1)*w.g.Width() + (c.Col - 1)
}

func (w *walker) coord(i int) grid.Coord {
	return grid.Coord{Row: i/w.g.Width() + 1, Col: i%w.g.Width() + 1}
}

// loop processes the queue until goal is dequeued, the queue drains, or an error.
func (w *walker) loop(goal int) error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		cur := w.queue[0]
		w.queue = w.queue[1:]

		c := w.coord(cur)
		w.res.Order = append(w.res.Order, c)
		if err := w.opts.OnVisit(c, w.res.Depth[cur]); err != nil {
			return fmt.Errorf("solve: OnVisit error at %s: %w", c, err)
		}
		if cur == goal {
			return nil
		}
		w.enqueueNeighbors(cur, c)
	}
	return nil
}

func (w *walker) enqueueNeighbors(cur int, c grid.Coord) {
	for _, d := range offsets4 {
		nc := grid.Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !w.g.InBounds(nc) {
			continue
		}
		ni := w.index(nc)
		if w.res.Depth[ni] >= 0 || !w.opts.Passable(w.cells[ni]) {
			continue
		}
		w.res.Depth[ni] = w.res.Depth[cur] + 1
		w.parent[ni] = cur
		w.queue = append(w.queue, ni)
	}
}

// path walks parent links back from goal and returns the route start→goal.
func (w *walker) path(goal int) []grid.Coord {
	out := make([]grid.Coord, w.res.Depth[goal]+1)
	for i, at := len(out)-1, goal; i >= 0; i, at = i-1, w.parent[at] {
		out[i] = w.coord(at)
	}
	return out
}

// Corners returns the first and last internal cells of a width×height maze,
// in real coordinates: the conventional entrance and exit.
func Corners(width, height int) (grid.Coord, grid.Coord) {
	sp := grid.InternalSpace(width, height)
	return grid.Real(grid.Coord{Row: 1, Col: 1}), grid.Real(grid.Coord{Row: sp.Height, Col: sp.Width})
}
