package maze

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/stack"
)

// DFS cell states.
const (
	DFSVisited grid.State = iota + 1
	DFSWall
	DFSUnvisited
	DFSSelected
)

var dfsRoles = roleTable{
	DFSVisited:   RoleVisited,
	DFSWall:      RoleWall,
	DFSUnvisited: RolePending,
	DFSSelected:  RoleSelected,
}

// dfs is randomized depth-first backtracking over the internal grid.
type dfs struct {
	width, height int
	space         grid.Space
	cells         []grid.State
	path          *stack.Stack[grid.Coord]
	start         grid.Coord
	left          int
	total         int
	rng           *rand.Rand
	around        []grid.Coord
	nbuf          []grid.Coord
}

// NewDFS returns a randomized depth-first backtracking generator for a
// width×height real grid.
func NewDFS(width, height int, opts ...Option) (*Generator, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	d := &dfs{
		width:  width,
		height: height,
		space:  grid.InternalSpace(width, height),
	}
	return newGenerator(KindDFS, width, height, o, d), nil
}

// initialize marks every cell unvisited, then visits a random start cell.
//
// Error Conditions:
//   - ErrInvariant : the internal grid is empty.
//
// Steps:
//  1. Mark all W'·H' cells unvisited.
//  2. Pick a uniform start cell, mark it visited and push it on the path.
//  3. remaining = cells − 1.
//
// Complexity: O(W'·H') time and memory.
func (d *dfs) initialize(rng *rand.Rand) error {
	n := d.space.Area()
	if n == 0 {
		return invariant("dfs: empty internal grid")
	}
	d.rng = rng
	d.cells = make([]grid.State, n)
	for i := range d.cells {
		d.cells[i] = DFSUnvisited
	}
	d.path = stack.New[grid.Coord](n)
	d.around = make([]grid.Coord, 0, 4)
	d.nbuf = make([]grid.Coord, 0, 4)

	d.start = d.space.Coord(rng.Intn(n))
	d.cells[d.space.Index(d.start)] = DFSVisited
	d.path.Push(d.start)
	d.total = n - 1
	d.left = d.total

	return nil
}

// opening paints the checkerboard and selects the start cell.
func (d *dfs) opening() []grid.Batch {
	p := d.progress()
	b := grid.Checkerboard(d.width, d.height, DFSUnvisited, DFSWall, p)
	b = append(b, grid.Set(grid.Real(d.start), DFSSelected, p))
	return []grid.Batch{b}
}

func (d *dfs) remaining() int { return d.left }

func (d *dfs) progress() float64 { return workProgress(d.left, d.total) }

func (d *dfs) roles() roleTable { return dfsRoles }

// step pops the current cell, visits it if needed, then either advances into
// a random unvisited neighbor or backtracks.
//
// Error Conditions:
//   - ErrInvariant : the path stack is empty while cells remain unvisited.
//
// Steps:
//  1. Pop current; if it is unvisited, mark it and decrement the counter.
//  2. Collect its in-bounds unvisited neighbors.
//  3. Advance: push current then a random neighbor; open the wall between them,
//     deselect current, select the neighbor.
//  4. Backtrack: deselect current and select the new stack top (or the start).
//
// Complexity: O(1) per step; the whole run is O(W'·H').
func (d *dfs) step() (grid.Batch, error) {
	// 1. Current cell.
	cur, err := d.path.Pop()
	if err != nil {
		return nil, invariant("dfs: path stack empty with %d cells left", d.left)
	}
	idx := d.space.Index(cur)
	if d.cells[idx] == DFSUnvisited {
		d.cells[idx] = DFSVisited
		d.left--
	}

	// 2. Unvisited neighbors, in N, E, S, W order before the random pick.
	d.around = d.space.Neighbors(d.around[:0], cur)
	d.nbuf = d.nbuf[:0]
	for _, n := range d.around {
		if d.cells[d.space.Index(n)] == DFSUnvisited {
			d.nbuf = append(d.nbuf, n)
		}
	}

	p := d.progress()
	// 3. Advance.
	if len(d.nbuf) > 0 {
		next := d.nbuf[d.rng.Intn(len(d.nbuf))]
		d.path.Push(cur)
		d.path.Push(next)
		return grid.Batch{
			grid.Set(grid.Between(cur, next), DFSVisited, p),
			grid.Set(grid.Real(cur), DFSVisited, p),
			grid.Set(grid.Real(next), DFSSelected, p),
		}, nil
	}

	// 4. Dead end.
	top := d.path.PeekOr(d.start)
	return grid.Batch{
		grid.Set(grid.Real(cur), DFSVisited, p),
		grid.Set(grid.Real(top), DFSSelected, p),
	}, nil
}

// closing deselects whatever is on top of the path, or the start cell.
func (d *dfs) closing() grid.Batch {
	last := d.path.PopOr(d.start)
	return grid.Batch{grid.Set(grid.Real(last), DFSVisited, d.progress())}
}
