package maze

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/stack"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// Kruskal cell states.
const (
	KruskalVisited grid.State = iota + 1
	KruskalWall
	KruskalUnvisited
	KruskalSelected
)

var kruskalRoles = roleTable{
	KruskalVisited:   RoleVisited,
	KruskalWall:      RoleWall,
	KruskalUnvisited: RolePending,
	KruskalSelected:  RoleSelected,
}

type wallSide uint8

const (
	sideTop wallSide = iota
	sideLeft
)

// wall is the top or left wall of an internal cell.
type wall struct {
	cell grid.Coord
	side wallSide
}

// cells returns the two internal cells the wall separates.
func (w wall) cells() (grid.Coord, grid.Coord) {
	if w.side == sideTop {
		return grid.Coord{Row: w.cell.Row - 1, Col: w.cell.Col}, w.cell
	}
	return grid.Coord{Row: w.cell.Row, Col: w.cell.Col - 1}, w.cell
}

// coord returns the wall's real-grid coordinate.
func (w wall) coord() grid.Coord {
	a, b := w.cells()
	return grid.Between(a, b)
}

// kruskal is randomized Kruskal over the internal grid. Set ids in the forest
// equal the row-major internal index of the cell they were created for.
type kruskal struct {
	width, height int
	space         grid.Space
	sets          *unionfind.Forest[grid.Coord]
	walls         *stack.Stack[wall]
	left          int
	total         int
	unions        int
}

// NewKruskal returns a randomized Kruskal generator for a width×height real grid.
func NewKruskal(width, height int, opts ...Option) (*Generator, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	k := &kruskal{
		width:  width,
		height: height,
		space:  grid.InternalSpace(width, height),
	}
	return newGenerator(KindKruskal, width, height, o, k), nil
}

// initialize creates one set per cell, stacks every inner wall and shuffles them.
//
// Error Conditions:
//   - ErrInvariant : the internal grid is empty.
//
// Steps:
//  1. MakeSet for every internal cell in row-major order, so set id == cell index.
//  2. Push the top wall of every cell below row 1 and the left wall of every cell right of column 1.
//  3. Shuffle the wall stack with rng.
//  4. remaining = cells − 1, the unions needed to connect everything.
//
// Complexity: O(W'·H') time and memory.
func (k *kruskal) initialize(rng *rand.Rand) error {
	n := k.space.Area()
	if n == 0 {
		return invariant("kruskal: empty internal grid")
	}
	k.sets = unionfind.New[grid.Coord](n)
	k.walls = stack.New[wall](2 * n)
	for idx := 0; idx < n; idx++ {
		c := k.space.Coord(idx)
		k.sets.MakeSet(c)
		if c.Row > 1 {
			k.walls.Push(wall{cell: c, side: sideTop})
		}
		if c.Col > 1 {
			k.walls.Push(wall{cell: c, side: sideLeft})
		}
	}
	k.walls.Shuffle(rng)
	k.total = n - 1
	k.left = k.total

	return nil
}

// opening selects the first wall, then paints the checkerboard, as two batches.
func (k *kruskal) opening() []grid.Batch {
	p := k.progress()
	var first grid.Batch
	if w, err := k.walls.Peek(); err == nil {
		first = grid.Batch{grid.Set(w.coord(), KruskalSelected, p)}
	}
	return []grid.Batch{
		first,
		grid.Checkerboard(k.width, k.height, KruskalUnvisited, KruskalWall, p),
	}
}

func (k *kruskal) remaining() int { return k.left }

func (k *kruskal) progress() float64 { return workProgress(k.left, k.total) }

func (k *kruskal) roles() roleTable { return kruskalRoles }

// step pops a wall and removes it when it separates two components.
//
// Error Conditions:
//   - ErrInvariant : the wall stack ran out while unions are still needed.
//
// Steps:
//  1. Pop the top wall and resolve the two cells it separates.
//  2. Already connected: repaint it as wall, select the next wall; the counter is unchanged.
//  3. Otherwise: decrement the counter, open the wall and both cells, select the next wall,
//     then Union the two sets.
//
// Complexity: O(α(W'·H')) amortized per step.
func (k *kruskal) step() (grid.Batch, error) {
	// 1. Next candidate wall.
	w, err := k.walls.Pop()
	if err != nil {
		return nil, invariant("kruskal: wall stack empty with %d unions left", k.left)
	}
	a, b := w.cells()
	ia, ib := k.space.Index(a), k.space.Index(b)

	// 2. Removing it would close a cycle.
	if k.sets.Connected(ia, ib) {
		p := k.progress()
		out := grid.Batch{grid.Set(w.coord(), KruskalWall, p)}
		if next, err := k.walls.Peek(); err == nil {
			out = append(out, grid.Set(next.coord(), KruskalSelected, p))
		}
		return out, nil
	}

	// 3. The wall joins two components.
	k.left--
	k.unions++
	p := k.progress()
	out := grid.Batch{
		grid.Set(w.coord(), KruskalVisited, p),
		grid.Set(grid.Real(a), KruskalVisited, p),
		grid.Set(grid.Real(b), KruskalVisited, p),
	}
	if next, err := k.walls.Peek(); err == nil {
		out = append(out, grid.Set(next.coord(), KruskalSelected, p))
	}
	k.sets.Union(ia, ib)

	return out, nil
}

// closing deselects the wall left on top of the stack, if any.
func (k *kruskal) closing() grid.Batch {
	w, err := k.walls.Peek()
	if err != nil {
		return nil
	}
	return grid.Batch{grid.Set(w.coord(), KruskalWall, k.progress())}
}
