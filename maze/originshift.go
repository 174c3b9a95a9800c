package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
)

// OriginShift cell states.
const (
	OriginOpen grid.State = iota + 1
	OriginWall
	OriginSelected
)

var originRoles = roleTable{
	OriginOpen:     RoleVisited,
	OriginWall:     RoleWall,
	OriginSelected: RoleSelected,
}

// noParent marks the root in originShift.parent.
const noParent = -1

// originShift keeps a directed spanning tree in a flat parent array indexed by
// internal row-major index. Exactly one node, root, has no parent.
type originShift struct {
	width, height int
	space         grid.Space
	parent        []int
	root          int
	steps         int
	left          int
	rng           *rand.Rand
	nbuf          []grid.Coord
}

// NewOriginShift returns an origin-shift generator for a width×height real grid
// that runs exactly steps origin moves. The internal grid needs at least two cells.
func NewOriginShift(width, height, steps int, opts ...Option) (*Generator, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	space := grid.InternalSpace(width, height)
	if space.Area() < 2 {
		return nil, fmt.Errorf("%w: %dx%d has a single internal cell; origin-shift needs two", ErrInvalidDimensions, width, height)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	o := buildOptions(opts)
	s := &originShift{
		width:  width,
		height: height,
		space:  space,
		steps:  steps,
	}
	g := newGenerator(KindOriginShift, width, height, o, s)
	g.steps = steps
	return g, nil
}

// initialize wires the default tree: rows point right, the last column points
// down, and the bottom-right cell is the root.
//
// Error Conditions:
//   - ErrInvariant : fewer than two internal cells (rejected earlier by NewOriginShift).
//
// Steps:
//  1. Allocate one parent slot per internal cell.
//  2. Point every cell at its right neighbor, last-column cells at the cell below.
//  3. Leave the bottom-right cell parentless and make it the root.
//  4. Load the step budget into the remaining counter.
//
// Complexity: O(W'·H') time and memory over the internal grid.
func (s *originShift) initialize(rng *rand.Rand) error {
	n := s.space.Area()
	if n < 2 {
		return invariant("origin-shift: %d internal cells", n)
	}
	s.rng = rng
	s.parent = make([]int, n)
	for idx := 0; idx < n; idx++ {
		c := s.space.Coord(idx)
		switch {
		case c.Col < s.space.Width:
			s.parent[idx] = s.space.Index(grid.Coord{Row: c.Row, Col: c.Col + 1})
		case c.Row < s.space.Height:
			s.parent[idx] = s.space.Index(grid.Coord{Row: c.Row + 1, Col: c.Col})
		default:
			s.parent[idx] = noParent
		}
	}
	s.root = s.space.Index(grid.Coord{Row: s.space.Height, Col: s.space.Width})
	s.left = s.steps
	s.nbuf = make([]grid.Coord, 0, 4)

	return nil
}

// open reports whether real cell (i,j) is a passage of the default tree:
// every internal row with its horizontal links, plus the last internal column
// with its vertical links. Bounds follow the truncated internal grid, so for
// an even real width the vertical run sits in column 2·W', next to the extra
// wall column.
func (s *originShift) open(i, j int) bool {
	lastRow, lastCol := 2*s.space.Height, 2*s.space.Width
	if i < 2 || i > lastRow || j < 2 || j > lastCol {
		return false
	}
	return i%2 == 0 || j == lastCol
}

// opening paints the default tree and selects the root.
func (s *originShift) opening() []grid.Batch {
	p := s.progress()
	b := make(grid.Batch, 0, s.width*s.height+1)
	for i := 1; i <= s.height; i++ {
		for j := 1; j <= s.width; j++ {
			st := OriginWall
			if s.open(i, j) {
				st = OriginOpen
			}
			b = append(b, grid.Update{Row: i, Col: j, State: st, Progress: p})
		}
	}
	b = append(b, grid.Set(grid.Real(s.space.Coord(s.root)), OriginSelected, p))
	return []grid.Batch{b}
}

func (s *originShift) remaining() int { return s.left }

func (s *originShift) progress() float64 { return workProgress(s.left, s.steps) }

func (s *originShift) roles() roleTable { return originRoles }

// step moves the origin to a random neighbor and re-points the old origin at it.
//
// Error Conditions:
//   - ErrInvariant : the root has no neighbor, or a non-root node has no parent.
//
// Steps:
//  1. Pick a uniformly random in-bounds neighbor of the root (no visited filter).
//  2. Decrement the budget and compute progress.
//  3. Emit: close neighbor→parent wall, open root↔neighbor wall, deselect root, select neighbor.
//  4. Rewire: the neighbor loses its parent, the old root points at it, the root moves.
//
// Complexity: O(1) per step.
func (s *originShift) step() (grid.Batch, error) {
	// 1. Choose the new origin among the root's neighbors.
	rc := s.space.Coord(s.root)
	s.nbuf = s.space.Neighbors(s.nbuf[:0], rc)
	if len(s.nbuf) == 0 {
		return nil, invariant("origin-shift: root %s has no neighbors", rc)
	}
	next := s.nbuf[s.rng.Intn(len(s.nbuf))]
	ni := s.space.Index(next)
	pi := s.parent[ni]
	if pi == noParent {
		return nil, invariant("origin-shift: non-root %s has no parent", next)
	}

	// 2. One move of the budget is spent.
	s.left--
	p := s.progress()
	// 3. Order matters: the neighbor's old link closes before the new one opens.
	out := grid.Batch{
		grid.Set(grid.Between(next, s.space.Coord(pi)), OriginWall, p),
		grid.Set(grid.Between(rc, next), OriginOpen, p),
		grid.Set(grid.Real(rc), OriginOpen, p),
		grid.Set(grid.Real(next), OriginSelected, p),
	}

	// 4. Reverse the edge between old and new origin.
	s.parent[ni] = noParent
	s.parent[s.root] = ni
	s.root = ni

	return out, nil
}

// closing deselects the final root.
func (s *originShift) closing() grid.Batch {
	return grid.Batch{grid.Set(grid.Real(s.space.Coord(s.root)), OriginOpen, s.progress())}
}
