// Package solve finds shortest routes through a finished maze.
//
// What
//
//   - Breadth-first search over the cells of a grid.Grid, moving orthogonally
//     between cells the caller marks passable.
//   - Returns a Result with:
//   - Path: the route from start to goal, both inclusive
//   - Order: cells in visit order
//   - Depth: distance from start for every reached cell (-1 when unreached)
//   - Hooks: OnVisit may abort the search with an error.
//
// Why
//
//   - A perfect maze has exactly one route between any two passage cells,
//     so the BFS route is the route. Drawing it is the quickest visual check
//     that a generator produced a connected maze.
//
// Determinism
//
//	Neighbors are explored in N, E, S, W order, so Order is reproducible.
//
// Complexity
//
//	Time O(W·H), memory O(W·H).
package solve
