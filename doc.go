// Package lvmaze generates perfect mazes one small step at a time.
//
// What is lvmaze?
//
//	A pull-based maze generation library. Every generator is a producer of
//	ordered batches of cell updates; a consumer applies them to a grid and
//	may render, record or animate every intermediate state.
//		• Algorithms: randomized depth-first search, randomized Kruskal, origin shift
//		• Consumer: grid.Grid applies batches and keeps counters
//		• Stages: pipeline.Map / Tap / Filter / Recolor wrap any producer
//		• Solving: solve.Solve finds the route through a finished maze
//
// Layout
//
//	grid/       coordinates, updates, batches, the Producer contract and the reference Grid
//	maze/       the three generators behind one Generator type
//	pipeline/   transform stages that are themselves producers
//	solve/      breadth-first route finding on a finished grid
//	stack/      generic LIFO with Fisher–Yates shuffle
//	unionfind/  disjoint-set forest with path compression and union by rank
//	internal/   CLI, config, renderer and SQLite run store behind cmd/lvmaze
//
// Quick example:
//
//	gen, _ := maze.New(maze.KindDFS, 21, 11, maze.WithSeed(7))
//	g, _ := grid.New(21, 11)
//	stats, err := g.Drain(ctx, gen)
//
// Coordinates are 1-based (Row, Col). Internal cell (i, j) lives at real
// cell (2i, 2j); the wall between adjacent internal cells a and b lives at
// (a.Row+b.Row, a.Col+b.Col).
package lvmaze
