// Package maze generates perfect mazes (spanning trees of a grid) step by step
// and streams the construction as ordered batches of cell updates.
//
// What & Why
//
//   - A perfect maze is a spanning tree of the internal cell grid: every cell is
//     reachable from every other along exactly one path.
//   - Instead of returning a finished maze, each Generator is pulled one batch
//     at a time. A renderer can paint construction progress as it happens, and a
//     caller that stops pulling simply abandons a valid partial state.
//
// Algorithms Provided
//
//   - DFS (randomized backtracking). A path stack walks into a random unvisited
//     neighbor and backtracks at dead ends. Produces long, winding corridors.
//     Work: one step per push/pop; remaining = cells − 1.
//
//   - Kruskal (randomized). Every inner wall is shuffled onto a stack; popping a
//     wall removes it when the cells on either side are not yet connected
//     (checked with a union–find forest). Work: remaining = cells − 1 unions.
//
//   - OriginShift. Starts from a fixed spanning tree whose root ("origin") sits
//     in the bottom-right corner. Each step moves the origin to a random neighbor
//     and re-points the old origin at it, keeping a valid tree at all times.
//     Work: remaining = the caller's step budget.
//
// Lifecycle
//
//	not started ──Next/Init──▶ running ──▶ exhausted
//	                              │
//	                              └──────▶ failed
//
//   - The first Next initializes the algorithm (exactly once) and returns the
//     first opening batch. Init does the same eagerly.
//   - While running, each Next runs one complete logical step; internal state is
//     never left half-updated between pulls.
//   - The closing batch deselects the cursor. The following Next returns
//     (nil, false, nil); any later Next returns ErrExhausted.
//   - An internal fault moves the generator to the failed state. The failure is
//     returned from Next (wrapping ErrInvariant) and repeated on every later call,
//     so abnormal termination is never confused with exhaustion.
//
// Progress
//
//	DFS, Kruskal:  1 − remaining/(cells − 1)   (1 when cells == 1)
//	OriginShift:   1 − remaining/steps
//
// Progress is non-decreasing, reaches 1 exactly when remaining reaches 0, and
// closing updates reuse the final value.
//
// Determinism
//
//   - WithSeed(s) seeds math/rand; seed 0 maps to a fixed default. WithRand
//     supplies a caller-owned stream. Equal seeds give identical update streams.
//
// Errors
//
//   - ErrInvalidDimensions: width or height below 3, or a grid too small for the algorithm.
//   - ErrInvalidSteps:      OriginShift step budget below 1.
//   - ErrAlreadyInitialized: Init called twice, or after the first Next.
//   - ErrExhausted:         Next called after the stream ended.
//   - ErrInvariant:         internal consistency fault.
//   - ErrUnknownKind:       New or ParseKind with an unknown algorithm name.
//
// Concurrency: a Generator is not safe for concurrent use. One consumer owns it.
package maze
