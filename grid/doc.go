// Package grid defines the update-stream vocabulary shared by maze generators
// and their consumers, plus a reference consumer that applies updates to a
// flat cell array.
//
// Two coordinate spaces:
//
//   - Real space: the output grid of Width×Height cells, walls and passages
//     interleaved. Coordinates are 1-based (Row in [1,Height], Col in [1,Width]).
//   - Internal space: passage cells only, of size ⌊(Width-1)/2⌋ × ⌊(Height-1)/2⌋.
//     Internal (i,j) lives at real (2i,2j); the wall between adjacent internal
//     cells (i1,j1)-(i2,j2) lives at real (i1+i2, j1+j2).
//
// Stream vocabulary:
//
//   - Update: one real cell's new State plus a Progress scalar in [0,1].
//   - Batch: the ordered updates handed over at one suspension point.
//   - Producer: anything with Next() (Batch, bool, error). ok=false with a nil
//     error means the stream ended normally.
//
// Consumer:
//
//   - Grid stores States row-major: index = (Row-1)*Width + (Col-1).
//   - Apply validates a whole batch before writing, so a rejected batch leaves
//     the grid untouched.
//   - Drain pulls a Producer to exhaustion, honoring context cancellation between pulls.
//
// Ordering: batches must be applied in emission order. Later batches assume the
// effects of earlier ones; reordering or merging corrupts the picture.
//
// Errors:
//
//   - ErrInvalidSize: grid width or height below 1.
//   - ErrOutOfBounds: an update addresses a cell outside the grid.
//   - ErrNilProducer: Drain called with a nil producer.
package grid
