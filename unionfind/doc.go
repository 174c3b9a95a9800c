// Package unionfind implements a disjoint-set forest (union–find) with
// path compression, union by rank and an opaque payload per element.
//
// What & Why
//
//   - Kruskal's maze generator asks one question per wall: "are the two cells
//     on either side already connected?" A disjoint-set forest answers it in
//     near-constant amortized time, α(n), the inverse Ackermann function.
//   - Every element carries a payload (for mazes: the cell coordinate). The
//     payload of a set is read through its representative, found by Find.
//
// Representation
//
//   - Elements are dense integer ids handed out by MakeSet (0, 1, 2, ...).
//   - parent[] and rank[] are flat slices indexed by id; no pointers, no maps.
//   - payload[] is a fixed array keyed by id.
//
// Operations
//
//   - MakeSet(p)     O(1)        creates a singleton set owning p.
//   - Find(x)        O(α(n))     returns the representative; every node on the
//     visited path is re-pointed directly at it (full path compression).
//   - Union(a, b)    O(α(n))     merges by rank; ties promote a's root.
//     Returns false when a and b were already connected (no-op).
//   - Connected(a,b) O(α(n))     Find(a) == Find(b).
//   - Payload(x)     O(α(n))     payload of x's representative.
//
// No operation returns an error. Ids outside [0, Len()) are programmer errors and
// panic with the usual index-out-of-range message.
//
// Concurrency: a Forest is not safe for concurrent use.
package unionfind
