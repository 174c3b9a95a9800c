// Package stack provides a small generic LIFO container used by the maze
// generators to hold their backtracking path (DFS) and their pending walls
// (Kruskal).
//
// What:
//
//   - Stack[T] stores values of any type; the top is the most recently pushed value.
//   - Pop and Peek report ErrEmpty on an empty stack; PopOr and PeekOr return a
//     caller-supplied default instead.
//   - Shuffle permutes the stack in place (Fisher–Yates) with a caller-owned *rand.Rand.
//
// Complexity:
//
//   - Push, Pop, Peek, Size, IsEmpty: O(1) amortized.
//   - Shuffle: O(n) time, O(1) extra space.
//
// Concurrency:
//
//   - A Stack is not safe for concurrent use. Generators own their stacks exclusively.
//
// Determinism:
//
//   - Shuffle(nil) uses a fixed-seed stream, so identical inputs give identical orders.
//     Pass an explicit *rand.Rand to control the stream.
package stack
