package stack

import (
	"errors"
	"math/rand"
)

// ErrEmpty is returned by Pop and Peek when the stack holds no values.
var ErrEmpty = errors.New("stack: empty stack")

// defaultShuffleSeed seeds the stream used by Shuffle(nil).
const defaultShuffleSeed int64 = 1

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity values.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value, or ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	v := s.items[n-1]
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]

	return v, nil
}

// PopOr removes and returns the top value, or def when the stack is empty.
func (s *Stack[T]) PopOr(def T) T {
	v, err := s.Pop()
	if err != nil {
		return def
	}
	return v
}

// Peek returns the top value without removing it, or ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[n-1], nil
}

// PeekOr returns the top value, or def when the stack is empty.
func (s *Stack[T]) PeekOr(def T) T {
	if len(s.items) == 0 {
		return def
	}
	return s.items[len(s.items)-1]
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Size returns the number of values on the stack.
func (s *Stack[T]) Size() int { return len(s.items) }

// Values returns a copy of the stack contents from bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Shuffle permutes the stack uniformly in place.
// It walks from the last index down to index 1, swapping each slot with a
// uniformly chosen index in [0, i]. A nil rng uses a fixed-seed stream.
//
// Complexity: O(n) time, O(1) extra space.
func (s *Stack[T]) Shuffle(rng *rand.Rand) {
	n := len(s.items)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultShuffleSeed))
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
}
