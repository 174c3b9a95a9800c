package stack_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/stack"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := stack.New[int](4)
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	assert.Equal(t, 3, s.Size())

	for want := 3; want >= 1; want-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_EmptyErrors(t *testing.T) {
	var s stack.Stack[string]

	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmpty)
	_, err = s.Peek()
	assert.ErrorIs(t, err, stack.ErrEmpty)

	assert.Equal(t, "fallback", s.PopOr("fallback"))
	assert.Equal(t, "fallback", s.PeekOr("fallback"))
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := stack.New[int](0)
	s.Push(7)

	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, s.PeekOr(-1))
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 7, s.PopOr(-1))
	assert.Equal(t, -1, s.PopOr(-1))
}

func TestStack_ValuesIsCopy(t *testing.T) {
	s := stack.New[int](3)
	s.Push(1)
	s.Push(2)

	vals := s.Values()
	assert.Equal(t, []int{1, 2}, vals)
	vals[0] = 99
	assert.Equal(t, []int{1, 2}, s.Values())
}

// TestStack_ShufflePermutes checks that Shuffle keeps the same multiset of values.
func TestStack_ShufflePermutes(t *testing.T) {
	s := stack.New[int](50)
	for i := 0; i < 50; i++ {
		s.Push(i)
	}
	s.Shuffle(rand.New(rand.NewSource(42)))

	got := s.Values()
	require.Len(t, got, 50)
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
	assert.NotEqual(t, sorted, got, "a 50-element shuffle should move something")
}

func TestStack_ShuffleSeedDeterminism(t *testing.T) {
	build := func(seed int64) []int {
		s := stack.New[int](20)
		for i := 0; i < 20; i++ {
			s.Push(i)
		}
		s.Shuffle(rand.New(rand.NewSource(seed)))
		return s.Values()
	}
	assert.Equal(t, build(7), build(7))

	a := stack.New[int](0)
	b := stack.New[int](0)
	for i := 0; i < 10; i++ {
		a.Push(i)
		b.Push(i)
	}
	a.Shuffle(nil)
	b.Shuffle(nil)
	assert.Equal(t, a.Values(), b.Values())
}

func TestStack_ShuffleSmall(t *testing.T) {
	s := stack.New[int](1)
	s.Shuffle(nil)
	assert.True(t, s.IsEmpty())
	s.Push(5)
	s.Shuffle(nil)
	assert.Equal(t, []int{5}, s.Values())
}
