// Package pipeline wraps a grid.Producer in transform stages that are
// themselves producers. Batch order and the end/error signal pass through
// unchanged. Map, Tap and Recolor pull their source exactly once per pull they
// receive; Filter pulls again past batches it empties, so like a generator it
// never emits an empty batch.
package pipeline

import (
	"errors"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrNilSource indicates a stage was built without a source producer.
var ErrNilSource = errors.New("pipeline: nil source producer")

// ErrNilTransform indicates a stage was built with a nil transform or predicate.
var ErrNilTransform = errors.New("pipeline: nil transform")

// TransformFunc maps a batch to a new batch. args are the extra arguments
// given when the stage was built.
type TransformFunc func(b grid.Batch, args ...any) grid.Batch

// Stage builds a producer on top of another.
type Stage func(grid.Producer) grid.Producer

// stage pulls src and applies fn to each live batch.
type stage struct {
	src  grid.Producer
	fn   TransformFunc
	args []any
}

func (s *stage) Next() (grid.Batch, bool, error) {
	if s.src == nil {
		return nil, false, ErrNilSource
	}
	if s.fn == nil {
		return nil, false, ErrNilTransform
	}
	b, ok, err := s.src.Next()
	if err != nil || !ok {
		return nil, ok, err
	}
	return s.fn(b, s.args...), true, nil
}

// Map returns a producer that applies fn, with args, to every batch of src.
func Map(src grid.Producer, fn TransformFunc, args ...any) grid.Producer {
	return &stage{src: src, fn: fn, args: args}
}

// Tap returns a producer that calls fn with every batch of src and passes it on unchanged.
func Tap(src grid.Producer, fn func(grid.Batch)) grid.Producer {
	return Map(src, func(b grid.Batch, _ ...any) grid.Batch {
		fn(b)
		return b
	})
}

// Filter returns a producer that keeps only the updates for which keep is true.
// A batch left empty is skipped and the next source batch is pulled in its
// place, so every emitted batch still carries the source's progress.
func Filter(src grid.Producer, keep func(grid.Update) bool) grid.Producer {
	return &filter{src: src, keep: keep}
}

type filter struct {
	src  grid.Producer
	keep func(grid.Update) bool
}

func (f *filter) Next() (grid.Batch, bool, error) {
	if f.src == nil {
		return nil, false, ErrNilSource
	}
	if f.keep == nil {
		return nil, false, ErrNilTransform
	}
	for {
		b, ok, err := f.src.Next()
		if err != nil || !ok {
			return nil, ok, err
		}
		out := make(grid.Batch, 0, len(b))
		for _, u := range b {
			if f.keep(u) {
				out = append(out, u)
			}
		}
		if len(out) > 0 {
			return out, true, nil
		}
	}
}

// Recolor returns a producer that rewrites states through table; states
// missing from table pass through.
func Recolor(src grid.Producer, table map[grid.State]grid.State) grid.Producer {
	return Map(src, func(b grid.Batch, _ ...any) grid.Batch {
		out := make(grid.Batch, len(b))
		for i, u := range b {
			if s, ok := table[u.State]; ok {
				u.State = s
			}
			out[i] = u
		}
		return out
	})
}

// Chain applies stages in order: Chain(src, a, b) == b(a(src)).
func Chain(src grid.Producer, stages ...Stage) grid.Producer {
	p := src
	for _, st := range stages {
		p = st(p)
	}
	return p
}

// Collect drains p and returns every batch in order, stopping at the first error.
func Collect(p grid.Producer) ([]grid.Batch, error) {
	if p == nil {
		return nil, ErrNilSource
	}
	var out []grid.Batch
	for {
		b, ok, err := p.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, b)
	}
}
