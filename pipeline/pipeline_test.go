package pipeline_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/pipeline"
)

func fixed(batches ...grid.Batch) grid.Producer {
	i := 0
	return grid.ProducerFunc(func() (grid.Batch, bool, error) {
		if i >= len(batches) {
			return nil, false, nil
		}
		i++
		return batches[i-1], true, nil
	})
}

func TestMap_PassesArgs(t *testing.T) {
	src := fixed(grid.Batch{{Row: 1, Col: 1, State: 1}}, grid.Batch{{Row: 2, Col: 2, State: 2}})
	shift := func(b grid.Batch, args ...any) grid.Batch {
		dr := args[0].(int)
		out := make(grid.Batch, len(b))
		for i, u := range b {
			u.Row += dr
			out[i] = u
		}
		return out
	}
	got, err := pipeline.Collect(pipeline.Map(src, shift, 10))
	require.NoError(t, err)
	assert.Equal(t, []grid.Batch{
		{{Row: 11, Col: 1, State: 1}},
		{{Row: 12, Col: 2, State: 2}},
	}, got)
}

func TestChain_OrderAndErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	src := grid.ProducerFunc(func() (grid.Batch, bool, error) {
		calls++
		if calls == 3 {
			return nil, false, boom
		}
		return grid.Batch{{Row: 1, Col: calls, State: 1}, {Row: 1, Col: calls, State: 2}}, true, nil
	})

	var tapped []int
	p := pipeline.Chain(src,
		func(p grid.Producer) grid.Producer {
			return pipeline.Filter(p, func(u grid.Update) bool { return u.State == 2 })
		},
		func(p grid.Producer) grid.Producer {
			return pipeline.Recolor(p, map[grid.State]grid.State{2: 9})
		},
		func(p grid.Producer) grid.Producer {
			return pipeline.Tap(p, func(b grid.Batch) { tapped = append(tapped, b[0].Col) })
		},
	)
	got, err := pipeline.Collect(p)
	assert.ErrorIs(t, err, boom)
	require.Len(t, got, 2)
	assert.Equal(t, grid.Batch{{Row: 1, Col: 1, State: 9}}, got[0])
	assert.Equal(t, []int{1, 2}, tapped)
}

func TestStage_NilSource(t *testing.T) {
	_, _, err := pipeline.Map(nil, func(b grid.Batch, _ ...any) grid.Batch { return b }).Next()
	assert.ErrorIs(t, err, pipeline.ErrNilSource)
	_, err = pipeline.Collect(nil)
	assert.ErrorIs(t, err, pipeline.ErrNilSource)
}

// TestStage_KeepsGeneratorContract wraps a real generator and checks the end
// signal and ErrExhausted still come through.
func TestStage_KeepsGeneratorContract(t *testing.T) {
	gen, err := maze.NewKruskal(9, 7, maze.WithSeed(3))
	require.NoError(t, err)
	p := pipeline.Tap(gen, func(grid.Batch) {})

	batches, err := pipeline.Collect(p)
	require.NoError(t, err)
	assert.NotEmpty(t, batches)

	_, ok, err := p.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, err, maze.ErrExhausted)
}

func TestMap_NilTransform(t *testing.T) {
	src := fixed(grid.Batch{{Row: 1, Col: 1, State: 1}})
	_, ok, err := pipeline.Map(src, nil).Next()
	assert.False(t, ok)
	assert.ErrorIs(t, err, pipeline.ErrNilTransform)

	_, err = pipeline.Collect(pipeline.Filter(src, nil))
	assert.ErrorIs(t, err, pipeline.ErrNilTransform)
	_, err = pipeline.Collect(pipeline.Filter(nil, func(grid.Update) bool { return true }))
	assert.ErrorIs(t, err, pipeline.ErrNilSource)
}

func TestFilter_SkipsEmptiedBatches(t *testing.T) {
	src := fixed(
		grid.Batch{{Row: 1, Col: 1, State: 1, Progress: 0.25}},
		grid.Batch{{Row: 1, Col: 2, State: 2, Progress: 0.5}},
		grid.Batch{{Row: 1, Col: 3, State: 2, Progress: 0.75}, {Row: 2, Col: 1, State: 1, Progress: 0.75}},
		grid.Batch{{Row: 2, Col: 2, State: 2, Progress: 1}},
	)
	got, err := pipeline.Collect(pipeline.Filter(src, func(u grid.Update) bool { return u.State == 1 }))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0.25, got[0].Progress())
	assert.Equal(t, grid.Batch{{Row: 2, Col: 1, State: 1, Progress: 0.75}}, got[1])
	for _, b := range got {
		assert.GreaterOrEqual(t, b.Progress(), 0.0)
	}
}
