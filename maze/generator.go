package maze

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
)

// algorithm is the capability every generation strategy implements.
// The set is closed: dfs, kruskal and originShift.
type algorithm interface {
	// initialize allocates and populates the algorithm's structures.
	initialize(rng *rand.Rand) error
	// opening returns the batches emitted before the first step, in order.
	opening() []grid.Batch
	// remaining returns the outstanding work; the step loop runs while it is positive.
	remaining() int
	// step runs one complete logical step and returns its batch.
	step() (grid.Batch, error)
	// closing returns the terminal cleanup batch, possibly empty.
	closing() grid.Batch
	// progress returns the completion estimate for the current state.
	progress() float64
	// roles describes the algorithm's states.
	roles() roleTable
}

type phase uint8

const (
	phaseNew phase = iota
	phaseOpening
	phaseRunning
	phaseClosed
	phaseEnded
	phaseFailed
)

// Generator drives one algorithm run and hands out its batches on demand.
// It implements grid.Producer.
type Generator struct {
	kind    Kind
	width   int
	height  int
	rng     *rand.Rand
	algo    algorithm
	phase   phase
	pending []grid.Batch
	err     error
	steps   int
}

var _ grid.Producer = (*Generator)(nil)

func newGenerator(kind Kind, width, height int, opts Options, algo algorithm) *Generator {
	return &Generator{
		kind:   kind,
		width:  width,
		height: height,
		rng:    opts.rng(),
		algo:   algo,
		phase:  phaseNew,
	}
}

// New builds a generator of the given kind. OriginShift takes its budget from
// WithSteps, or StepFactor×width×height when none is given.
func New(kind Kind, width, height int, opts ...Option) (*Generator, error) {
	o := buildOptions(opts)
	switch kind {
	case KindDFS:
		return NewDFS(width, height, opts...)
	case KindKruskal:
		return NewKruskal(width, height, opts...)
	case KindOriginShift:
		steps := o.Steps
		if steps == 0 {
			steps = o.StepFactor * width * height
		}
		return NewOriginShift(width, height, steps, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// Steps returns the origin-shift step budget g runs, after StepFactor sizing.
// It is 0 for algorithms without a budget.
func (g *Generator) Steps() int { return g.steps }

// Kind returns the algorithm driven by g.
func (g *Generator) Kind() Kind { return g.kind }

// Width returns the real grid width.
func (g *Generator) Width() int { return g.width }

// Height returns the real grid height.
func (g *Generator) Height() int { return g.height }

// Internal returns the internal (passages only) space.
func (g *Generator) Internal() grid.Space { return grid.InternalSpace(g.width, g.height) }

// Remaining returns the outstanding work counter; 0 before initialization.
func (g *Generator) Remaining() int {
	if g.phase == phaseNew {
		return 0
	}
	return g.algo.remaining()
}

// Progress returns the current completion estimate; 0 before initialization.
func (g *Generator) Progress() float64 {
	if g.phase == phaseNew {
		return 0
	}
	return g.algo.progress()
}

// Started reports whether the generator has been initialized.
func (g *Generator) Started() bool { return g.phase != phaseNew }

// Done reports whether the stream has ended, normally or not.
func (g *Generator) Done() bool { return g.phase == phaseEnded || g.phase == phaseFailed }

// Err returns the failure that terminated the generator, if any.
func (g *Generator) Err() error { return g.err }

// Role returns the meaning of state s for this generator's algorithm.
func (g *Generator) Role(s grid.State) Role {
	if r, ok := g.algo.roles()[s]; ok {
		return r
	}
	return RoleUnset
}

// Init initializes the generator eagerly. Next does this lazily on first use.
func (g *Generator) Init() error {
	if g.phase != phaseNew {
		return ErrAlreadyInitialized
	}
	return g.init()
}

func (g *Generator) init() error {
	if err := g.algo.initialize(g.rng); err != nil {
		return g.fail(err)
	}
	for _, b := range g.algo.opening() {
		if len(b) > 0 {
			g.pending = append(g.pending, b)
		}
	}
	g.phase = phaseOpening
	return nil
}

func (g *Generator) fail(err error) error {
	g.err = err
	g.phase = phaseFailed
	g.pending = nil
	return err
}

// Next returns the next batch.
//
//   - (batch, true, nil): a batch to apply before pulling again.
//   - (nil, false, nil):  the stream ended normally (returned once).
//   - (nil, false, err):  ErrExhausted after the end, or the failure that stopped generation.
func (g *Generator) Next() (grid.Batch, bool, error) {
	for {
		switch g.phase {
		case phaseNew:
			if err := g.init(); err != nil {
				return nil, false, err
			}
		case phaseOpening:
			if len(g.pending) > 0 {
				b := g.pending[0]
				g.pending = g.pending[1:]
				return b, true, nil
			}
			g.phase = phaseRunning
		case phaseRunning:
			if g.algo.remaining() > 0 {
				b, err := g.safeStep()
				if err != nil {
					return nil, false, g.fail(err)
				}
				return b, true, nil
			}
			g.phase = phaseClosed
			if b := g.algo.closing(); len(b) > 0 {
				return b, true, nil
			}
		case phaseClosed:
			g.phase = phaseEnded
			return nil, false, nil
		case phaseEnded:
			return nil, false, ErrExhausted
		default:
			return nil, false, g.err
		}
	}
}

// safeStep runs one step, converting a panic into an invariant failure.
func (g *Generator) safeStep() (b grid.Batch, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, invariant("%s step panicked: %v", g.kind, r)
		}
	}()
	return g.algo.step()
}

// All returns an iterator over the remaining batches. Iteration stops at the
// end of the stream; a failure is yielded once as the final pair.
func (g *Generator) All() iter.Seq2[grid.Batch, error] {
	return func(yield func(grid.Batch, error) bool) {
		for {
			b, ok, err := g.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}
