package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

var (
	// ErrInvalidDimensions indicates a real grid too small to hold the internal grid the algorithm needs.
	ErrInvalidDimensions = errors.New("maze: invalid grid dimensions")

	// ErrInvalidSteps indicates a non-positive OriginShift step budget.
	ErrInvalidSteps = errors.New("maze: step budget must be positive")

	// ErrAlreadyInitialized indicates Init was called on a started generator.
	ErrAlreadyInitialized = errors.New("maze: generator already initialized")

	// ErrExhausted indicates Next was called after the stream ended.
	ErrExhausted = errors.New("maze: generator exhausted")

	// ErrInvariant indicates an internal consistency fault during generation.
	ErrInvariant = errors.New("maze: internal invariant violated")

	// ErrUnknownKind indicates an unrecognized algorithm name.
	ErrUnknownKind = errors.New("maze: unknown algorithm")
)

// MinSize is the smallest real width or height accepted by the constructors.
const MinSize = 3

// DefaultStepFactor multiplies width×height to size the OriginShift budget in New.
const DefaultStepFactor = 10

// defaultSeed replaces seed 0.
const defaultSeed int64 = 1

// Kind names a generation algorithm.
type Kind string

const (
	// KindDFS selects randomized depth-first backtracking.
	KindDFS Kind = "dfs"
	// KindKruskal selects randomized Kruskal.
	KindKruskal Kind = "kruskal"
	// KindOriginShift selects origin-shift tree rotation.
	KindOriginShift Kind = "origin-shift"
)

// Kinds lists every supported algorithm.
func Kinds() []Kind {
	return []Kind{KindDFS, KindKruskal, KindOriginShift}
}

// ParseKind resolves an algorithm name, case-insensitively, with a few aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "backtracking", "backtracker":
		return KindDFS, nil
	case "kruskal":
		return KindKruskal, nil
	case "origin-shift", "originshift", "origin_shift", "origin":
		return KindOriginShift, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Role is the meaning of a generator-local State, for renderers.
type Role uint8

const (
	// RoleUnset marks a cell never written.
	RoleUnset Role = iota
	// RoleWall marks a closed cell.
	RoleWall
	// RolePending marks passage space not yet reached by the algorithm.
	RolePending
	// RoleVisited marks an open passage.
	RoleVisited
	// RoleSelected marks the algorithm's cursor.
	RoleSelected
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleWall:
		return "wall"
	case RolePending:
		return "pending"
	case RoleVisited:
		return "visited"
	case RoleSelected:
		return "selected"
	default:
		return "unset"
	}
}

// Options configures a Generator.
type Options struct {
	// Seed seeds the random stream; 0 selects a fixed default. Ignored when Rand is set.
	Seed int64

	// Rand, if non-nil, is used verbatim. It must not be shared with other goroutines.
	Rand *rand.Rand

	// Steps is the OriginShift budget used by New. 0 means StepFactor×width×height.
	Steps int

	// StepFactor sizes the OriginShift budget when Steps is 0.
	StepFactor int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with seed 0 and DefaultStepFactor.
func DefaultOptions() Options {
	return Options{
		Seed:       0,
		Rand:       nil,
		Steps:      0,
		StepFactor: DefaultStepFactor,
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand installs a caller-owned random stream. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSteps sets the OriginShift step budget used by New.
func WithSteps(n int) Option {
	return func(o *Options) {
		o.Steps = n
	}
}

// WithStepFactor sets the multiplier used when no explicit step budget is given.
// Values below 1 are ignored.
func WithStepFactor(k int) Option {
	return func(o *Options) {
		if k >= 1 {
			o.StepFactor = k
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// rng returns the configured stream, seeding a new one when needed.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	s := o.Seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// validateSize checks the shared lower bound on real dimensions.
func validateSize(width, height int) error {
	if width < MinSize || height < MinSize {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, width, height, MinSize, MinSize)
	}
	return nil
}

// workProgress returns 1 − left/total, or 1 when there is no work at all.
func workProgress(left, total int) float64 {
	if total <= 0 {
		return 1
	}
	return 1 - float64(left)/float64(total)
}

// invariant wraps a formatted message in ErrInvariant.
func invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// roleTable maps generator-local states to roles.
type roleTable map[grid.State]Role
