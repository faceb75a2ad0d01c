package lowindex

import (
	"errors"

	"github.com/katalvlaran/lowindex/cover"
)

// PermRep is a permutation representation: one permutation of
// {0, ..., d-1} per generator, the k-th listing the images
// [σₖ(0), ..., σₖ(d-1)].
type PermRep [][]cover.Vertex

// MaxRankTimesDegree bounds rank·maxDegree. The bound keeps the search
// frames — whose size grows with rank·maxDegree, as does the recursion
// depth — within a modest, predictable memory envelope.
const MaxRankTimesDegree = 1000

var (
	// ErrRankOutOfRange indicates a rank below 1.
	ErrRankOutOfRange = errors.New("lowindex: rank must be at least 1")

	// ErrDegreeOutOfRange indicates a maxDegree outside [1, cover.MaxDegree].
	ErrDegreeOutOfRange = errors.New("lowindex: max degree out of range")

	// ErrTooLarge indicates rank·maxDegree beyond MaxRankTimesDegree.
	ErrTooLarge = errors.New("lowindex: rank times max degree too large")

	// ErrEmptyRelator indicates a relator with no letters.
	ErrEmptyRelator = errors.New("lowindex: relator is empty")

	// ErrRelatorTooLong indicates a relator of length ≥ words.MaxRelatorLen.
	ErrRelatorTooLong = errors.New("lowindex: relator too long")

	// ErrLetterOutOfRange indicates a relator letter that is zero or has
	// absolute value beyond the rank.
	ErrLetterOutOfRange = errors.New("lowindex: relator letter out of range")

	// ErrNumThreads indicates a negative thread count.
	ErrNumThreads = errors.New("lowindex: number of threads must not be negative")
)

// Strategy selects how the short relators are preprocessed before the
// search.
type Strategy int

const (
	// StrategySpinShort expands the short relators by their cyclic shifts
	// (words.SpinShort). The default; prunes considerably harder.
	StrategySpinShort Strategy = iota

	// StrategyNone passes the short relators through unchanged.
	StrategyNone
)

// Option configures PermutationReps. Use with
// PermutationReps(rank, short, long, maxDegree, opts...).
type Option func(*Options)

// Options holds the configurable parameters of an enumeration.
type Options struct {
	// NumThreads is the number of worker goroutines. 0 (the default) uses
	// one worker per CPU; 1 forces the deterministic single-threaded
	// engine; values ≥ 2 select the work-sharing parallel engine.
	NumThreads int

	// Strategy is the short-relator preprocessing strategy.
	Strategy Strategy
}

// DefaultOptions returns the defaults: automatic thread count and the
// spin-short strategy.
func DefaultOptions() Options {
	return Options{
		NumThreads: 0,
		Strategy:   StrategySpinShort,
	}
}

// WithNumThreads returns an Option that fixes the worker count.
func WithNumThreads(n int) Option {
	return func(o *Options) {
		o.NumThreads = n
	}
}

// WithStrategy returns an Option that selects the short-relator
// preprocessing strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}
