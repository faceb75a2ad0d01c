package lowindex

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/lowindex/cover"
	"github.com/katalvlaran/lowindex/search"
	"github.com/katalvlaran/lowindex/words"
)

// PermutationReps enumerates the conjugacy classes of subgroups of index
// at most maxDegree in the group ⟨x₁,…,x_rank | short ∪ long⟩ and returns
// one permutation representation per class. Every relator acts as the
// identity under every returned representation, and each representation
// is transitive on {0, ..., d-1}.
//
// The short/long partition affects only performance; see the package
// documentation. The result order is deterministic and identical for
// every thread count.
func PermutationReps(rank int, short, long []words.Relator, maxDegree int, opts ...Option) ([]PermRep, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if err := validate(rank, maxDegree, short, long, o); err != nil {
		return nil, err
	}

	if o.Strategy == StrategySpinShort {
		short = words.SpinShort(short, maxDegree)
	}

	numThreads := o.NumThreads
	if numThreads == 0 {
		numThreads = runtime.NumCPU()
	}

	var nodes []*cover.Node
	if numThreads > 1 {
		nodes = search.NewParallelTree(rank, maxDegree, short, long, numThreads).List()
	} else {
		nodes = search.NewTree(rank, maxDegree, short, long).List()
	}

	result := make([]PermRep, len(nodes))
	for i, n := range nodes {
		result[i] = n.PermutationRep()
	}

	return result, nil
}

// PermutationRepsWords is PermutationReps for textual relators in the
// encodings accepted by words.Parse.
func PermutationRepsWords(rank int, short, long []string, maxDegree int, opts ...Option) ([]PermRep, error) {
	parse := func(ws []string) ([]words.Relator, error) {
		relators := make([]words.Relator, len(ws))
		for i, w := range ws {
			r, err := words.Parse(rank, w)
			if err != nil {
				return nil, err
			}
			relators[i] = r
		}

		return relators, nil
	}

	shortRelators, err := parse(short)
	if err != nil {
		return nil, err
	}
	longRelators, err := parse(long)
	if err != nil {
		return nil, err
	}

	return PermutationReps(rank, shortRelators, longRelators, maxDegree, opts...)
}

// validate guards every engine precondition at the API boundary; beyond
// this point a violated invariant is a bug, not an input error.
func validate(rank, maxDegree int, short, long []words.Relator, o Options) error {
	if rank < 1 {
		return fmt.Errorf("%w: got %d", ErrRankOutOfRange, rank)
	}
	if maxDegree < 1 || maxDegree > cover.MaxDegree {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrDegreeOutOfRange, maxDegree, cover.MaxDegree)
	}
	if rank*maxDegree > MaxRankTimesDegree {
		return fmt.Errorf("%w: %d·%d > %d", ErrTooLarge, rank, maxDegree, MaxRankTimesDegree)
	}
	if o.NumThreads < 0 {
		return fmt.Errorf("%w: got %d", ErrNumThreads, o.NumThreads)
	}
	for _, relators := range [2][]words.Relator{short, long} {
		for _, r := range relators {
			if len(r) == 0 {
				return ErrEmptyRelator
			}
			if len(r) >= words.MaxRelatorLen {
				return fmt.Errorf("%w: length %d", ErrRelatorTooLong, len(r))
			}
			for _, l := range r {
				if l == 0 || l < -words.Letter(rank) || l > words.Letter(rank) {
					return fmt.Errorf("%w: letter %d in rank-%d group", ErrLetterOutOfRange, l, rank)
				}
			}
		}
	}

	return nil
}
