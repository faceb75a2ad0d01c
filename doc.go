// Package lowindex enumerates, up to conjugacy, all subgroups of bounded
// index in a finitely presented group.
//
// Given a group G = ⟨x₁,…,x_r | R⟩, PermutationReps returns one transitive
// permutation representation ρ: G → S_d, d ≤ maxDegree, for each conjugacy
// class of subgroups of index d — the representation on the cosets of a
// canonical representative of the class. The engine is a variant of
// C. Sims's low-index subgroup procedure: it grows partial covering graphs
// one edge at a time, prunes branches on which some relator can provably
// no longer lift to a loop or whose completions can no longer be canonical
// under re-basing, and backtracks.
//
// The relators are passed as two lists. Short relators prune the search
// tree incrementally at every node and should be short (ideally no longer
// than maxDegree); long relators are only checked on complete graphs,
// which is the right place for relators much longer than maxDegree, whose
// partial lifts are rarely conclusive. The partition never changes the
// result, only the running time. By default the short relators are
// expanded by their cyclic shifts first (words.SpinShort), which further
// sharpens pruning; WithStrategy(StrategyNone) disables that.
//
// Structure:
//
//	words/   — letters, relators, word parsing, cyclic relator expansion
//	cover/   — partial covering graphs, lifting cursors, minimality test,
//	           the preallocated node arena
//	search/  — the single-threaded and the work-sharing multi-threaded
//	           depth-first engines
//
// The top of the module holds the user-facing API; cmd/lowindex wraps it
// in a command-line tool.
//
// Example:
//
//	// Subgroups of index ≤ 4 in the Klein four group.
//	reps, err := lowindex.PermutationReps(2,
//		[]words.Relator{{1, 1}, {2, 2}, {1, 2, -1, -2}}, nil, 4)
package lowindex
