// Package cover implements the partial covering graphs at the heart of the
// low-index subgroup search, together with the per-node acceleration
// structures the search engines in package search recurse over.
//
// A covering graph over the free group of rank R is a directed multigraph
// with vertices 1..degree (degree ≤ MaxDegree) and edges labeled by letters
// 1..R, such that for each vertex and label there is at most one outgoing
// and at most one incoming edge with that label. The graph is complete when
// every such edge exists; a complete graph is exactly a permutation
// representation of the free group, i.e. a coset table of a subgroup of
// index degree.
//
// Three layers build on each other:
//
//   - Subgraph: the dense bidirectional edge store with in-place edge
//     addition, signed-letter action, and the cached first-empty-slot scan
//     whose order defines the canonical form.
//   - Node: a Subgraph plus one lifting cursor per (short relator, base
//     vertex), giving the near-constant-cost incremental check that every
//     short relator can still lift to a loop everywhere (RelatorsMayLift,
//     including forced-edge deductions), the complete-graph relator check
//     (RelatorsLift), and the canonical-form pruning test (MayBeMinimal).
//   - Arena: a preallocated frame store sized to the worst-case recursion
//     depth. Each DFS frame is a bulk copy of its parent into the next
//     frame; no allocation happens inside the recursion.
//
// Vertex 0 is reserved to mean "absent"; the maximum Vertex value is the
// FINISHED sentinel of the lifting cursors. Hence MaxDegree = 254.
//
// Complexity:
//
//   - AddEdge, ActBy: O(1).
//   - FirstEmptySlot: amortized O(1) per call within one node (monotone
//     cached scan index).
//   - RelatorsMayLift after one added edge: one comparison per cursor
//     (|relators|·degree), and a resumed walk only for the cursors parked
//     at an endpoint of that edge.
//   - MayBeMinimal: O(degree² · rank) worst case, usually far less.
//
// All precondition violations in this package are programming errors of the
// caller and panic; they are never returned as errors.
package cover
