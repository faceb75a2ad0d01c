// Package search implements the depth-first enumeration of complete
// covering graphs over partial graphs from package cover: a variant of
// Sims's low-index subgroup procedure.
//
// Both engines receive a rank, a maximum degree and a partition of the
// relators into short and long. Starting from the one-vertex graph with no
// edges, each step locates the first empty slot, branches over the
// permitted target vertices (existing vertices plus at most one new one),
// and prunes a branch as soon as the short relators can no longer all lift
// (cover.Node.RelatorsMayLift) or no completion can be canonical
// (cover.Node.MayBeMinimal). Complete graphs that also pass the long
// relators are collected.
//
//   - Tree is the single-threaded engine. Its output order — depth-first,
//     branching over target vertices in ascending order — is deterministic
//     and is the reference order.
//   - ParallelTree runs a fixed number of workers over a shared queue of
//     work records and dynamically splits the search tree: a worker that
//     drains the queue raises a stop flag, exactly one busy worker consumes
//     it, converts its unexplored branches into new work records and
//     requeues them. The final output lists the same graphs in the same
//     order as Tree, for any worker count.
//
// Frames of the recursion live in a per-worker cover.Arena; the engines do
// not allocate inside the hot path except to clone an emitted graph and,
// in ParallelTree, to clone each branch handed off as a new work record.
package search
