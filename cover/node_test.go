package cover

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowindex/words"
)

// completeNode builds a complete covering graph of the given degree from
// one permutation per positive letter (perms[l][v] is the 0-based image of
// the 0-based vertex v). Tables are written directly; AddEdge's
// grow-by-one precondition does not apply to test fixtures.
func completeNode(t *testing.T, degree int, perms ...[]int) *Node {
	t.Helper()
	rank := len(perms)
	n := NewNode(rank, degree, 0)
	n.degree = degree
	for l, perm := range perms {
		require.Len(t, perm, degree)
		for v := 0; v < degree; v++ {
			w := perm[v]
			n.outgoing[v*rank+l] = Vertex(w + 1)
			n.incoming[w*rank+l] = Vertex(v + 1)
			n.numEdges++
		}
	}
	require.True(t, n.IsComplete())

	return n
}

// isTransitive reports whether the graph is connected, i.e. the
// permutations generate a transitive action.
func isTransitive(n *Node) bool {
	seen := make([]bool, n.degree+1)
	stack := []Vertex{1}
	seen[1] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for l := 1; l <= n.rank; l++ {
			for _, w := range [2]Vertex{n.ActBy(words.Letter(l), v), n.ActBy(words.Letter(-l), v)} {
				if w != 0 && !seen[w] {
					seen[w] = true
					count++
					stack = append(stack, w)
				}
			}
		}
	}

	return count == n.degree
}

func TestRelatorsLift_CompleteGraphs(t *testing.T) {
	// Cyclic shift on 3 vertices: x³ lifts, x does not.
	n := completeNode(t, 3, []int{1, 2, 0})
	require.True(t, n.RelatorsLift([]words.Relator{{1, 1, 1}}))
	require.False(t, n.RelatorsLift([]words.Relator{{1}}))
	require.True(t, n.RelatorsLift([]words.Relator{{1, 1, 1, 1, 1, 1}}))
	require.True(t, n.RelatorsLift(nil))
}

func TestRelatorsLift_IncompletePanics(t *testing.T) {
	n := NewNode(1, 2, 0)
	n.AddEdge(1, 1, 2)
	require.Panics(t, func() { n.RelatorsLift([]words.Relator{{1, 1}}) })
}

// Lifting x³ while the 3-cycle is built edge by edge: cursors park on
// missing edges, resume, and the final edge is deduced rather than added
// by the caller.
func TestRelatorsMayLift_Deduction(t *testing.T) {
	short := []words.Relator{{1, 1, 1}}
	n := NewNode(1, 3, len(short))
	n.degree = 3

	n.AddEdge(1, 1, 2)
	require.True(t, n.RelatorsMayLift(short, Slot{Letter: 1, Vertex: 1}, 2))

	n.AddEdge(1, 2, 3)
	// The walk from vertex 1 is now one letter short of closing; the
	// check must deduce 3 -1-> 1 on its own.
	require.True(t, n.RelatorsMayLift(short, Slot{Letter: 1, Vertex: 2}, 3))
	require.Equal(t, Vertex(1), n.ActBy(1, 3), "missing closing edge was not deduced")
	require.True(t, n.IsComplete())
	checkBijection(t, &n.Subgraph)
}

// A relator closing at the wrong vertex is fatal for the branch.
func TestRelatorsMayLift_WrongClosure(t *testing.T) {
	short := []words.Relator{{1, 1, 1}}
	n := NewNode(1, 2, len(short))
	n.degree = 2

	n.AddEdge(1, 1, 2)
	n.AddEdge(1, 2, 1)
	// x³ from 1 walks 1→2→1→2 ≠ 1.
	require.False(t, n.RelatorsMayLift(short, Slot{Letter: 1, Vertex: 2}, 1))
}

// A deduction hitting an occupied incoming slot is a collision and kills
// the branch.
func TestRelatorsMayLift_DeductionCollision(t *testing.T) {
	short := []words.Relator{{1, 1}}
	n := NewNode(1, 3, len(short))
	n.degree = 3

	n.AddEdge(1, 1, 2)
	// x² at base 1 wants the deduction 2 -1-> 1; occupy in[1,1] first.
	n.AddEdge(1, 3, 1)
	require.False(t, n.RelatorsMayLift(short, Slot{}, 0))
}

// Cursor indices never move backwards while edges are only added.
func TestRelatorsMayLift_CursorMonotone(t *testing.T) {
	short := []words.Relator{{1, 2, 1, 2}, {1, 1, 1}}
	n := NewNode(2, 3, len(short))

	prev := slices.Clone(n.liftIndices)
	step := func(l words.Letter, from, to Vertex) {
		t.Helper()
		n.AddEdge(l, from, to)
		n.RelatorsMayLift(short, Slot{Letter: l, Vertex: from}, to)
		for j := range n.liftIndices {
			if n.liftVertices[j] != finished {
				require.GreaterOrEqual(t, n.liftIndices[j], prev[j], "cursor %d moved backwards", j)
			}
		}
		prev = slices.Clone(n.liftIndices)
	}

	step(1, 1, 2)
	step(-1, 1, 3)
	step(2, 1, 1)
	step(2, 3, 2)
}

// After RelatorsMayLift returns with a parked cursor, the recorded prefix
// must actually lift to the recorded vertex and stall on the next letter.
func TestRelatorsMayLift_CursorConsistency(t *testing.T) {
	short := []words.Relator{{1, 2, -1, -2}}
	n := NewNode(2, 3, len(short))

	n.AddEdge(1, 1, 2)
	require.True(t, n.RelatorsMayLift(short, Slot{Letter: 1, Vertex: 1}, 2))

	for v := 1; v <= n.Degree(); v++ {
		j := (v - 1)
		vertex := n.liftVertices[j]
		if vertex == finished {
			continue
		}
		walk := Vertex(v)
		for i := uint16(0); i < n.liftIndices[j]; i++ {
			walk = n.ActBy(short[0][i], walk)
			require.NotZero(t, walk)
		}
		require.Equal(t, vertex, walk, "recorded lift vertex for base %d", v)
		require.Zero(t, n.ActBy(short[0][n.liftIndices[j]], walk),
			"cursor for base %d parked before an existing edge", v)
	}
}

// rawComplexity lists the raw slot values of a complete graph in the
// canonical slot order. This is the sequence the minimality order
// compares.
func rawComplexity(n *Node) []Vertex {
	var seq []Vertex
	tables := [2][]Vertex{n.outgoing, n.incoming}
	for v := 1; v <= n.degree; v++ {
		for l := 0; l < n.rank; l++ {
			for _, edges := range tables {
				seq = append(seq, edges[(v-1)*n.rank+l])
			}
		}
	}

	return seq
}

// rebasedComplexity returns the complexity sequence of the complete graph
// re-based at basepoint: scan slots in canonical order under the
// re-indexing — which numbers vertices in the order they are first
// reached — and list the re-indexed endpoint of every edge.
func rebasedComplexity(n *Node, basepoint Vertex) []Vertex {
	stdToAlt := make([]Vertex, n.degree+1)
	altToStd := make([]Vertex, n.degree+1)
	stdToAlt[basepoint] = 1
	altToStd[1] = basepoint
	maxIndex := Vertex(1)

	var seq []Vertex
	tables := [2][]Vertex{n.outgoing, n.incoming}
	for v := 1; v <= n.degree; v++ {
		for l := 0; l < n.rank; l++ {
			for _, edges := range tables {
				b := edges[(int(altToStd[v])-1)*n.rank+l]
				if stdToAlt[b] == 0 {
					maxIndex++
					stdToAlt[b] = maxIndex
					altToStd[maxIndex] = b
				}
				seq = append(seq, stdToAlt[b])
			}
		}
	}

	return seq
}

// firstReachedIdentity reports whether the graph's vertex numbering is
// already in first-reached slot order, as it is for every graph the
// search engines build.
func firstReachedIdentity(n *Node) bool {
	return slices.Equal(rebasedComplexity(n, 1), rawComplexity(n))
}

// MayBeMinimal on a complete transitive graph must agree exactly with the
// brute-force definition: false iff some re-basing yields a
// lexicographically smaller complexity than the current one. Exhausted
// over all pairs of permutations of degree 3.
func TestMayBeMinimal_ExhaustiveDegree3(t *testing.T) {
	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	checked := 0
	for _, pa := range perms {
		for _, pb := range perms {
			n := completeNode(t, 3, pa, pb)
			if !isTransitive(n) {
				continue
			}
			checked++

			std := rawComplexity(n)
			wantMinimal := true
			for b := 2; b <= n.degree; b++ {
				if slices.Compare(rebasedComplexity(n, Vertex(b)), std) < 0 {
					wantMinimal = false

					break
				}
			}
			require.Equal(t, wantMinimal, n.MayBeMinimal(),
				"perms %v / %v", pa, pb)
		}
	}
	require.NotZero(t, checked)
}

// On partial graphs the test must never reject a graph whose completion
// is canonical: build each canonical complete graph edge-by-edge in slot
// order and assert every prefix stays alive.
func TestMayBeMinimal_OneSidedOnPrefixes(t *testing.T) {
	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	for _, pa := range perms {
		for _, pb := range perms {
			full := completeNode(t, 3, pa, pb)
			if !isTransitive(full) || !firstReachedIdentity(full) || !full.MayBeMinimal() {
				continue
			}

			// Rebuild in FirstEmptySlot order.
			n := NewNode(2, 3, 0)
			n.degree = 3
			for {
				slot := n.FirstEmptySlot()
				if slot == (Slot{}) {
					break
				}
				target := full.ActBy(slot.Letter, slot.Vertex)
				n.AddEdge(slot.Letter, slot.Vertex, target)
				require.True(t, n.MayBeMinimal(),
					"canonical graph %v/%v pruned at %d edges", pa, pb, n.NumEdges())
			}
		}
	}
}
