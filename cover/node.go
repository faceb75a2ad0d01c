package cover

import (
	"github.com/katalvlaran/lowindex/words"
)

// Node is a search node: a Subgraph extended with one lifting cursor per
// (short relator, base vertex). Cursor j = n·maxDegree + (v-1) tracks the
// longest prefix of relator n that currently lifts starting at vertex v:
//
//   - liftVertices[j] is the vertex reached by that prefix, the finished
//     sentinel once the relator is known to close into a loop at v, or the
//     initial value v when no letter has been applied yet;
//   - liftIndices[j] is the position in the relator where lifting resumes.
//
// After an edge is added, a cursor can only advance if the vertex it is
// parked on is an endpoint of the new edge; RelatorsMayLift exploits this
// to touch almost no cursors per call.
type Node struct {
	Subgraph

	numRelators  int
	liftIndices  []uint16
	liftVertices []Vertex

	// frame is the depth of this node inside its Arena, -1 for heap nodes.
	frame int
}

// NewNode returns a heap-backed root node with one vertex and no edges,
// prepared to track numRelators short relators.
func NewNode(rank, maxDegree, numRelators int) *Node {
	n := &Node{
		Subgraph: Subgraph{
			rank:      rank,
			maxDegree: maxDegree,
			degree:    1,
		},
		numRelators:  numRelators,
		liftIndices:  make([]uint16, numRelators*maxDegree),
		liftVertices: make([]Vertex, numRelators*maxDegree),
		frame:        -1,
	}
	n.outgoing = make([]Vertex, rank*maxDegree)
	n.incoming = make([]Vertex, rank*maxDegree)
	n.resetCursors()

	return n
}

// resetCursors puts every cursor in the "no progress" state: the lift of
// vertex v by the empty word is v itself.
func (n *Node) resetCursors() {
	for r := 0; r < n.numRelators; r++ {
		for v := 0; v < n.maxDegree; v++ {
			n.liftVertices[r*n.maxDegree+v] = Vertex(v + 1)
		}
	}
}

// Clone returns a heap-backed deep copy of n.
func (n *Node) Clone() *Node {
	c := &Node{
		Subgraph: Subgraph{
			rank:      n.rank,
			maxDegree: n.maxDegree,
		},
		numRelators:  n.numRelators,
		liftIndices:  make([]uint16, len(n.liftIndices)),
		liftVertices: make([]Vertex, len(n.liftVertices)),
		frame:        -1,
	}
	c.outgoing = make([]Vertex, len(n.outgoing))
	c.incoming = make([]Vertex, len(n.incoming))
	c.copyFrom(n)

	return c
}

// copyFrom overwrites n's mutable state with m's. Both nodes must have
// been built for the same rank, maxDegree and relator count.
func (n *Node) copyFrom(m *Node) {
	n.degree = m.degree
	n.numEdges = m.numEdges
	n.slotIndex = m.slotIndex
	copy(n.outgoing, m.outgoing)
	copy(n.incoming, m.incoming)
	copy(n.liftIndices, m.liftIndices)
	copy(n.liftVertices, m.liftVertices)
}

// RelatorsMayLift reports whether every relator can still lift to a loop
// at every vertex of the current graph, advancing the cursors in place and
// adding forced edges (deductions) where a relator is one letter short of
// closing. A false result is final: no extension of the graph makes all
// relators lift.
//
// When called right after AddEdge(slot.Letter, slot.Vertex, target), pass
// that slot and target: cursors parked on a vertex that is not an endpoint
// of the new edge cannot have changed and are skipped. A zero target
// disables the skip and re-examines every cursor.
func (n *Node) RelatorsMayLift(relators []words.Relator, slot Slot, target Vertex) bool {
	for r := range relators {
		for v := 0; v < n.degree; v++ {
			end := n.liftVertices[r*n.maxDegree+v]
			if target != 0 && end != slot.Vertex && end != target {
				continue
			}
			if !n.relatorMayLift(relators[r], r, Vertex(v+1)) {
				return false
			}
		}
	}

	return true
}

// relatorMayLift resumes lifting relator r at base vertex v from its
// cursor.
func (n *Node) relatorMayLift(relator words.Relator, r int, v Vertex) bool {
	j := r*n.maxDegree + int(v) - 1

	vertex := n.liftVertices[j]
	if vertex == finished {
		return true
	}

	var next Vertex
	for i := n.liftIndices[j]; ; i++ {
		next = n.ActBy(relator[i], vertex)
		if int(i) == len(relator)-1 {
			break
		}
		if next == 0 {
			// The edge for the next letter is missing. Park the cursor and
			// wait for a later AddEdge to touch this vertex.
			n.liftVertices[j] = vertex
			n.liftIndices[j] = i

			return true
		}
		vertex = next
	}

	if next == v {
		n.liftVertices[j] = finished

		return true
	}

	if next == 0 {
		// Every letter but the last lifted. The relator can only close into
		// a loop if the missing edge joins the cursor vertex back to v; the
		// slot at v may already be taken, hence the verified add.
		if n.VerifiedAddEdge(relator[len(relator)-1], vertex, v) {
			n.liftVertices[j] = finished

			return true
		}
	}

	return false
}

// RelatorsLift walks every relator from every vertex of a complete graph
// and reports whether each walk returns to its base vertex. It panics if
// the graph has a missing edge.
func (n *Node) RelatorsLift(relators []words.Relator) bool {
	for _, relator := range relators {
		for v := 1; v <= n.degree; v++ {
			vertex := Vertex(v)
			for _, l := range relator {
				vertex = n.ActBy(l, vertex)
				if vertex == 0 {
					panic("cover: RelatorsLift on a graph that is not a covering")
				}
			}
			if vertex != Vertex(v) {
				return false
			}
		}
	}

	return true
}

// MayBeMinimal reports whether some completion of the graph can still be
// the minimal representative of its conjugacy class under re-basing.
//
// Complete covering graphs are ordered by their complexity: scan slots in
// the canonical order (vertices ascending, signed labels 1, -1, 2, -2,
// ...) and list the vertex at the other end of each slot's edge; compare
// these sequences lexicographically. Moving the basepoint to another
// vertex b re-indexes the vertices in the order they are first reached by
// the same slot scan. The method compares, for every candidate basepoint,
// the re-based complexity prefix against the standard one; false means
// some basepoint is already strictly smaller, so no completion of this
// graph is canonical and the search discards it.
//
// The test is sound only when edges were added in FirstEmptySlot order.
func (n *Node) MayBeMinimal() bool {
	for b := 2; b <= n.degree; b++ {
		if !n.mayBeMinimal(Vertex(b)) {
			return false
		}
	}

	return true
}

// mayBeMinimal compares the standard indexing against the one induced by
// re-basing at basepoint. Entry 0 of the maps is unused.
func (n *Node) mayBeMinimal(basepoint Vertex) bool {
	var stdToAlt, altToStd [int(finished) + 1]Vertex

	stdToAlt[basepoint] = 1
	altToStd[1] = basepoint
	maxIndex := Vertex(1)

	tables := [2][]Vertex{n.outgoing, n.incoming}
	for slotVertex := 1; slotVertex <= n.degree; slotVertex++ {
		for l := 0; l < n.rank; l++ {
			for _, edges := range tables {
				alt := altToStd[slotVertex]
				if alt == 0 {
					// The re-based indexing has not reached this many
					// vertices; the comparison cannot be decided yet.
					return true
				}
				a := edges[(slotVertex-1)*n.rank+l]
				b := edges[(int(alt)-1)*n.rank+l]
				if a == 0 || b == 0 {
					return true
				}
				c := stdToAlt[b]
				if c == 0 {
					// First time the re-based scan reaches vertex b: it
					// receives the next free index.
					maxIndex++
					c = maxIndex
					stdToAlt[b] = c
					altToStd[c] = b
				}
				if c < a {
					return false
				}
				if c > a {
					return true
				}
			}
		}
	}

	return true
}
