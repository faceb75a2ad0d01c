package cover

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lowindex/words"
)

// Subgraph is a partial covering graph stored as two dense row-major
// tables of size maxDegree·rank: outgoing[(v-1)·rank + (l-1)] is the end
// vertex of the edge labeled l starting at v (0 if absent), incoming is
// the mirror table for edges ending at v. The two tables stay in
// bijection: outgoing[v,l] = w ≠ 0 ⇔ incoming[w,l] = v.
//
// The zero value is not usable; Subgraphs exist only inside a Node.
type Subgraph struct {
	rank      int
	maxDegree int
	degree    int
	numEdges  int

	// slotIndex caches the table index where the last FirstEmptySlot scan
	// stopped. Slots below it are full and never empty again, so the cache
	// is monotone within one node and is copied along with the node.
	slotIndex int

	outgoing []Vertex
	incoming []Vertex
}

// Rank returns the number of positive edge labels.
func (s *Subgraph) Rank() int { return s.rank }

// Degree returns the current number of vertices.
func (s *Subgraph) Degree() int { return s.degree }

// MaxDegree returns the largest degree this graph can grow to.
func (s *Subgraph) MaxDegree() int { return s.maxDegree }

// NumEdges returns the number of labeled edges added so far.
func (s *Subgraph) NumEdges() int { return s.numEdges }

// IsComplete reports whether every (vertex, label) pair carries an edge.
func (s *Subgraph) IsComplete() bool { return s.numEdges == s.rank*s.degree }

// ActBy returns the vertex reached from v by the signed letter l: the end
// of the outgoing edge labeled l for l > 0, the start of the incoming edge
// labeled -l for l < 0. Zero means the edge does not exist yet.
func (s *Subgraph) ActBy(l words.Letter, v Vertex) Vertex {
	if l > 0 {
		return s.outgoing[(int(v)-1)*s.rank+int(l)-1]
	}

	return s.incoming[(int(v)-1)*s.rank+int(-l)-1]
}

// addEdge normalizes the signed letter and writes both table entries.
// With checked set, occupied slots abort the write and report false.
func (s *Subgraph) addEdge(l words.Letter, from, to Vertex, checked bool) bool {
	if l < 0 {
		l, from, to = -l, to, from
	}
	out := (int(from)-1)*s.rank + int(l) - 1
	in := (int(to)-1)*s.rank + int(l) - 1
	if checked {
		if s.outgoing[out] != 0 || s.incoming[in] != 0 {
			return false
		}
	} else if s.outgoing[out] != 0 || s.incoming[in] != 0 {
		panic("cover: AddEdge into an occupied slot")
	}
	if int(from) > s.degree || int(to) > s.degree {
		s.degree++
	}
	s.outgoing[out] = to
	s.incoming[in] = from
	s.numEdges++

	return true
}

// AddEdge adds the edge from → to labeled by the signed letter l (for
// l < 0 the endpoints swap and the label is negated). One endpoint must be
// an existing vertex and the other at most degree+1; an endpoint equal to
// degree+1 materializes a new vertex. Both target slots must be empty.
func (s *Subgraph) AddEdge(l words.Letter, from, to Vertex) {
	s.addEdge(l, from, to, false)
}

// VerifiedAddEdge is AddEdge for slots that may already be taken: if the
// outgoing or incoming slot is occupied it changes nothing and reports
// false.
func (s *Subgraph) VerifiedAddEdge(l words.Letter, from, to Vertex) bool {
	return s.addEdge(l, from, to, true)
}

// FirstEmptySlot returns the first empty slot in the canonical slot order:
// vertices ascending, and per vertex the signed labels 1, -1, 2, -2, ...
// It returns the zero Slot when the graph is complete. The search engines
// must fill exactly this slot next; MayBeMinimal depends on that order.
func (s *Subgraph) FirstEmptySlot() Slot {
	n := s.rank * s.degree
	for i := s.slotIndex; i < n; i++ {
		if s.outgoing[i] == 0 {
			s.slotIndex = i

			return Slot{Letter: words.Letter(i%s.rank + 1), Vertex: Vertex(i/s.rank + 1)}
		}
		if s.incoming[i] == 0 {
			s.slotIndex = i

			return Slot{Letter: -words.Letter(i%s.rank + 1), Vertex: Vertex(i/s.rank + 1)}
		}
	}

	return Slot{}
}

// PermutationRep returns the permutation representation of a complete
// graph: one permutation of {0, ..., degree-1} per positive letter, the
// l-th taking i to outgoing[i+1, l+1]-1. It panics on an incomplete graph.
func (s *Subgraph) PermutationRep() [][]Vertex {
	if !s.IsComplete() {
		panic("cover: PermutationRep on an incomplete graph")
	}
	result := make([][]Vertex, s.rank)
	for l := 0; l < s.rank; l++ {
		row := make([]Vertex, s.degree)
		for v := 0; v < s.degree; v++ {
			row[v] = s.outgoing[v*s.rank+l] - 1
		}
		result[l] = row
	}

	return result
}

// String renders the edge tables, one line per vertex. Debugging aid.
func (s *Subgraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subgraph(degree=%d/%d, edges=%d/%d)", s.degree, s.maxDegree, s.numEdges, s.rank*s.degree)
	for v := 0; v < s.degree; v++ {
		fmt.Fprintf(&b, "\n%3d:", v+1)
		for l := 0; l < s.rank; l++ {
			fmt.Fprintf(&b, " out[%d]=%-3d in[%d]=%-3d",
				l+1, s.outgoing[v*s.rank+l], l+1, s.incoming[v*s.rank+l])
		}
	}

	return b.String()
}
