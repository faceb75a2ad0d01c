package search

import (
	"github.com/katalvlaran/lowindex/cover"
	"github.com/katalvlaran/lowindex/words"
)

// Tree is the single-threaded search engine.
type Tree struct {
	maxDegree int
	short     []words.Relator
	long      []words.Relator

	root     *cover.Node
	complete []*cover.Node
}

// NewTree prepares a single-threaded search over covering graphs of the
// free group of the given rank, up to maxDegree vertices. The short
// relators prune the tree incrementally; the long relators are checked
// only on complete graphs. Inputs must have been validated by the caller.
func NewTree(rank, maxDegree int, short, long []words.Relator) *Tree {
	return &Tree{
		maxDegree: maxDegree,
		short:     short,
		long:      long,
		root:      cover.NewNode(rank, maxDegree, len(short)),
	}
}

// List runs the search and returns every complete covering graph on which
// all relators lift, exactly one per conjugacy class, in depth-first
// order.
func (t *Tree) List() []*cover.Node {
	arena := cover.NewArena(t.root)
	t.complete = nil
	t.recurse(arena.Root(), arena)

	return t.complete
}

// recurse extends n by one edge in every admissible way.
func (t *Tree) recurse(n *cover.Node, arena *cover.Arena) {
	if n.IsComplete() {
		if !n.RelatorsLift(t.long) {
			return
		}
		// Deductions pending in the cursors must still be driven to their
		// loops; run the incremental check once more on an owned copy with
		// the endpoint filter disabled.
		c := n.Clone()
		if !c.RelatorsMayLift(t.short, cover.Slot{}, 0) {
			return
		}
		t.complete = append(t.complete, c)

		return
	}

	slot := n.FirstEmptySlot()
	m := min(n.Degree()+1, t.maxDegree)
	for v := 1; v <= m; v++ {
		// The mirror slot at the candidate target must be free.
		if n.ActBy(-slot.Letter, cover.Vertex(v)) != 0 {
			continue
		}
		child := arena.Child(n)
		child.AddEdge(slot.Letter, slot.Vertex, cover.Vertex(v))
		if !child.RelatorsMayLift(t.short, slot, cover.Vertex(v)) {
			continue
		}
		if !child.MayBeMinimal() {
			continue
		}
		t.recurse(child, arena)
	}
}
