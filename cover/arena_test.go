package cover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_RootIsCopy(t *testing.T) {
	root := NewNode(2, 3, 1)
	root.AddEdge(1, 1, 2)

	a := NewArena(root)
	r := a.Root()
	require.Equal(t, root.Degree(), r.Degree())
	require.Equal(t, root.NumEdges(), r.NumEdges())
	require.Equal(t, Vertex(2), r.ActBy(1, 1))

	// The arena copy is detached from the heap root.
	r.AddEdge(2, 1, 1)
	require.Zero(t, root.ActBy(2, 1))
}

func TestArena_ChildDoesNotTouchParent(t *testing.T) {
	root := NewNode(2, 3, 1)
	a := NewArena(root)

	parent := a.Root()
	parent.AddEdge(1, 1, 2)
	before := parent.String()

	child := a.Child(parent)
	child.AddEdge(-1, 1, 3)
	child.AddEdge(2, 2, 2)
	child.liftIndices[0] = 7

	require.Equal(t, before, parent.String())
	require.Equal(t, 2, parent.Degree())
	require.Zero(t, parent.liftIndices[0])
	require.Equal(t, 3, child.Degree())
}

// Backtracking reuses frames: requesting the child of the same parent
// again must return the same frame, reset to the parent's state.
func TestArena_FrameReuse(t *testing.T) {
	root := NewNode(1, 3, 0)
	a := NewArena(root)

	parent := a.Root()
	c1 := a.Child(parent)
	c1.AddEdge(1, 1, 2)

	c2 := a.Child(parent)
	require.Same(t, c1, c2)
	require.Zero(t, c2.NumEdges())
	require.Equal(t, 1, c2.Degree())
}

// The arena must hold enough frames for the deepest possible recursion:
// one edge per frame up to a complete graph of maximal degree.
func TestArena_DepthBound(t *testing.T) {
	root := NewNode(2, 3, 0)
	a := NewArena(root)
	require.Len(t, a.frames, 1+2*3)

	n := a.Root()
	for i := 0; i < 2*3; i++ {
		n = a.Child(n)
	}
	require.Equal(t, 2*3, n.frame)
}

func TestNode_CloneIsDeep(t *testing.T) {
	n := NewNode(2, 3, 1)
	n.AddEdge(1, 1, 2)

	c := n.Clone()
	require.Equal(t, n.Degree(), c.Degree())
	require.Equal(t, Vertex(2), c.ActBy(1, 1))

	c.AddEdge(2, 1, 1)
	require.Zero(t, n.ActBy(2, 1))
	require.Equal(t, 1, n.NumEdges())
}
