package cover

// Arena is the preallocated frame store used by the search engines. DFS
// depth is bounded by the number of edges of a complete graph, so the
// arena holds 1 + maxDegree·rank frames; frame k+1 is always constructed
// as a bulk copy of frame k plus one edge. All frame memory is allocated
// once here, and nothing inside the recursion allocates.
//
// Frames follow stack discipline: a frame may be copied into and read
// while no deeper frame derived from it is live, and it is reused when the
// recursion backtracks. An Arena must not be shared between goroutines;
// each worker owns one.
type Arena struct {
	frames []Node

	outgoing     []Vertex
	incoming     []Vertex
	liftIndices  []uint16
	liftVertices []Vertex
}

// NewArena allocates an arena shaped like root and places a copy of root
// in frame 0.
func NewArena(root *Node) *Arena {
	numFrames := 1 + root.rank*root.maxDegree
	edgeLen := root.rank * root.maxDegree
	liftLen := root.numRelators * root.maxDegree

	a := &Arena{
		frames:       make([]Node, numFrames),
		outgoing:     make([]Vertex, numFrames*edgeLen),
		incoming:     make([]Vertex, numFrames*edgeLen),
		liftIndices:  make([]uint16, numFrames*liftLen),
		liftVertices: make([]Vertex, numFrames*liftLen),
	}
	for k := range a.frames {
		f := &a.frames[k]
		f.Subgraph = Subgraph{
			rank:      root.rank,
			maxDegree: root.maxDegree,
		}
		f.numRelators = root.numRelators
		f.outgoing = a.outgoing[k*edgeLen : (k+1)*edgeLen]
		f.incoming = a.incoming[k*edgeLen : (k+1)*edgeLen]
		f.liftIndices = a.liftIndices[k*liftLen : (k+1)*liftLen]
		f.liftVertices = a.liftVertices[k*liftLen : (k+1)*liftLen]
		f.frame = k
	}
	a.frames[0].copyFrom(root)

	return a
}

// Root returns frame 0.
func (a *Arena) Root() *Node {
	return &a.frames[0]
}

// Child copies parent into the next frame and returns it. The returned
// node is valid until the recursion backtracks past it; it must be cloned
// (Node.Clone) to outlive the frame.
func (a *Arena) Child(parent *Node) *Node {
	child := &a.frames[parent.frame+1]
	child.copyFrom(parent)

	return child
}
