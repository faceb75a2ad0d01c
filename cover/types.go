package cover

import (
	"math"

	"github.com/katalvlaran/lowindex/words"
)

// Vertex indexes a vertex of a covering graph. Vertices are numbered from
// 1; the zero value means "no vertex" (an empty table slot). The maximum
// value is reserved as the finished sentinel of the lifting cursors, so a
// graph can have at most MaxDegree vertices.
type Vertex uint8

// finished marks a lifting cursor whose relator is known to close up into
// a loop at its base vertex.
const finished Vertex = math.MaxUint8

// MaxDegree is the largest admissible degree (index) of a covering graph.
const MaxDegree = int(finished) - 1

// Slot identifies an edge position: the outgoing slot of Vertex under
// Letter when Letter > 0, the incoming slot under -Letter when Letter < 0.
// The zero Slot is returned by FirstEmptySlot on a complete graph.
type Slot struct {
	Letter words.Letter
	Vertex Vertex
}
