package search

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lowindex/cover"
	"github.com/katalvlaran/lowindex/words"
)

// workRecord is one unit of work: a node to recurse, the complete graphs
// found beneath it, and — if the worker processing it was interrupted —
// the sub-trees still to process, in the order the single-threaded engine
// would have visited them. The records form a collapsed copy of the search
// tree; a pre-order traversal collecting the complete lists reproduces the
// single-threaded output order.
//
// At any time at most one worker writes a record; its children become
// visible to other workers only through the queue swap under the mutex.
type workRecord struct {
	root     *cover.Node
	complete []*cover.Node
	children []*workRecord
	stopped  bool
}

// ParallelTree is the work-sharing multi-threaded search engine. It
// enumerates exactly the graphs Tree enumerates, in the same order,
// independent of the worker count.
type ParallelTree struct {
	maxDegree  int
	short      []words.Relator
	long       []words.Relator
	root       *cover.Node
	numWorkers int

	// The queue is one record vector — initially the root vector, later
	// the children of whichever record was split last; records at
	// queueIndex and beyond are unclaimed. queue, queueIndex and
	// numWorking are guarded by mu; stopRequested is also read lock-free
	// inside the recursion.
	mu            sync.Mutex
	wake          *sync.Cond
	queue         []*workRecord
	queueIndex    int
	numWorking    int
	stopRequested atomic.Bool
}

// NewParallelTree prepares a search over covering graphs of the free group
// of the given rank run by numWorkers concurrent workers (at least 2 for
// any actual parallelism). Inputs must have been validated by the caller.
func NewParallelTree(rank, maxDegree int, short, long []words.Relator, numWorkers int) *ParallelTree {
	t := &ParallelTree{
		maxDegree:  maxDegree,
		short:      short,
		long:       long,
		root:       cover.NewNode(rank, maxDegree, len(short)),
		numWorkers: numWorkers,
	}
	t.wake = sync.NewCond(&t.mu)

	return t
}

// List runs the workers to completion and returns the collected graphs.
func (t *ParallelTree) List() []*cover.Node {
	roots := []*workRecord{{root: t.root}}
	t.queue = roots
	t.queueIndex = 0
	t.numWorking = 0
	t.stopRequested.Store(false)

	var wg sync.WaitGroup
	for i := 0; i < t.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.worker()
		}()
	}
	wg.Wait()

	var result []*cover.Node
	mergeRecords(roots, &result)

	return result
}

// worker claims records off the queue until the queue is drained and no
// worker is busy.
//
// Queue-drain protocol: the worker that observes queueIndex equal to the
// queue length advances the index once more and raises the stop flag, so
// the flag is raised exactly once per drain. Some busy worker consumes the
// flag, stops recursing, and swaps the queue to its children, waking the
// waiters. When the queue is past its end and nobody is busy, all waiters
// are woken to exit.
func (t *ParallelTree) worker() {
	for {
		var claimed *workRecord

		t.mu.Lock()
		index := t.queueIndex
		if n := len(t.queue); index < n {
			t.numWorking++
			t.queueIndex++
			claimed = t.queue[index]
			t.mu.Unlock()
		} else {
			if index == n {
				t.queueIndex++
				t.stopRequested.Store(true)
			}
			if t.numWorking == 0 {
				t.wake.Broadcast()
				t.mu.Unlock()

				return
			}
			t.wake.Wait()
			t.mu.Unlock()

			continue
		}

		arena := cover.NewArena(claimed.root)
		t.recurse(arena.Root(), arena, claimed)

		t.mu.Lock()
		if claimed.stopped {
			t.queue = claimed.children
			t.queueIndex = 0
		}
		t.numWorking--
		t.wake.Broadcast()
		t.mu.Unlock()
	}
}

// recurse is the interruptible variant of Tree.recurse. Once the worker
// consumes a stop request, every surviving branch — the current candidate
// and all unexplored candidates up the ancestor chain — is appended to
// rec.children as a fresh work record instead of being descended into,
// preserving the visit order.
func (t *ParallelTree) recurse(n *cover.Node, arena *cover.Arena, rec *workRecord) {
	if n.IsComplete() {
		if !n.RelatorsLift(t.long) {
			return
		}
		c := n.Clone()
		if !c.RelatorsMayLift(t.short, cover.Slot{}, 0) {
			return
		}
		rec.complete = append(rec.complete, c)

		return
	}

	slot := n.FirstEmptySlot()
	m := min(n.Degree()+1, t.maxDegree)
	for v := 1; v <= m; v++ {
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

		if !rec.stopped && t.stopRequested.Swap(false) {
			rec.stopped = true
		}
		if rec.stopped {
			rec.children = append(rec.children, &workRecord{root: child.Clone()})

			continue
		}

		t.recurse(child, arena, rec)
	}
}

// mergeRecords collects complete graphs from a record tree in pre-order.
func mergeRecords(records []*workRecord, result *[]*cover.Node) {
	for _, rec := range records {
		*result = append(*result, rec.complete...)
		mergeRecords(rec.children, result)
	}
}
