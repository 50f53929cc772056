package dirsearch

import "github.com/katalvlaran/gridpath/grid"

// queueItem references an arena state together with the fields the heap
// orders by, so Less never has to reach into the arena.
type queueItem struct {
	id   int            // arena index
	cost int64          // accumulated cost
	pos  grid.Position  // tie-breaker 1
	dir  grid.Direction // tie-breaker 2
	seq  int            // tie-breaker 3: insertion order
}

// stateQueue is a min-heap of queueItem ordered by cost, then position
// (X, Y), then facing, then insertion order. The total order makes every
// run reproducible. Stale entries are skipped on pop (lazy decrease-key).
type stateQueue []queueItem

// Len returns the number of items in the heap.
func (pq stateQueue) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq stateQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if c := a.pos.Compare(b.pos); c != 0 {
		return c < 0
	}
	if a.dir != b.dir {
		return a.dir < b.dir
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq stateQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type queueItem.
func (pq *stateQueue) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to queueItem.
func (pq *stateQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
