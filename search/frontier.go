package search

import (
	"container/heap"

	"github.com/thalath/gridpath/grid"
)

// entry is one frontier item. cost is the path cost at push time and lets
// A* recognize stale entries.
type entry struct {
	cell     grid.Coord
	priority int
	seq      uint64
	cost     int
}

// entryPQ is a min-heap ordered lexicographically on (priority, seq).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

// Less breaks priority ties by insertion sequence: first pushed pops first.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier wraps the heap with the insertion counter and a membership count
// per cell, so "is c pending?" is O(1) instead of a heap scan.
type frontier struct {
	pq      entryPQ
	next    uint64
	members map[grid.Coord]int
}

func newFrontier(capacity int) *frontier {
	f := &frontier{
		pq:      make(entryPQ, 0, capacity),
		members: make(map[grid.Coord]int, capacity),
	}
	heap.Init(&f.pq)
	return f
}

// push inserts c and returns the sequence number it was assigned.
func (f *frontier) push(c grid.Coord, priority, cost int) uint64 {
	seq := f.next
	f.next++
	heap.Push(&f.pq, entry{cell: c, priority: priority, seq: seq, cost: cost})
	f.members[c]++
	return seq
}

func (f *frontier) pop() entry {
	e := heap.Pop(&f.pq).(entry)
	if f.members[e.cell]--; f.members[e.cell] == 0 {
		delete(f.members, e.cell)
	}
	return e
}

func (f *frontier) contains(c grid.Coord) bool {
	return f.members[c] > 0
}

func (f *frontier) len() int { return f.pq.Len() }
