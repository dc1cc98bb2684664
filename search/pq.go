package search

import "github.com/latticek/incognito/lattice"

// nodeItem is one entry in the driver's height-ordered priority queue.
type nodeItem struct {
	height int
	id     lattice.NodeID
}

// nodePQ is a min-heap of *nodeItem ordered by height ascending, mirroring
// the teacher's dijkstra nodePQ: a lazy priority queue that tolerates
// duplicate/stale entries rather than supporting decrease-key. A node can
// be pushed more than once (each of its down-neighbors may independently
// fail and re-enqueue it); stale entries are filtered at pop time by
// checking the node's live/marked state.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].height < pq[j].height }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
