// Package dijkstra implements a from-scratch uniform-cost shortest-path
// search over a grid.Grid with unit edges and impassable barrier cells.
//
// It processes cells in order of increasing distance using a min-heap
// priority queue under the "lazy decrease-key" strategy: improved distances
// push duplicate entries, and stale entries are skipped on pop via the
// visited arena.
//
// Complexity:
//
//   - Time:  O(N·d log N), N = cell count, d = neighbors per cell (4 or 8).
//   - Space: O(N) for the distance, predecessor, and visited arenas.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/pathlab/lpagrid/grid"
)

// Distances computes shortest unit-cost distances from source to every cell
// of g, skipping barriers.
//
// Returns:
//
//   - dist: per-cell distance arena (+Inf for unreachable cells).
//   - prev: predecessor arena if ReturnPath is set (grid.NoIndex for the
//     source and unreachable cells); nil otherwise.
//   - err:  ErrNilGrid or ErrBadSource on invalid input.
func Distances(g *grid.Grid, source grid.Index, opts ...Option) ([]float64, []grid.Index, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if source == grid.NoIndex || int(source) >= g.Len() || g.IsBarrier(source) {
		return nil, nil, ErrBadSource
	}

	n := g.Len()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	var prev []grid.Index
	if cfg.ReturnPath {
		prev = make([]grid.Index, n)
		for i := range prev {
			prev[i] = grid.NoIndex
		}
	}
	visited := make([]bool, n)

	r := &runner{
		g:       g,
		options: cfg,
		dist:    dist,
		prev:    prev,
		visited: visited,
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source→dest cell sequence from a predecessor arena
// returned by Distances. Returns nil when dest was never reached.
func PathTo(prev []grid.Index, source, dest grid.Index) []grid.Index {
	if dest != source && prev[dest] == grid.NoIndex {
		return nil
	}
	path := []grid.Index{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	// reverse to source→dest order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Distances execution.
type runner struct {
	g       *grid.Grid
	options Options
	dist    []float64
	prev    []grid.Index
	visited []bool
	pq      nodePQ
}

// init seeds the heap with the source at distance 0.
func (r *runner) init(source grid.Index) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its
// neighborhood until the heap drains or the distance cap is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve distances to u's traversable neighbors.
func (r *runner) relax(u grid.Index) {
	for _, v := range r.g.Neighbors(u) {
		if r.g.IsBarrier(v) {
			continue
		}
		newDist := r.dist[u] + 1
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem pairs a cell with its current tentative distance from the source.
type nodeItem struct {
	id   grid.Index
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, operated
// under lazy decrease-key: shorter rediscoveries push duplicates, and stale
// entries are ignored on pop via the visited arena.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
