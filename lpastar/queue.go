package lpastar

import (
	"container/heap"

	"github.com/pathlab/lpagrid/grid"
)

// openItem pairs a cell with the key it was inserted under. pos tracks the
// item's slot in the heap so arbitrary removal stays O(log n).
type openItem struct {
	key  Key
	node grid.Index
	pos  int
}

// openHeap implements heap.Interface over *openItem, ordered by Key.Less.
// Swap keeps pos indices current; this is what turns the plain binary heap
// into an indexed heap supporting remove-by-identity.
type openHeap []*openItem

// Len returns the number of queued items.
func (h openHeap) Len() int { return len(h) }

// Less orders items by their two-part key, lexicographically.
func (h openHeap) Less(i, j int) bool { return h[i].key.Less(h[j].key) }

// Swap swaps two items and updates their recorded positions.
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

// Push appends x; called by heap.Push.
func (h *openHeap) Push(x interface{}) {
	item := x.(*openItem)
	item.pos = len(*h)
	*h = append(*h, item)
}

// Pop removes and returns the last element; called by heap.Pop.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// openList is the engine's open list: an indexed min-heap of (Key, cell)
// pairs with at most one live entry per cell. Membership mirrors local
// inconsistency: a cell is queued iff g != rhs.
type openList struct {
	heap openHeap
	at   map[grid.Index]*openItem
}

// newOpenList returns an empty open list sized for capacity cells.
func newOpenList(capacity int) *openList {
	return &openList{
		heap: make(openHeap, 0, capacity),
		at:   make(map[grid.Index]*openItem, capacity),
	}
}

// Len returns the number of queued cells.
func (o *openList) Len() int { return len(o.heap) }

// Contains reports whether cell n has a live entry.
func (o *openList) Contains(n grid.Index) bool {
	_, ok := o.at[n]
	return ok
}

// Push inserts cell n under key k, replacing any live entry for n first so
// the one-entry-per-cell invariant holds.
func (o *openList) Push(n grid.Index, k Key) {
	if item, ok := o.at[n]; ok {
		item.key = k
		heap.Fix(&o.heap, item.pos)
		return
	}
	item := &openItem{key: k, node: n}
	o.at[n] = item
	heap.Push(&o.heap, item)
}

// Remove drops cell n's entry by identity, regardless of its current key.
// Reports whether an entry existed.
func (o *openList) Remove(n grid.Index) bool {
	item, ok := o.at[n]
	if !ok {
		return false
	}
	heap.Remove(&o.heap, item.pos)
	delete(o.at, n)

	return true
}

// Pop extracts the minimum-key entry. ok is false on an empty list.
func (o *openList) Pop() (k Key, n grid.Index, ok bool) {
	if len(o.heap) == 0 {
		return Key{}, grid.NoIndex, false
	}
	item := heap.Pop(&o.heap).(*openItem)
	delete(o.at, item.node)

	return item.key, item.node, true
}

// MinKey peeks at the minimum key without extracting it.
func (o *openList) MinKey() (Key, bool) {
	if len(o.heap) == 0 {
		return Key{}, false
	}
	return o.heap[0].key, true
}
