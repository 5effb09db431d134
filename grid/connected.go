package grid

// ConnectedFrom returns the arena indices of every non-barrier cell
// reachable from start, start included, in breadth-first discovery order.
// Returns nil when start is out of a component entirely (a barrier cell).
//
// Useful for pre-flight reachability checks and for sizing search arenas to
// the live component instead of the whole grid.
// Complexity: O(W×H×d) time, O(W×H) memory.
func (g *Grid) ConnectedFrom(start Index) []Index {
	g.mustIndex(start)
	if g.IsBarrier(start) {
		return nil
	}

	seen := make([]bool, len(g.states))
	seen[start] = true
	queue := make([]Index, 0, len(g.states))
	queue = append(queue, start)

	order := make([]Index, 0, len(g.states))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, nb := range g.adj[cur] {
			if seen[nb] || g.IsBarrier(nb) {
				continue
			}
			seen[nb] = true
			queue = append(queue, nb)
		}
	}

	return order
}
