package lpastar

import (
	"github.com/pathlab/lpagrid/grid"
)

// Key is the two-part priority ordering the open list.
// Primary is min(g,rhs) + h(node, end): the heuristic-augmented estimate of
// a shortest path through the node. Secondary is min(g,rhs) alone and breaks
// ties in favor of cells closer to the start.
type Key struct {
	Primary, Secondary float64
}

// Less reports whether k orders strictly before other, lexicographically.
func (k Key) Less(other Key) bool {
	if k.Primary != other.Primary {
		return k.Primary < other.Primary
	}
	return k.Secondary < other.Secondary
}

// calcKey computes the fresh key for cell n from the current g/rhs values.
// Never cache the result: keys are recomputed at insertion time and at every
// termination check.
func (s *Search) calcKey(n grid.Index) Key {
	m := s.gCost[n]
	if s.rhs[n] < m {
		m = s.rhs[n]
	}

	return Key{Primary: m + s.h(n, s.end), Secondary: m}
}
