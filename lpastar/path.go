package lpastar

import (
	"github.com/pathlab/lpagrid/grid"
)

// bestBackStep selects, among cell n's neighbors that are Checked or Start,
// the one with minimum rhs. ok is false when no such neighbor exists.
func (s *Search) bestBackStep(n grid.Index) (best grid.Index, ok bool) {
	best = grid.NoIndex
	for _, nb := range s.g.Neighbors(n) {
		if !s.g.IsChecked(nb) && !s.g.IsStart(nb) {
			continue
		}
		if best == grid.NoIndex || s.rhs[nb] < s.rhs[best] {
			best = nb
		}
	}

	return best, best != grid.NoIndex
}

// reconstructPath walks the consistent tree backward from end to start,
// marking intermediate cells as Path and firing OnPathNode for each.
// Returns the full end→start cell sequence, endpoints included.
//
// A cell with no Checked/Start neighbor means the tree diverged under us;
// that surfaces as ErrPathDiverged rather than a silently truncated walk.
func (s *Search) reconstructPath() ([]grid.Index, error) {
	path := make([]grid.Index, 0, s.g.Len())
	path = append(path, s.end)

	seen := make(map[grid.Index]bool, s.g.Len())
	seen[s.end] = true

	current := s.end
	for current != s.start {
		next, ok := s.bestBackStep(current)
		if !ok || seen[next] {
			return nil, ErrPathDiverged
		}
		seen[next] = true
		path = append(path, next)
		if next == s.start {
			break
		}
		s.g.MarkPath(next)
		s.opts.OnPathNode(next)
		current = next
	}

	return path, nil
}

// reconstructEager is the per-visit redraw walk used by
// WithReconstructEachVisit: identical stepping, but dead ends stop the walk
// silently, preserving the visual behavior of step-by-step renderers that
// repaint a partial path before the tree is fully consistent.
func (s *Search) reconstructEager() {
	seen := make(map[grid.Index]bool, s.g.Len())
	seen[s.end] = true

	current := s.end
	for !s.g.IsStart(current) {
		next, ok := s.bestBackStep(current)
		if !ok || seen[next] {
			return
		}
		seen[next] = true
		if s.g.IsStart(next) {
			return
		}
		s.g.MarkPath(next)
		s.opts.OnPathNode(next)
		current = next
	}
}
