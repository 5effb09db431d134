package lpastar

import (
	"fmt"
	"math"

	"github.com/pathlab/lpagrid/grid"
	"github.com/pathlab/lpagrid/heuristic"
)

// Search holds the long-lived state of an incremental LPA* run: the grid, the
// g/rhs arenas, and the open list. A Search survives across edits: after
// SetBarrier/ClearBarrier, the next Run repairs only the affected region of
// the shortest-path tree.
type Search struct {
	g    *grid.Grid
	opts Options
	h    func(a, b grid.Index) float64

	start, end grid.Index

	gCost []float64 // best known cost from start, per cell
	rhs   []float64 // one-step lookahead estimate, per cell
	open  *openList

	// endSettled records that the end cell has been dequeued at least once;
	// only then may its g value feed neighbors' rhs computations.
	endSettled bool
}

// New constructs a Search over g, validating grid wiring and options.
//
// Initialization follows the LPA* textbook shape: rhs[start] = 0, every
// other g/rhs slot +Inf, and the start cell queued under its fresh key.
//
// Errors: ErrNilGrid, ErrNoStart, ErrNoEnd, or a heuristic parameter error
// (e.g. heuristic.ErrMinkowskiOrder).
func New(g *grid.Grid, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, end := g.StartIndex(), g.EndIndex()
	if start == grid.NoIndex {
		return nil, ErrNoStart
	}
	if end == grid.NoIndex {
		return nil, ErrNoEnd
	}

	// Bind the heuristic once; degenerate parameters fail here, not mid-run.
	h, err := heuristic.Bind(o.Heuristic, g, o.HeuristicParams...)
	if err != nil {
		return nil, fmt.Errorf("lpastar: %w", err)
	}

	n := g.Len()
	s := &Search{
		g:     g,
		opts:  o,
		h:     h,
		start: start,
		end:   end,
		gCost: make([]float64, n),
		rhs:   make([]float64, n),
		open:  newOpenList(n),
	}
	inf := math.Inf(1)
	for i := range s.gCost {
		s.gCost[i] = inf
		s.rhs[i] = inf
	}
	s.rhs[start] = 0
	s.open.Push(start, s.calcKey(start))

	return s, nil
}

// G returns the current g value (best known cost from start) of cell n.
func (s *Search) G(n grid.Index) float64 { return s.gCost[n] }

// Rhs returns the current rhs value (one-step lookahead) of cell n.
func (s *Search) Rhs(n grid.Index) float64 { return s.rhs[n] }

// InOpen reports whether cell n currently has a live open-list entry.
// Holds iff n is locally inconsistent (g != rhs).
func (s *Search) InOpen(n grid.Index) bool { return s.open.Contains(n) }

// OpenLen returns the number of queued (inconsistent) cells.
func (s *Search) OpenLen() int { return s.open.Len() }

// feedsRhs reports whether neighbor nb may contribute g[nb]+1 to a cell's
// rhs: settled cells, the start, open ground, and the end once it has been
// dequeued at least once.
func (s *Search) feedsRhs(nb grid.Index) bool {
	switch {
	case s.g.IsChecked(nb), s.g.IsStart(nb), s.g.IsUnchecked(nb):
		return true
	case s.g.IsEnd(nb):
		return s.endSettled
	default:
		return false
	}
}

// updateVertex re-establishes the open-list invariant for cell n after its
// own or a neighbor's state changed. For non-start cells it recomputes
// rhs[n] as the minimum g[neighbor]+1 over contributing neighbors (+Inf when
// none), drops any live entry by identity, and re-queues n iff inconsistent.
//
// Idempotent: a second call with unchanged inputs leaves the open list
// byte-for-byte identical.
func (s *Search) updateVertex(n grid.Index) {
	if n == s.start {
		return
	}
	best := math.Inf(1)
	for _, nb := range s.g.Neighbors(n) {
		if !s.feedsRhs(nb) {
			continue
		}
		if c := s.gCost[nb] + 1; c < best {
			best = c
		}
	}
	s.rhs[n] = best

	s.open.Remove(n)
	if s.gCost[n] != s.rhs[n] {
		s.open.Push(n, s.calcKey(n))
	}
}

// targetInconsistent is the loop-continuation test: the end cell is not yet
// locally consistent, or some queued key could still improve it. Both sides
// recompute calcKey(end) fresh; the open list's minimum is trustworthy
// because entries are re-keyed on every vertex update.
func (s *Search) targetInconsistent() bool {
	if s.rhs[s.end] != s.gCost[s.end] {
		return true
	}
	top, ok := s.open.MinKey()

	return ok && top.Less(s.calcKey(s.end))
}

// Run drives the main loop until convergence, queue exhaustion, or
// cancellation, then classifies the outcome.
//
// Per iteration: cancellation check, pop of the minimum-key cell, the
// overconsistent/underconsistent settlement rule, vertex updates on the
// popped cell's neighborhood, the OnStep notification, and the Checked mark.
//
// On StatusConverged the g/rhs arenas form a consistent shortest-path tree
// rooted at start and Result.Path walks it end→start. On StatusNoPath,
// Cost is +Inf. On StatusCancelled the arenas are void and the wrapped
// context error is returned.
func (s *Search) Run() (Result, error) {
	// Path marks from a previous reconstruction are presentation state; fold
	// them back into Checked so the rhs neighbor filter sees the tree it
	// actually built.
	s.foldPathMarks()

	res := Result{Cost: math.Inf(1)}
	for s.targetInconsistent() {
		// Cooperative cancellation, once per iteration.
		select {
		case <-s.opts.Ctx.Done():
			res.Status = StatusCancelled
			return res, fmt.Errorf("%w: %v", ErrCancelled, s.opts.Ctx.Err())
		default:
		}

		_, node, ok := s.open.Pop()
		if !ok {
			// Open list drained while the end stayed inconsistent.
			break
		}
		res.Steps++

		if s.gCost[node] > s.rhs[node] {
			// Overconsistent: settle at the lookahead value.
			s.gCost[node] = s.rhs[node]
		} else {
			// Underconsistent: invalidate and reconsider the cell itself.
			s.gCost[node] = math.Inf(1)
			s.updateVertex(node)
		}

		// Reopen and update the neighborhood; barriers stay untouched.
		for _, nb := range s.g.Neighbors(node) {
			if s.g.IsBarrier(nb) {
				continue
			}
			if !s.g.IsStart(nb) && !s.g.IsEnd(nb) && !s.g.IsChecked(nb) {
				s.g.Uncheck(nb)
			}
			s.updateVertex(nb)
		}

		s.opts.OnStep()

		if !s.g.IsStart(node) && !s.g.IsEnd(node) {
			s.g.Check(node)
		}

		if node == s.end {
			s.endSettled = true
			if s.opts.ReconstructEachVisit {
				// Source-faithful eager redraw; silent on dead ends.
				s.reconstructEager()
			}
		}
	}

	res.Cost = s.gCost[s.end]
	if math.IsInf(res.Cost, 1) {
		res.Status = StatusNoPath
		return res, nil
	}

	res.Status = StatusConverged
	// Eager redraws may have painted Path tags mid-run; fold them back so the
	// final back-walk sees the settled tree.
	s.foldPathMarks()
	path, err := s.reconstructPath()
	if err != nil {
		return res, err
	}
	res.Path = path

	return res, nil
}

// SetBarrier makes cell n impassable and repairs the queue invariant around
// it: n's own estimates collapse to +Inf, its entry leaves the open list,
// and each traversable neighbor gets a vertex update. All other g/rhs slots
// are left untouched; the next Run repairs incrementally from here.
func (s *Search) SetBarrier(n grid.Index) error {
	if err := s.g.SetBarrier(n); err != nil {
		return err
	}
	s.gCost[n] = math.Inf(1)
	s.rhs[n] = math.Inf(1)
	s.open.Remove(n)
	for _, nb := range s.g.Neighbors(n) {
		if !s.g.IsBarrier(nb) {
			s.updateVertex(nb)
		}
	}

	return nil
}

// ClearBarrier reopens cell n and queues it for reconsideration, leaving the
// rest of the tree untouched.
func (s *Search) ClearBarrier(n grid.Index) {
	s.g.ClearBarrier(n)
	s.updateVertex(n)
}

// foldPathMarks reverts Path presentation tags to Checked. Every Path cell
// was Checked before reconstruction marked it, so this restores the engine's
// own view of the settled tree.
func (s *Search) foldPathMarks() {
	for i := 0; i < s.g.Len(); i++ {
		n := grid.Index(i)
		if s.g.IsPath(n) {
			s.g.Check(n)
		}
	}
}
