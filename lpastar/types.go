// Package lpastar defines core types, configuration options, and sentinel
// errors for the incremental LPA* engine.
package lpastar

import (
	"context"
	"errors"

	"github.com/pathlab/lpagrid/grid"
	"github.com/pathlab/lpagrid/heuristic"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to New.
	ErrNilGrid = errors.New("lpastar: grid is nil")

	// ErrNoStart is returned when the grid has no start cell placed.
	ErrNoStart = errors.New("lpastar: grid has no start cell")

	// ErrNoEnd is returned when the grid has no end cell placed.
	ErrNoEnd = errors.New("lpastar: grid has no end cell")

	// ErrPathDiverged is returned when path reconstruction over a converged
	// tree hits a cell with no Checked/Start neighbor (a dead end).
	ErrPathDiverged = errors.New("lpastar: path reconstruction hit a dead end")

	// ErrCancelled wraps the context error on cooperative abort.
	ErrCancelled = errors.New("lpastar: search cancelled")
)

// Status is the terminal state of a Run.
type Status int

const (
	// StatusConverged means the shortest-path tree is consistent at end;
	// Result.Cost is the shortest-path cost.
	StatusConverged Status = iota
	// StatusNoPath means the open list drained while end stayed unreachable.
	StatusNoPath
	// StatusCancelled means the injected context fired mid-search.
	StatusCancelled
)

// String returns a one-word name for s.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusNoPath:
		return "NoPath"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of a single Run.
type Result struct {
	// Status is Converged, NoPath or Cancelled.
	Status Status
	// Cost is g[end]: the shortest-path cost, or +Inf when unreachable.
	Cost float64
	// Path lists the cells from end to start (inclusive) when converged and
	// reconstruction succeeded; empty otherwise.
	Path []grid.Index
	// Steps counts queue pops performed by this Run.
	Steps int
}

// Option configures a Search via functional arguments. Heuristic parameter
// validity is checked by New, which binds the heuristic once up front.
type Option func(*Options)

// Options holds parameters and callbacks customizing engine behavior.
type Options struct {
	// Ctx allows cooperative cancellation; checked once per loop iteration.
	Ctx context.Context

	// Heuristic selects the distance estimate for key calculation.
	Heuristic heuristic.Kind

	// HeuristicParams carries extra heuristic parameters (Minkowski order).
	HeuristicParams []float64

	// OnStep fires after each processed cell; the external renderer's
	// redraw checkpoint. Fire-and-forget from the engine's perspective.
	OnStep func()

	// OnPathNode fires for each cell marked during path reconstruction.
	OnPathNode func(grid.Index)

	// ReconstructEachVisit redraws the path every time the end cell is
	// dequeued, even before convergence. Off by default; the converged path
	// is always reconstructed.
	ReconstructEachVisit bool
}

// DefaultOptions returns Options with sane defaults: background context,
// Manhattan heuristic, no-op hooks, convergence-gated reconstruction.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Heuristic:  heuristic.Manhattan,
		OnStep:     func() {},
		OnPathNode: func(grid.Index) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the heuristic kind and its extra parameters.
// Parameter validity (e.g. Minkowski order) is checked by New.
func WithHeuristic(kind heuristic.Kind, params ...float64) Option {
	return func(o *Options) {
		o.Heuristic = kind
		o.HeuristicParams = params
	}
}

// WithOnStep registers the per-iteration redraw callback.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnPathNode registers a callback fired for each reconstructed path cell.
func WithOnPathNode(fn func(grid.Index)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPathNode = fn
		}
	}
}

// WithReconstructEachVisit redraws the path on every dequeue of the end
// cell, mirroring the visual behavior of step-by-step renderers.
func WithReconstructEachVisit() Option {
	return func(o *Options) {
		o.ReconstructEachVisit = true
	}
}
