// Package dijkstra defines core types and configuration options for the
// from-scratch uniform-cost baseline over a grid.Grid.
//
// Options:
//
//	– ReturnPath:  if true, return the predecessor arena for path recovery.
//	– MaxDistance: cap on distances to explore; cells beyond it are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrBadSource      if the source index is unset or a barrier cell.
//	– ErrBadMaxDistance if MaxDistance < 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Distances.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadSource indicates an unset source index or a barrier source cell.
	ErrBadSource = errors.New("dijkstra: source cell unset or impassable")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Distances.
type Options struct {
	// ReturnPath controls whether the predecessor arena is returned.
	ReturnPath bool
	// MaxDistance caps exploration; cells farther than this are skipped.
	// Default +Inf (no cap).
	MaxDistance float64
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithReturnPath enables the predecessor arena in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance sets a maximum distance threshold; cells whose shortest
// distance would exceed it are not explored. Panics on negative values.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with sensible defaults:
// no predecessor arena, no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
