// Package grid defines core types, options, and sentinel errors
// for the flat-arena 2D grid model.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrEmptyGrid indicates non-positive dimensions or an input with no rows or columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadRune indicates an unrecognized cell rune in FromStrings.
	ErrBadRune = errors.New("grid: unrecognized cell rune")
	// ErrDuplicateStart indicates more than one start cell in FromStrings input.
	ErrDuplicateStart = errors.New("grid: duplicate start cell")
	// ErrDuplicateEnd indicates more than one end cell in FromStrings input.
	ErrDuplicateEnd = errors.New("grid: duplicate end cell")
	// ErrCellPinned indicates an attempt to barrier the start or end cell.
	ErrCellPinned = errors.New("grid: cannot barrier the start or end cell")
)

// State is the mutually exclusive tag carried by every cell.
// The zero value is Unchecked (free, not yet considered).
type State uint8

const (
	// Unchecked marks a free cell not currently settled by a search.
	Unchecked State = iota
	// Checked marks a cell settled (visited) by a search.
	Checked
	// Start marks the single source cell.
	Start
	// End marks the single target cell.
	End
	// Path marks a cell on a reconstructed shortest path.
	Path
	// Barrier marks an impassable cell; traversal must skip it.
	Barrier
)

// String returns a one-word name for s, for test output and debugging.
func (s State) String() string {
	switch s {
	case Unchecked:
		return "Unchecked"
	case Checked:
		return "Checked"
	case Start:
		return "Start"
	case End:
		return "End"
	case Path:
		return "Path"
	case Barrier:
		return "Barrier"
	default:
		return "Unknown"
	}
}

// Index is the flat arena key of a cell: y*Width + x.
// It is the node identity used by every search package.
type Index int

// NoIndex is the sentinel for "no cell" (e.g. start or end not yet placed).
const NoIndex Index = -1

// Point holds a cell's (x, y) coordinates.
type Point struct {
	X, Y int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Option configures Grid construction via functional arguments.
type Option func(*gridConfig)

type gridConfig struct {
	conn Connectivity
}

// WithConn8 enables 8-directional adjacency (diagonals included).
// Default is Conn4.
func WithConn8() Option {
	return func(c *gridConfig) { c.conn = Conn8 }
}
