package grid

import (
	"fmt"
)

// Grid is a rectangular node arena with per-cell state tags and precomputed
// index-based adjacency. Cells are never created or destroyed after New;
// only their State tags change.
type Grid struct {
	width, height int
	conn          Connectivity
	states        []State
	adj           [][]Index
	start, end    Index
}

// New constructs an empty width×height grid with all cells Unchecked and no
// start/end placed. Returns ErrEmptyGrid for non-positive dimensions.
// Complexity: O(W×H×d) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cfg := gridConfig{conn: Conn4}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := width * height
	g := &Grid{
		width:  width,
		height: height,
		conn:   cfg.conn,
		states: make([]State, n),
		adj:    make([][]Index, n),
		start:  NoIndex,
		end:    NoIndex,
	}
	g.buildAdjacency()

	return g, nil
}

// FromStrings builds a grid from row strings using the runes:
// '.' free, '#' barrier, 'S' start, 'E' end.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadRune, ErrDuplicateStart or
// ErrDuplicateEnd on malformed input. A missing 'S' or 'E' is not an error
// here; search engines validate placement at construction time.
func FromStrings(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	g, err := New(w, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != w {
			return nil, ErrNonRectangular
		}
		for x, r := range cells {
			i := g.IndexOf(x, y)
			switch r {
			case '.':
				// already Unchecked
			case '#':
				g.states[i] = Barrier
			case 'S':
				if g.start != NoIndex {
					return nil, ErrDuplicateStart
				}
				g.states[i] = Start
				g.start = i
			case 'E':
				if g.end != NoIndex {
					return nil, ErrDuplicateEnd
				}
				g.states[i] = End
				g.end = i
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, r, x, y)
			}
		}
	}

	return g, nil
}

// buildAdjacency precomputes, per cell, the in-bounds neighbor indices.
// Barrier cells participate like any other cell: adjacency reflects topology
// only, so toggling a barrier never invalidates neighbor lists.
func (g *Grid) buildAdjacency() {
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if g.conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := g.IndexOf(x, y)
			nbs := make([]Index, 0, len(offsets))
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if g.InBounds(nx, ny) {
					nbs = append(nbs, g.IndexOf(nx, ny))
				}
			}
			g.adj[i] = nbs
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells (Width×Height).
func (g *Grid) Len() int { return len(g.states) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IndexOf maps (x,y) to its row-major arena index: y*Width + x.
// Panics on out-of-bounds coordinates; callers own bounds checking.
func (g *Grid) IndexOf(x, y int) Index {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: IndexOf(%d,%d) out of %dx%d bounds", x, y, g.width, g.height))
	}
	return Index(y*g.width + x)
}

// Coordinate converts an arena index back to (x, y).
func (g *Grid) Coordinate(i Index) (x, y int) {
	g.mustIndex(i)
	return int(i) % g.width, int(i) / g.width
}

// PointOf returns the Point form of an arena index.
func (g *Grid) PointOf(i Index) Point {
	x, y := g.Coordinate(i)
	return Point{X: x, Y: y}
}

// Neighbors returns the precomputed neighbor indices of cell i.
// The returned slice is shared; callers must not mutate it.
func (g *Grid) Neighbors(i Index) []Index {
	g.mustIndex(i)
	return g.adj[i]
}

// State returns the current state tag of cell i.
func (g *Grid) State(i Index) State {
	g.mustIndex(i)
	return g.states[i]
}

// StartIndex returns the start cell, or NoIndex if none is placed.
func (g *Grid) StartIndex() Index { return g.start }

// EndIndex returns the end cell, or NoIndex if none is placed.
func (g *Grid) EndIndex() Index { return g.end }

// IsStart reports whether cell i carries the Start tag.
func (g *Grid) IsStart(i Index) bool { return g.State(i) == Start }

// IsEnd reports whether cell i carries the End tag.
func (g *Grid) IsEnd(i Index) bool { return g.State(i) == End }

// IsChecked reports whether cell i has been settled by a search.
func (g *Grid) IsChecked(i Index) bool { return g.State(i) == Checked }

// IsUnchecked reports whether cell i is free and unsettled.
func (g *Grid) IsUnchecked(i Index) bool { return g.State(i) == Unchecked }

// IsBarrier reports whether cell i is impassable.
func (g *Grid) IsBarrier(i Index) bool { return g.State(i) == Barrier }

// IsPath reports whether cell i lies on a reconstructed path.
func (g *Grid) IsPath(i Index) bool { return g.State(i) == Path }

// Check marks cell i as settled. Engines must not call this on start or end;
// those tags are preserved by the callers' guards, not here.
func (g *Grid) Check(i Index) {
	g.mustIndex(i)
	g.states[i] = Checked
}

// Uncheck reopens cell i for consideration (back to Unchecked).
func (g *Grid) Uncheck(i Index) {
	g.mustIndex(i)
	g.states[i] = Unchecked
}

// MarkPath tags cell i as lying on the reconstructed path.
func (g *Grid) MarkPath(i Index) {
	g.mustIndex(i)
	g.states[i] = Path
}

// SetStart places the Start tag on cell i, releasing any previous start cell
// back to Unchecked. Overwrites whatever tag i carried (including Barrier).
func (g *Grid) SetStart(i Index) {
	g.mustIndex(i)
	if g.start != NoIndex {
		g.states[g.start] = Unchecked
	}
	g.states[i] = Start
	g.start = i
}

// SetEnd places the End tag on cell i, releasing any previous end cell.
func (g *Grid) SetEnd(i Index) {
	g.mustIndex(i)
	if g.end != NoIndex {
		g.states[g.end] = Unchecked
	}
	g.states[i] = End
	g.end = i
}

// SetBarrier makes cell i impassable. Returns ErrCellPinned when i is the
// start or end cell; those must be relocated first.
func (g *Grid) SetBarrier(i Index) error {
	g.mustIndex(i)
	if i == g.start || i == g.end {
		return ErrCellPinned
	}
	g.states[i] = Barrier

	return nil
}

// ClearBarrier reverts an impassable cell back to Unchecked.
// Cells that are not barriers are left untouched.
func (g *Grid) ClearBarrier(i Index) {
	g.mustIndex(i)
	if g.states[i] == Barrier {
		g.states[i] = Unchecked
	}
}

// ResetSearch clears the transient search tags (Checked, Path) back to
// Unchecked, preserving barriers, start and end. Used between full re-runs.
func (g *Grid) ResetSearch() {
	for i, s := range g.states {
		if s == Checked || s == Path {
			g.states[i] = Unchecked
		}
	}
}

// mustIndex validates an arena index; out-of-range indices are programmer
// errors and panic rather than returning an error.
func (g *Grid) mustIndex(i Index) {
	if i < 0 || int(i) >= len(g.states) {
		panic(fmt.Sprintf("grid: index %d out of arena range [0,%d)", i, len(g.states)))
	}
}
