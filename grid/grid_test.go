package grid_test

import (
	"errors"
	"testing"

	"github.com/pathlab/lpagrid/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h)
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.w, tc.h, err)
			}
		})
	}
}

// TestFromStrings_Errors verifies malformed inputs are rejected with the
// matching sentinel.
func TestFromStrings_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonRectangular},
		{"BadRune", []string{".X"}, grid.ErrBadRune},
		{"TwoStarts", []string{"SS"}, grid.ErrDuplicateStart},
		{"TwoEnds", []string{"EE"}, grid.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromStrings(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromStrings(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromStrings_PlacesTags checks that runes map onto the right states.
func TestFromStrings_PlacesTags(t *testing.T) {
	g, err := grid.FromStrings([]string{
		"S.#",
		"..E",
	})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	if got := g.StartIndex(); got != g.IndexOf(0, 0) {
		t.Errorf("StartIndex = %d; want %d", got, g.IndexOf(0, 0))
	}
	if got := g.EndIndex(); got != g.IndexOf(2, 1) {
		t.Errorf("EndIndex = %d; want %d", got, g.IndexOf(2, 1))
	}
	if !g.IsBarrier(g.IndexOf(2, 0)) {
		t.Error("expected barrier at (2,0)")
	}
	if !g.IsUnchecked(g.IndexOf(1, 0)) {
		t.Error("expected unchecked at (1,0)")
	}
}

// TestIndexCoordinateRoundTrip verifies IndexOf/Coordinate are inverses.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := grid.New(4, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			i := g.IndexOf(x, y)
			gx, gy := g.Coordinate(i)
			if gx != x || gy != y {
				t.Errorf("Coordinate(IndexOf(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
			if p := g.PointOf(i); p.X != x || p.Y != y {
				t.Errorf("PointOf(%d) = %v; want (%d,%d)", i, p, x, y)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4 checks neighbor counts at corner, edge, and center.
func TestNeighbors_Conn4(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if n := len(g.Neighbors(g.IndexOf(0, 0))); n != 2 {
		t.Errorf("corner neighbors = %d; want 2", n)
	}
	if n := len(g.Neighbors(g.IndexOf(1, 0))); n != 3 {
		t.Errorf("edge neighbors = %d; want 3", n)
	}
	if n := len(g.Neighbors(g.IndexOf(1, 1))); n != 4 {
		t.Errorf("center neighbors = %d; want 4", n)
	}
}

// TestNeighbors_Conn8 checks diagonal adjacency under WithConn8.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithConn8())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if n := len(g.Neighbors(g.IndexOf(0, 0))); n != 3 {
		t.Errorf("corner neighbors = %d; want 3", n)
	}
	if n := len(g.Neighbors(g.IndexOf(1, 1))); n != 8 {
		t.Errorf("center neighbors = %d; want 8", n)
	}
}

// TestNeighbors_IncludeBarriers verifies adjacency is topology-only:
// barrier cells stay in neighbor lists and are filtered by state.
func TestNeighbors_IncludeBarriers(t *testing.T) {
	g, err := grid.FromStrings([]string{
		"S#",
		"..",
	})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	nbs := g.Neighbors(g.StartIndex())
	if len(nbs) != 2 {
		t.Fatalf("start neighbors = %d; want 2 (barrier included)", len(nbs))
	}
}

//----------------------------------------------------------------------------//
// State Mutation Tests
//----------------------------------------------------------------------------//

// TestStateMutators walks a cell through the engine-facing transitions.
func TestStateMutators(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	i := g.IndexOf(0, 0)

	g.Check(i)
	if !g.IsChecked(i) {
		t.Errorf("state after Check = %v; want Checked", g.State(i))
	}
	g.Uncheck(i)
	if !g.IsUnchecked(i) {
		t.Errorf("state after Uncheck = %v; want Unchecked", g.State(i))
	}
	g.MarkPath(i)
	if !g.IsPath(i) {
		t.Errorf("state after MarkPath = %v; want Path", g.State(i))
	}
}

// TestSetBarrier_Pinned verifies start/end cells refuse the Barrier tag.
func TestSetBarrier_Pinned(t *testing.T) {
	g, err := grid.FromStrings([]string{"S.E"})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	if err = g.SetBarrier(g.StartIndex()); !errors.Is(err, grid.ErrCellPinned) {
		t.Errorf("SetBarrier(start) error = %v; want ErrCellPinned", err)
	}
	if err = g.SetBarrier(g.EndIndex()); !errors.Is(err, grid.ErrCellPinned) {
		t.Errorf("SetBarrier(end) error = %v; want ErrCellPinned", err)
	}
	mid := g.IndexOf(1, 0)
	if err = g.SetBarrier(mid); err != nil {
		t.Fatalf("SetBarrier(mid) error: %v", err)
	}
	if !g.IsBarrier(mid) {
		t.Error("mid cell should be a barrier")
	}
	g.ClearBarrier(mid)
	if !g.IsUnchecked(mid) {
		t.Errorf("state after ClearBarrier = %v; want Unchecked", g.State(mid))
	}
}

// TestSetStart_Relocates verifies moving the start releases the old cell.
func TestSetStart_Relocates(t *testing.T) {
	g, err := grid.FromStrings([]string{"S..", "..E"})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	old := g.StartIndex()
	next := g.IndexOf(1, 0)
	g.SetStart(next)
	if g.StartIndex() != next {
		t.Errorf("StartIndex = %d; want %d", g.StartIndex(), next)
	}
	if !g.IsUnchecked(old) {
		t.Errorf("old start state = %v; want Unchecked", g.State(old))
	}
}

// TestResetSearch clears transient tags but keeps barriers and endpoints.
func TestResetSearch(t *testing.T) {
	g, err := grid.FromStrings([]string{"S.#", "..E"})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	g.Check(g.IndexOf(1, 0))
	g.MarkPath(g.IndexOf(0, 1))

	g.ResetSearch()

	if !g.IsUnchecked(g.IndexOf(1, 0)) || !g.IsUnchecked(g.IndexOf(0, 1)) {
		t.Error("transient tags should reset to Unchecked")
	}
	if !g.IsBarrier(g.IndexOf(2, 0)) {
		t.Error("barrier must survive ResetSearch")
	}
	if !g.IsStart(g.StartIndex()) || !g.IsEnd(g.EndIndex()) {
		t.Error("start/end must survive ResetSearch")
	}
}

// TestMustIndex_Panics verifies out-of-range indices are programmer errors.
func TestMustIndex_Panics(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("State(99) should panic on out-of-range index")
		}
	}()
	g.State(grid.Index(99))
}

//----------------------------------------------------------------------------//
// Reachability Tests
//----------------------------------------------------------------------------//

// TestConnectedFrom verifies barrier walls split the reachable set.
func TestConnectedFrom(t *testing.T) {
	g, err := grid.FromStrings([]string{
		"S.#.",
		"..#.",
		"..#E",
	})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	reach := g.ConnectedFrom(g.StartIndex())
	if len(reach) != 6 {
		t.Errorf("reachable cells = %d; want 6 (left of the wall)", len(reach))
	}
	for _, i := range reach {
		if i == g.EndIndex() {
			t.Error("end lies behind the wall and must be unreachable")
		}
	}
}

// TestConnectedFrom_BarrierStart returns nil for an impassable origin.
func TestConnectedFrom_BarrierStart(t *testing.T) {
	g, err := grid.FromStrings([]string{"#."})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	if reach := g.ConnectedFrom(g.IndexOf(0, 0)); reach != nil {
		t.Errorf("ConnectedFrom(barrier) = %v; want nil", reach)
	}
}
