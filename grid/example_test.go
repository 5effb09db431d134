// Package grid_test provides runnable examples for arena construction and
// cell-state editing, runnable via “go test -run Example”.
package grid_test

import (
	"fmt"

	"github.com/pathlab/lpagrid/grid"
)

// ExampleFromStrings demonstrates parsing a rune map and reading back cell
// states through the index arena.
func ExampleFromStrings() {
	// 1) Parse a 4×2 arena: start, a wall cell, and the end.
	g, err := grid.FromStrings([]string{
		"S.#.",
		"...E",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Dimensions and the pinned cells.
	fmt.Printf("size=%dx%d start=%v end=%v\n",
		g.Width(), g.Height(), g.PointOf(g.StartIndex()), g.PointOf(g.EndIndex()))

	// 3) Each cell carries exactly one state tag.
	fmt.Println("(2,0):", g.State(g.IndexOf(2, 0)))
	fmt.Println("(1,1):", g.State(g.IndexOf(1, 1)))
	// Output:
	// size=4x2 start={0 0} end={3 1}
	// (2,0): Barrier
	// (1,1): Unchecked
}

// ExampleGrid_Neighbors shows the precomputed 4-connected adjacency. Barrier
// cells stay in the lists; traversal filters decide what is passable.
func ExampleGrid_Neighbors() {
	g, err := grid.FromStrings([]string{
		"S#.",
		"..E",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Corner cell (0,0): only right and down exist, and the right neighbor
	// is the barrier.
	for _, nb := range g.Neighbors(g.IndexOf(0, 0)) {
		fmt.Printf("%v barrier=%v\n", g.PointOf(nb), g.IsBarrier(nb))
	}
	// Output:
	// {1 0} barrier=true
	// {0 1} barrier=false
}

// ExampleGrid_SetBarrier demonstrates barrier editing and the pinned-cell
// guard on start and end.
func ExampleGrid_SetBarrier() {
	g, err := grid.FromStrings([]string{"S.E"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 1) The middle cell can be toggled freely.
	mid := g.IndexOf(1, 0)
	fmt.Println("block mid:", g.SetBarrier(mid), "state:", g.State(mid))
	g.ClearBarrier(mid)
	fmt.Println("clear mid:", g.State(mid))

	// 2) The start cell is pinned; relocate it before blocking.
	fmt.Println("block start:", g.SetBarrier(g.StartIndex()))
	// Output:
	// block mid: <nil> state: Barrier
	// clear mid: Unchecked
	// block start: grid: cannot barrier the start or end cell
}
