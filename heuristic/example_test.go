// Package heuristic_test provides runnable examples for the distance
// estimators, runnable via “go test -run Example”.
package heuristic_test

import (
	"fmt"

	"github.com/pathlab/lpagrid/grid"
	"github.com/pathlab/lpagrid/heuristic"
)

// ExampleDistance compares the closed-form kinds on the classic 3-4-5
// triangle.
func ExampleDistance() {
	a := grid.Point{X: 0, Y: 0}
	b := grid.Point{X: 3, Y: 4}

	for _, kind := range []heuristic.Kind{
		heuristic.Manhattan, heuristic.Euclidean, heuristic.Chebyshev,
	} {
		d, err := heuristic.Distance(kind, a, b)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s=%.0f\n", kind, d)
	}
	// Output:
	// manhattan=7
	// euclidean=5
	// chebyshev=4
}

// ExampleDistance_minkowski shows how the order parameter p sweeps the
// estimate between the Manhattan (p=1) and Euclidean (p=2) extremes, and
// that a missing p is rejected up front.
func ExampleDistance_minkowski() {
	a := grid.Point{X: 0, Y: 0}
	b := grid.Point{X: 3, Y: 4}

	for _, p := range []float64{1, 2} {
		d, _ := heuristic.Distance(heuristic.Minkowski, a, b, p)
		fmt.Printf("p=%.0f: %.0f\n", p, d)
	}

	_, err := heuristic.Distance(heuristic.Minkowski, a, b)
	fmt.Println(err)
	// Output:
	// p=1: 7
	// p=2: 5
	// heuristic: minkowski order p must be provided and non-zero
}

// ExampleGridDistance demonstrates the congestion-aware estimate: plain
// Manhattan distance plus one penalty unit per non-traversable neighbor of
// the origin cell.
func ExampleGridDistance() {
	g, err := grid.FromStrings([]string{
		".#.",
		"S..",
		"..E",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// (1,1) sits next to a barrier and the start cell; both count as
	// penalties on top of manhattan((1,1),(2,2)) = 2.
	d, err := heuristic.GridDistance(heuristic.DynamicManhattan, g, g.IndexOf(1, 1), g.EndIndex())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("d_manhattan=%.0f\n", d)
	// Output: d_manhattan=4
}
