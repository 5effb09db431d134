package lpastar

import (
	"sync"

	"github.com/pathlab/lpagrid/grid"
)

// CountPathNodes walks a read-only predecessor arena (prev[i] is the cell
// preceding i, grid.NoIndex for none) from `from` toward `target` and counts
// the intermediate cells, excluding both endpoints. The walk stops at the
// target, at a cell with no predecessor, or after visiting every cell once
// (cycle guard).
func CountPathNodes(prev []grid.Index, from, target grid.Index) int {
	count := 0
	current := from
	for steps := 0; steps <= len(prev); steps++ {
		p := prev[current]
		if p == grid.NoIndex || p == target {
			break
		}
		current = p
		count++
	}

	return count
}

// CountSplit counts the total length, in cells, of a path formed by two
// segments meeting at `target`: one walked back from a, one from b, plus the
// meeting cell itself. The two walks run on separate goroutines writing to
// disjoint result slots over the shared read-only predecessor arena; the
// result is identical to running both walks sequentially.
func CountSplit(prev []grid.Index, a, b, target grid.Index) int {
	var sizes [2]int
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sizes[0] = CountPathNodes(prev, a, target)
	}()
	go func() {
		defer wg.Done()
		sizes[1] = CountPathNodes(prev, b, target)
	}()
	wg.Wait()

	return sizes[0] + sizes[1] + 1
}
