// Package dijkstra provides the from-scratch uniform-cost baseline for grid
// search: classic Dijkstra with unit edge weights over a grid.Grid arena.
//
// Overview:
//
//   - Distances computes the minimum number of steps from a source cell to
//     every reachable cell, skipping barrier cells, in O(N·d log N) time.
//   - It relies on a min-heap (priority queue) under the lazy decrease-key
//     strategy: improved distances push duplicates, stale entries are skipped.
//   - Supports optional predecessor tracking and a distance cap.
//
// When to use:
//
//   - As the exact, non-incremental reference: lpastar must agree with it on
//     every static grid, and the lpastar tests hold it to that.
//   - When the grid changes wholesale between queries and incremental repair
//     buys nothing.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:    nil *grid.Grid passed to Distances.
//   - ErrBadSource:  source index unset, out of the arena, or a barrier.
//   - ErrBadMaxDistance: negative MaxDistance (panics in the constructor).
//
// Thread safety:
//
//   - Distances only reads the grid; concurrent calls over the same grid are
//     safe as long as nothing mutates cell states meanwhile.
//
// See also:
//
//   - lpastar.Search: the incremental engine this package cross-validates.
//   - grid.Grid: arena construction and cell-state editing.
package dijkstra
