// Package grid models a rectangular 2D search grid as a flat node arena,
// the shared substrate for the lpastar and dijkstra packages.
//
// What:
//
//   - Grid stores one mutually exclusive State tag per cell (Unchecked,
//     Checked, Start, End, Path, Barrier) in a flat slice keyed by Index.
//   - Adjacency is precomputed as index lists (Conn4 default, Conn8 option),
//     so neighbor traversal never allocates and never chases pointers.
//   - Barriers stay in the adjacency lists; traversal code filters them by
//     state. This keeps topology immutable while obstacles toggle, which is
//     what makes incremental replanning cheap.
//
// Why:
//
//   - Search engines need stable node identity across edits; a flat Index
//     (y*Width+x) gives O(1) identity without reference hashing.
//   - The same arena backs repeated searches: ResetSearch clears transient
//     Checked/Path tags while preserving barriers, start and end.
//
// Complexity:
//
//   - New/FromStrings: O(W×H×d) time, O(W×H×d) memory (d = 4 or 8).
//   - All queries and mutators: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or no rows/columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadRune: unrecognized cell rune in FromStrings.
//   - ErrDuplicateStart / ErrDuplicateEnd: more than one 'S' or 'E'.
//   - ErrCellPinned: attempt to barrier the start or end cell.
package grid
