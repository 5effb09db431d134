// Package lpastar implements Lifelong Planning A* (LPA*), an incremental
// shortest-path search over a grid.Grid that repairs a previously computed
// shortest-path tree after localized edits instead of recomputing from
// scratch.
//
// What:
//
//   - Search owns two cost estimates per cell: g (best known cost from
//     start) and rhs (one-step lookahead from neighbors). A cell is locally
//     consistent iff g == rhs; the open list holds exactly the inconsistent
//     cells, ordered by a two-part Key.
//   - Run drives the main loop until the end cell is consistent and no
//     queued key can still improve it, then reconstructs the path.
//   - SetBarrier/ClearBarrier apply a localized edit and re-establish the
//     queue invariant, so the next Run repairs only the affected region.
//     This is the defining property of LPA*: unrelated g/rhs values survive
//     the edit untouched.
//
// Key ordering:
//
//	key(n) = (min(g,rhs) + h(n, end), min(g,rhs))
//
// compared lexicographically. Keys are recomputed fresh at insertion and at
// every termination check; the open list re-keys entries on every vertex
// update, so its minimum is always trustworthy.
//
// Complexity:
//
//   - Run: O(K log N) where K is the number of queue operations triggered by
//     the edit (K ≪ N for localized changes) and N the cell count.
//   - SetBarrier/ClearBarrier: O(d log N), d = neighbors per cell.
//
// Outcomes:
//
//   - StatusConverged: g[end] is the shortest-path cost, Path is populated.
//   - StatusNoPath: the open list drained while end stayed unreachable;
//     Cost is +Inf. Not an error.
//   - StatusCancelled: the injected context fired; g/rhs are void. The
//     context error is returned alongside.
//
// Errors:
//
//   - ErrNilGrid, ErrNoStart, ErrNoEnd: invalid grid wiring at New.
//   - ErrPathDiverged: converged tree had a dead end during reconstruction.
package lpastar
