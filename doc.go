// Package lpagrid is an incremental shortest-path toolkit for 2D grids,
// built around Lifelong Planning A* (LPA*).
//
// 🚀 What is lpagrid?
//
//	A small, focused library that repairs shortest paths instead of
//	recomputing them:
//		• grid/      — flat node arena: cell states, index-based adjacency,
//		               barrier editing, reachability
//		• heuristic/ — pluggable distance estimates: Manhattan, Euclidean,
//		               Chebyshev, Minkowski(p), Mahalanobis, DynamicManhattan
//		• lpastar/   — the incremental LPA* engine: g/rhs bookkeeping,
//		               indexed open list, cooperative cancellation, hooks
//		• dijkstra/  — from-scratch uniform-cost baseline for cross-checks
//
// ✨ Why choose lpagrid?
//
//   - Incremental by design – after a barrier edit, only the affected region
//     of the shortest-path tree is repaired
//   - Hook-friendly – OnStep/OnPathNode callbacks slot straight into
//     step-by-step renderers without coupling the engine to any UI
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	S . . .        S → → ↓
//	. # # .   ⇒    .      ↓
//	. . . E        .      E
//
//	a 4×3 grid where LPA* routes around the wall; drop one more barrier
//	and the next Run repairs just the corner it broke.
//
// Dive into the per-package docs for options, error taxonomies and
// worked examples.
//
//	go get github.com/pathlab/lpagrid
package lpagrid
