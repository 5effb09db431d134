// Package heuristic provides the pluggable distance estimates used to guide
// grid search, selected by Kind.
//
// What:
//
//   - Six estimate families: Manhattan (default), Euclidean, Chebyshev,
//     Minkowski(p), Mahalanobis, and DynamicManhattan.
//   - Distance works on raw Points; GridDistance adds grid context, which
//     DynamicManhattan needs to inspect node neighborhoods.
//   - Bind validates a Kind and its parameters once and returns a closure
//     suitable for a search engine's hot loop.
//
// Guarantees:
//
//   - Every estimate is a pure function of its inputs, safe for concurrent
//     use without synchronization.
//   - Every estimate is ≥ 0. The single documented exception is Mahalanobis,
//     which returns +Inf when its covariance-like matrix is near-singular;
//     it never produces NaN.
//   - Degenerate parameters fail fast: Minkowski with p == 0 (or no p at
//     all) returns ErrMinkowskiOrder instead of propagating NaN into a
//     priority-queue comparator.
//
// Errors:
//
//   - ErrMinkowskiOrder: Minkowski order parameter missing or zero.
//   - ErrGridRequired: DynamicManhattan requested without grid context.
package heuristic
