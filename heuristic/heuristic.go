package heuristic

import (
	"errors"
	"math"

	"github.com/pathlab/lpagrid/grid"
)

// Sentinel errors for heuristic dispatch.
var (
	// ErrMinkowskiOrder indicates a missing or zero Minkowski order parameter.
	ErrMinkowskiOrder = errors.New("heuristic: minkowski order p must be provided and non-zero")
	// ErrGridRequired indicates DynamicManhattan was requested without grid context.
	ErrGridRequired = errors.New("heuristic: dynamic manhattan requires grid context")
)

// singularEps bounds the determinant below which the Mahalanobis
// covariance-like matrix is treated as singular.
const singularEps = 1e-10

// Kind names a heuristic family for dispatch.
type Kind string

const (
	// Manhattan is |dx| + |dy|; also the fallback for unrecognized kinds.
	Manhattan Kind = "manhattan"
	// Euclidean is sqrt(dx² + dy²).
	Euclidean Kind = "euclidean"
	// Chebyshev is max(|dx|, |dy|).
	Chebyshev Kind = "chebyshev"
	// Minkowski is (|dx|^p + |dy|^p)^(1/p); the caller supplies p.
	Minkowski Kind = "minkowski"
	// Mahalanobis scales the deltas by a covariance-like matrix built from
	// them; near-singular matrices yield +Inf.
	Mahalanobis Kind = "mahalanobis"
	// DynamicManhattan is Manhattan plus a penalty counting node A's
	// non-traversable neighbors; it requires grid context.
	DynamicManhattan Kind = "d_manhattan"
)

// ManhattanDistance returns |dx| + |dy|.
func ManhattanDistance(a, b grid.Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// EuclideanDistance returns sqrt(dx² + dy²).
func EuclideanDistance(a, b grid.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevDistance returns max(|dx|, |dy|).
func ChebyshevDistance(a, b grid.Point) float64 {
	return math.Max(math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y)))
}

// MinkowskiDistance returns (|dx|^p + |dy|^p)^(1/p).
// Returns ErrMinkowskiOrder when p == 0; the 1/p exponent would otherwise
// inject NaN/Inf into whatever ordering consumes the estimate.
func MinkowskiDistance(a, b grid.Point, p float64) (float64, error) {
	if p == 0 {
		return 0, ErrMinkowskiOrder
	}
	d1 := math.Pow(math.Abs(float64(a.X-b.X)), p)
	d2 := math.Pow(math.Abs(float64(a.Y-b.Y)), p)

	return math.Pow(d1+d2, 1/p), nil
}

// MahalanobisDistance scales the coordinate deltas by a 2×2 covariance-like
// matrix built from those same deltas. When the matrix determinant falls
// below singularEps the estimate is +Inf (the divide-by-zero guard), never
// NaN.
func MahalanobisDistance(a, b grid.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	// covariance-like matrix: [[dx·dx, dx·dy], [dx·dy, dy·dy]]
	m00, m01, m11 := dx*dx, dx*dy, dy*dy
	if det := m00*m11 - m01*m01; det < singularEps {
		return math.Inf(1)
	}

	return math.Sqrt(dx*dx/m00 + dy*dy/m11)
}

// DynamicManhattanDistance returns the Manhattan distance from a to b plus a
// penalty: the number of a's neighbors that are neither Checked nor
// Unchecked (barriers and other non-traversable tags). Cells surrounded by
// open ground therefore look cheaper than cells hemmed in by walls.
func DynamicManhattanDistance(g *grid.Grid, a, b grid.Index) float64 {
	penalty := 0
	for _, nb := range g.Neighbors(a) {
		if !g.IsChecked(nb) && !g.IsUnchecked(nb) {
			penalty++
		}
	}

	return ManhattanDistance(g.PointOf(a), g.PointOf(b)) + float64(penalty)
}

// Distance dispatches a position-only estimate by Kind. Unrecognized kinds
// fall back to Manhattan. DynamicManhattan cannot be computed from positions
// alone and returns ErrGridRequired; use GridDistance instead.
func Distance(kind Kind, a, b grid.Point, params ...float64) (float64, error) {
	switch kind {
	case Chebyshev:
		return ChebyshevDistance(a, b), nil
	case Euclidean:
		return EuclideanDistance(a, b), nil
	case Manhattan:
		return ManhattanDistance(a, b), nil
	case Minkowski:
		if len(params) == 0 {
			return 0, ErrMinkowskiOrder
		}
		return MinkowskiDistance(a, b, params[0])
	case Mahalanobis:
		return MahalanobisDistance(a, b), nil
	case DynamicManhattan:
		return 0, ErrGridRequired
	default:
		return ManhattanDistance(a, b), nil
	}
}

// GridDistance dispatches an estimate by Kind with grid context, enabling
// DynamicManhattan; position-only kinds route through Distance.
func GridDistance(kind Kind, g *grid.Grid, a, b grid.Index, params ...float64) (float64, error) {
	if kind == DynamicManhattan {
		return DynamicManhattanDistance(g, a, b), nil
	}
	return Distance(kind, g.PointOf(a), g.PointOf(b), params...)
}

// Bind validates kind and params once and returns an estimate closure over
// arena indices, ready for a search engine's hot loop. Parameter errors
// (ErrMinkowskiOrder) surface here rather than mid-search.
func Bind(kind Kind, g *grid.Grid, params ...float64) (func(a, b grid.Index) float64, error) {
	if kind == Minkowski {
		if len(params) == 0 || params[0] == 0 {
			return nil, ErrMinkowskiOrder
		}
	}
	return func(a, b grid.Index) float64 {
		// params validated above; dispatch cannot fail for bound kinds.
		d, _ := GridDistance(kind, g, a, b, params...)
		return d
	}, nil
}
