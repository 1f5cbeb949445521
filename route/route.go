package route

import (
	"errors"
	"math"

	"github.com/KiyoMenager/distance-matrix/edgefold"
	"github.com/KiyoMenager/distance-matrix/matrix"
)

// ErrNilDistanceFunc indicates that New was invoked without a distance
// function while off-diagonal cells exist to compute.
var ErrNilDistanceFunc = errors.New("route: nil distance function")

// roundScale controls total-length stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting comparisons.
const roundScale = 1e9

// DistanceFunc computes the distance from a to b. It is never invoked for
// an element against itself, need not be symmetric, and is trusted to be
// total — any panic inside it propagates unmodified.
type DistanceFunc[E any] func(a, b E) float64

// DistanceMatrix owns an immutable N×N grid of pairwise distances and
// evaluates route lengths against it. The zero value is not usable; build
// one with New.
type DistanceMatrix struct {
	dist *matrix.Dense[float64]
}

// New builds the N×N distance matrix over elems.
// Cell (i,j) is 0 when i == j, otherwise dist(elems[i], elems[j]) — the
// diagonal short-circuits before the distance function, so dist need not
// behave on equal arguments. Options forward to matrix.Build (e.g.
// matrix.WithWorkers for a concurrent fill of large sets).
//
// N == 0 is legal and yields an empty matrix.
// Complexity: O(N²) distance calls, O(N²) memory.
func New[E any](elems []E, dist DistanceFunc[E], opts ...matrix.Option) (*DistanceMatrix, error) {
	n := len(elems)
	if dist == nil && n > 1 {
		return nil, ErrNilDistanceFunc
	}

	m, err := matrix.Build(n, n, func(i, j int) float64 {
		if i == j {
			return 0 // diagonal fixed to zero, dist never consulted
		}
		return dist(elems[i], elems[j])
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &DistanceMatrix{dist: m}, nil
}

// Size returns N, the number of elements the matrix was built over.
func (dm *DistanceMatrix) Size() int {
	return dm.dist.Rows()
}

// At returns the stored distance from element i to element j.
// Out-of-range indices surface matrix.ErrOutOfRange.
// Complexity: O(1).
func (dm *DistanceMatrix) At(i, j int) (float64, error) {
	return dm.dist.At(i, j)
}

// step threads the running total and the first lookup failure through the
// edge fold. Once err is set, remaining edges are skipped.
type step struct {
	sum float64
	err error
}

// Length evaluates the total distance of a route — an ordered sequence of
// element indices — under the given traversal mode.
//
// The total is edgefold.Reduce over the route's edges with matrix lookups
// as the combining function: Acyclic folds L-1 consecutive-pair edges,
// Cyclic adds the wrap-around edge back to the route's first index.
// Degenerate routes follow the fold: length 0, or length 1 acyclic, cost 0;
// a single-index tour costs At(i, i) == 0.
//
// Any index outside [0, N) aborts the fold and returns
// matrix.ErrOutOfRange — a malformed route is a programming error in the
// caller, not a value.
//
// Complexity: O(L) lookups for a route of length L.
func (dm *DistanceMatrix) Length(route []int, mode edgefold.Mode) (float64, error) {
	out := edgefold.Reduce(route, step{}, func(i, j int, acc step) step {
		if acc.err != nil {
			return acc // fold already failed, carry the error through
		}
		w, err := dm.dist.At(i, j)
		if err != nil {
			return step{err: err}
		}
		acc.sum += w

		return acc
	}, mode)
	if out.err != nil {
		return 0, out.err
	}

	return round1e9(out.sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps totals stable across platforms without affecting correctness.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
