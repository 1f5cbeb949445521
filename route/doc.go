// Package route composes matrix and edgefold into the distance-matrix
// workflow: build an N×N matrix of pairwise distances over a fixed element
// set once, then evaluate the total length of any route (a sequence of
// element indices) against it, as an open path or a closed tour.
//
// 🚀 What is a DistanceMatrix?
//
//	A value type owning a dense N×N grid where cell (i,j) holds the
//	distance from element i to element j. The diagonal is fixed to zero —
//	the caller's distance function is never consulted for i == j. Nothing
//	else is assumed: the function need not be symmetric, and no triangle
//	inequality is enforced.
//
// ✨ Key features:
//   - one O(N²) eager build from any element slice + distance function
//   - Length(route, mode): strict left fold of matrix lookups over the
//     route's edges, Acyclic or Cyclic
//   - out-of-range route indices surface matrix.ErrOutOfRange, never a
//     silent wrap
//   - totals stabilized to 1e-9 to keep sums reproducible across platforms
//
// ⚙️ Usage:
//
//	import (
//		"github.com/KiyoMenager/distance-matrix/edgefold"
//		"github.com/KiyoMenager/distance-matrix/geo"
//		"github.com/KiyoMenager/distance-matrix/route"
//	)
//
//	stops := []geo.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 2}}
//	dm, err := route.New(stops, geo.Euclidean)
//	if err != nil { ... }
//
//	open, _ := dm.Length([]int{1, 2, 0}, edgefold.Acyclic)
//	tour, _ := dm.Length([]int{1, 2, 0}, edgefold.Cyclic)
//
// Performance: New is O(N²) distance calls; Length is O(L) lookups for a
// route of length L. The matrix is immutable, so one DistanceMatrix may
// serve any number of concurrent Length calls.
package route
