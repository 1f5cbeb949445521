// Package edgefold walks the edges of an ordered sequence: every pair of
// consecutive elements and, in cyclic mode, the wrap-around pair closing
// the last element back onto the first.
//
// 🚀 What is an edge walk?
//
//	Given a sequence [a, b, c], its edges are (a,b) and (b,c) when the
//	sequence is an open path, plus (c,a) when it is a closed tour.
//	edgefold applies a caller-supplied function to each edge, either
//	collecting one result per edge (Map) or threading an accumulator
//	through all of them left to right (Reduce).
//
// ✨ Key features:
//   - generic over element, result and accumulator types
//   - Acyclic / Cyclic traversal modes as a closed enum
//   - exact edge order preserved — it is observable and tested
//   - Edges helper to materialize the pair list itself
//   - SumBy shorthand for numeric per-edge weights
//
// ⚙️ Usage:
//
//	import "github.com/KiyoMenager/distance-matrix/edgefold"
//
//	total := edgefold.Reduce([]int{1, 2, 3}, 0,
//		func(u, v, acc int) int { return acc + u + v },
//		edgefold.Cyclic)
//	// edges (1,2), (2,3), (3,1) → total == 12
//
// Degenerate inputs are well-defined: an empty sequence has no edges in
// either mode; a single element has no edges as a path but exactly one
// self-edge (x, x) as a tour.
//
// Performance: O(L) function applications for a sequence of length L,
// O(1) extra space for Reduce. Reduce is strictly sequential — each step
// consumes the previous accumulator.
package edgefold
