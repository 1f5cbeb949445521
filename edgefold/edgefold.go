package edgefold

import "golang.org/x/exp/constraints"

// Map applies fn to every edge of seq in traversal order and returns one
// result per edge.
//
// Edge enumeration:
//
//	Acyclic: (seq[0],seq[1]), (seq[1],seq[2]), …, (seq[L-2],seq[L-1])
//	Cyclic:  the acyclic edges plus (seq[L-1], seq[0]); for L == 1 the
//	         single element pairs with itself: [fn(seq[0], seq[0])].
//
// The result order matches edge traversal order exactly. An empty sequence
// (and, acyclically, a single element) yields an empty, non-nil slice.
// The wrap edge uses the first element as captured at call entry; seq is
// treated as immutable for the duration of the call.
//
// Complexity: O(L) applications of fn, one allocation for the result.
func Map[E, R any](seq []E, fn MapFunc[E, R], mode Mode) []R {
	mode.assertValid()

	n := len(seq)
	switch {
	case n == 0:
		return []R{}
	case n == 1:
		if mode == Acyclic {
			return []R{} // a lone element has no path edges
		}
		return []R{fn(seq[0], seq[0])} // self-edge closes the tour
	}

	edges := n - 1
	if mode == Cyclic {
		edges = n
	}

	out := make([]R, 0, edges)
	var i int
	for i = 0; i < n-1; i++ {
		out = append(out, fn(seq[i], seq[i+1]))
	}
	if mode == Cyclic {
		out = append(out, fn(seq[n-1], seq[0])) // wrap-around edge
	}

	return out
}

// Reduce folds fn over every edge of seq, left to right, in exactly the
// order Map would visit them, threading the accumulator through each step.
//
// Degenerate cases mirror Map: no edges means init is returned unchanged;
// a single element in Cyclic mode folds the one self-edge:
// fn(seq[0], seq[0], init).
//
// Reduce is a strict left fold — no early termination, no parallelism;
// each step depends on the prior accumulator.
//
// Complexity: O(L) applications of fn, O(1) extra space.
func Reduce[E, A any](seq []E, init A, fn ReduceFunc[E, A], mode Mode) A {
	mode.assertValid()

	n := len(seq)
	acc := init
	switch {
	case n == 0:
		return acc
	case n == 1:
		if mode == Acyclic {
			return acc // no edges to fold
		}
		return fn(seq[0], seq[0], acc)
	}

	var i int
	for i = 0; i < n-1; i++ {
		acc = fn(seq[i], seq[i+1], acc)
	}
	if mode == Cyclic {
		acc = fn(seq[n-1], seq[0], acc) // wrap-around edge, original first element
	}

	return acc
}

// Edges materializes the edge list itself: one (pred, succ) pair per edge,
// in traversal order. Handy when a route's edges are consumed elsewhere
// (rendering, validation, delta evaluation).
//
// Complexity: O(L), one allocation.
func Edges[E any](seq []E, mode Mode) [][2]E {
	return Map(seq, func(pred, succ E) [2]E {
		return [2]E{pred, succ}
	}, mode)
}

// SumBy folds a numeric per-edge weight over seq and returns the total.
// It is Reduce specialized to addition from a zero start — the common
// shape for route lengths and tour costs.
//
// Complexity: O(L) applications of weight, O(1) extra space.
func SumBy[E any, T constraints.Integer | constraints.Float](seq []E, weight MapFunc[E, T], mode Mode) T {
	var zero T
	return Reduce(seq, zero, func(pred, succ E, acc T) T {
		return acc + weight(pred, succ)
	}, mode)
}
