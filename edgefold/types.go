// Package edgefold defines the traversal mode enum and function types.
package edgefold

import "fmt"

// Mode selects how a sequence's edges are enumerated.
//
//   - Acyclic — treat the sequence as an open path: L-1 edges for a
//     sequence of length L, no edge from the last element back to the first.
//   - Cyclic  — treat the sequence as a closed tour: the acyclic edges plus
//     the wrap-around edge (seq[L-1], seq[0]); a single element is its own
//     predecessor and successor, yielding exactly one self-edge.
//
// The set is closed. Map and Reduce switch over it exhaustively and panic
// on any other value — an out-of-range Mode is a programmer error, never a
// runtime condition.
type Mode int

const (
	// Acyclic mode: open path, no wrap-around edge. This is the zero value.
	Acyclic Mode = iota

	// Cyclic mode: closed tour, the last element connects back to the first.
	Cyclic
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case Acyclic:
		return "Acyclic"
	case Cyclic:
		return "Cyclic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// assertValid panics on values outside the closed {Acyclic, Cyclic} set.
func (m Mode) assertValid() {
	if m != Acyclic && m != Cyclic {
		panic(fmt.Sprintf("edgefold: unknown mode %d", int(m)))
	}
}

// MapFunc computes one result per edge from its endpoints.
type MapFunc[E, R any] func(pred, succ E) R

// ReduceFunc folds one edge into the running accumulator.
type ReduceFunc[E, A any] func(pred, succ E, acc A) A
