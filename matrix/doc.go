// Package matrix provides a dense, flat, row-major two-dimensional
// container built once from a generator function.
//
// 🚀 What is matrix.Dense?
//
//	A fixed-size, zero-indexed grid of cells of any type T, stored in a
//	single flat slice (index of (r,c) = r*cols + c) for cache friendliness.
//	The matrix is filled exactly once at construction time, by invoking a
//	caller-supplied generator for every cell, and is immutable afterwards.
//
// ✨ Key features:
//   - generator-driven construction: Build(rows, cols, gen)
//   - O(1) bounds-checked lookup via At(row, col)
//   - optional concurrent fill for large grids (WithWorkers)
//   - strict sentinel errors, no panics on user input
//
// ⚙️ Usage:
//
//	import "github.com/KiyoMenager/distance-matrix/matrix"
//
//	m, err := matrix.Build(3, 3, func(r, c int) float64 {
//		return float64(r * c)
//	})
//	if err != nil {
//		// handle ErrInvalidDimensions
//	}
//	v, err := m.At(1, 2) // 2, nil
//
// Performance:
//
//   - Build: O(rows·cols) generator calls, one allocation.
//   - At:    O(1), no allocation.
//
// Degenerate shapes are legal: rows == 0 or cols == 0 yields an empty
// matrix, not an error. Only negative dimensions are rejected.
package matrix
