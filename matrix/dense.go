// Package matrix: Dense is the concrete row-major implementation.
// Cells live in a single flat slice; the matrix is constructed once from a
// generator function and never mutated afterwards.

package matrix

import "fmt"

// Generator maps an in-bounds (row, col) pair to the cell value stored at
// that position. Build invokes it exactly once per cell.
type Generator[T any] func(row, col int) T

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A Dense is immutable after Build returns; concurrent readers never require
// locking because construction is a single atomic handoff.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// Build creates an r×c Dense matrix by invoking gen once for every cell.
// Stage 1 (Validate): rows and cols must be >= 0; gen must be non-nil
// unless the shape is empty.
// Stage 2 (Fill): populate the flat backing slice — sequentially in
// row-major order by default, or on a bounded worker pool when
// WithWorkers was supplied (cells are independent, so parallel fill is
// safe; every cell is written before Build returns).
// Stage 3 (Finalize): return the immutable Dense.
// Complexity: O(r*c) generator calls, O(r*c) memory.
func Build[T any](rows, cols int, gen Generator[T], opts ...Option) (*Dense[T], error) {
	// Validate shape: only negative dimensions are a contract violation.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	size := rows * cols
	if gen == nil && size > 0 {
		return nil, ErrNilGenerator
	}

	o := gatherOptions(opts...)
	data := make([]T, size)

	if o.workers > 1 && rows > 1 {
		fillParallel(data, rows, cols, gen, o.workers)
	} else {
		fillSequential(data, rows, cols, gen)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// fillSequential writes every cell in row-major order, one generator call
// per cell.
func fillSequential[T any](data []T, rows, cols int, gen Generator[T]) {
	var r, c int
	for r = 0; r < rows; r++ {
		base := r * cols // row offset into the flat slice
		for c = 0; c < cols; c++ {
			data[base+c] = gen(r, c)
		}
	}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Clone returns a deep copy of the Dense matrix.
// The copy shares no storage with the original.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["
		for j = 0; j < m.c; j++ { // iterate over columns
			s += fmt.Sprintf("%v", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
