// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative. Zero rows or columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0, rows) / [0, cols). Public indexers MUST return this, not panic,
	// and must never wrap or clamp the index.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilGenerator indicates that Build was invoked without a generator
	// for a non-empty shape.
	ErrNilGenerator = errors.New("matrix: nil generator")
)
