// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Kernels wrap with matrixErrorf(op, ErrX) and accessors with denseErrorf(...);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (zero/ragged) -> index -> dimension mismatch -> square -> singular.

var (
	// ErrZeroDimension is returned when a requested shape has a zero (or negative)
	// row or column count, or when a diagonal is built from an empty slice.
	ErrZeroDimension = errors.New("matrix: dimensions must be > 0")

	// ErrInconsistentColumnSize indicates that supplied row data is not rectangular.
	ErrInconsistentColumnSize = errors.New("matrix: inconsistent column size")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a
	// replacement row/column/grid that disagrees with the fixed shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly 0.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIndexOutOfBounds indicates that a row or column index is outside [0, dim).
	// Public indexers (At/Set/Row/Col/...) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix whose
	// numeric policy requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// BACKWARD-COMPATIBILITY ALIASES.
// They are semantically identical sentinels, so errors.Is matches either name.

// ErrInvalidDimensions is the historical name of ErrZeroDimension.
var ErrInvalidDimensions = ErrZeroDimension // Deprecated: use ErrZeroDimension.

// ErrOutOfRange is the historical name of ErrIndexOutOfBounds.
var ErrOutOfRange = ErrIndexOutOfBounds // Deprecated: use ErrIndexOutOfBounds.

// ErrNonSquareMatrix aliases ErrNonSquare.
var ErrNonSquareMatrix = ErrNonSquare // Deprecated: use ErrNonSquare.

// ErrSingularMatrix aliases ErrSingular.
var ErrSingularMatrix = ErrSingular // Deprecated: use ErrSingular.
