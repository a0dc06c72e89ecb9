// Package matrix offers a dense real-valued matrix value type and the
// operations around it.
//
// The matrix package provides:
//
//   - Dense: a rectangular row-major grid of float64 with validated
//     constructors (NewDense/NewZeros, NewFromRows, NewDiagonal, NewScalar,
//     NewIdentity), bounds-checked accessors and shape-preserving mutators.
//   - Arithmetic: Add, Sub, Mul, Scale, Neg — shape-checked, always returning
//     a fresh matrix.
//   - Special operations: Transpose, Trace, Determinant (Gaussian elimination
//     with partial pivoting), Minor, Adjoint (cofactor expansion), Inverse.
//   - Structural predicates: IsSquare, IsSymmetric, IsSkewSymmetric,
//     IsDiagonal, IsScalar, IsIdentity, IsZero, IsSingular.
//
// Every value computed by an operation is rounded to five decimal places
// (see Round), so results compare deterministically with Equal. Values written
// directly through constructors and setters are stored as given.
//
// Errors are package sentinels (ErrZeroDimension, ErrInconsistentColumnSize,
// ErrDimensionMismatch, ErrNonSquare, ErrSingular, ErrIndexOutOfBounds, …),
// wrapped with operation context; match them with errors.Is.
//
// A Dense has no internal locking: treat each value as owned by one
// goroutine at a time, and Clone when sharing is needed.
//
// See the examples in this package for usage patterns.
package matrix
