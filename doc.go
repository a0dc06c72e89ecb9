// Package lvmatrix is a small, dependency-light library of dense real-valued
// matrices with exact, reproducible arithmetic.
//
// What is lvmatrix/matrix?
//
//	A value-type matrix package that brings together:
//		• Construction: zero, from rows, diagonal, scalar, identity
//		• Safe element access: At/Set/Row/Col never panic, they return errors
//		• Arithmetic: Add, Sub, Mul, Scale, Neg, Transpose
//		• Special operations: Trace, Determinant, Minor, Adjoint, Inverse
//		• Structural predicates: square, symmetric, diagonal, identity, singular
//		• Aligned text rendering via Dense.String
//
// Numeric contract
//
//	Every value produced by an operation is rounded once to five decimal
//	places (half away from zero). Raw writes through Set/SetRow/SetData are
//	stored as given. Determinant uses Gaussian elimination with partial
//	pivoting; Inverse is the classical adjugate over the determinant.
//
// Layout
//
//	matrix/   — Dense type, kernels, validators, options and sentinel errors
//	examples/ — runnable walkthrough
//
// Errors are package sentinels (matrix.ErrNonSquare, matrix.ErrSingular, ...)
// wrapped with the failing operation; match them with errors.Is.
package lvmatrix
