// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Dense: element-wise
// addition and subtraction, matrix multiplication, scalar scaling, negation
// and transpose. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Define operation tags and the shared error wrapper used by every kernel.
//   - Apply the rounding convention exactly once per produced value.
//
// Notes:
//   - Operands are never mutated; every result is a freshly allocated Dense that
//     inherits the numeric policy of the first operand.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product and diagonal accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opNeg         = "Neg"
	opTranspose   = "Transpose"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opMinor       = "Minor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = round(a + sign*b) for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result like a.
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - a + (-1)*b is bit-identical to a - b: negation is exact in IEEE 754.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseLike(a, a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = Round(a.data[idx] + sign*b.data[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B, rounded to five decimals.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B, rounded to five decimals.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each cell accumulates its dot product in k
//     order and is rounded once after the sum is complete.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - No zero-skipping: every term enters the sum so the accumulation order is
//     fixed regardless of the data.
//   - Products are rounded to float64 before accumulation on every GOARCH.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDenseLike(a, aRows, bCols)
	var (
		i, j, k    int
		rowOffsetA int
		sum        float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				// explicit conversion forbids FMA fusion on arm64/ppc64/s390x
				sum += float64(a.data[rowOffsetA+k] * b.data[k*bCols+j])
			}
			res.data[i*bCols+j] = Round(sum)
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are round(alpha * m[i,j]).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDenseLike(m, m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = Round(alpha * v)
	}

	return res, nil
}

// Neg returns -m, defined as Scale(m, -1).
// Errors: ErrNilMatrix.
func Neg(m *Dense) (*Dense, error) {
	res, err := Scale(m, -1)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with res[i][j] = m[j][i].
// Values are copied as-is (no rounding); any shape is accepted.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDenseLike(m, cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
