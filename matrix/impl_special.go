// SPDX-License-Identifier: MIT
// Package matrix - special operations: Trace, Determinant, Minor, Adjoint, Inverse.
//
// Purpose:
//   - Determinant via Gaussian elimination with partial pivoting (n >= 3),
//     closed forms for n = 1 and n = 2.
//   - Adjoint (adjugate) via cofactor expansion: one minor determinant per cell,
//     computed with the same determinant routine, then transposed.
//   - Inverse composed from the two: adj(A) / det(A).
//
// Determinism & numeric policy:
//   - Elimination runs on a private copy; the input is never mutated.
//   - Rounding to five decimals happens once per produced value: at the end of
//     the determinant (never per elimination step), per cofactor (through the
//     minor's determinant) and per inverse cell (through Scale).
//   - The 1×1 conventions are kept as-is: det = the element (unrounded),
//     adj = [[1]], so inverse = [[1/element]].
//
// Complexity:
//   - Determinant O(n^3). Adjoint O(n^2) determinants of size n-1, i.e. O(n^5);
//     cofactor expansion is kept over an LU-based adjugate because the library
//     targets small, interactively entered matrices and the cofactor form maps
//     one-to-one onto the definition.

package matrix

import (
	"fmt"
	"math"
)

// ZeroDeterminant is the exact value that marks a matrix as singular.
const ZeroDeterminant = 0.0

// Trace returns the rounded sum of the main diagonal.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return Round(sum), nil
}

// Determinant computes det(m).
// MAIN DESCRIPTION:
//   - 1×1: the single element, returned unrounded.
//   - 2×2: ad − bc, rounded.
//   - n×n, n ≥ 3: partial-pivot Gaussian elimination to upper-triangular form;
//     product of the diagonal, sign flipped for an odd number of row swaps,
//     rounded once at the end.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinantOf(m.data, m.r), nil
}

// determinantOf is the unchecked determinant of an n×n row-major buffer.
// It never writes into a.
func determinantOf(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return Round(float64(a[0]*a[3]) - float64(a[1]*a[2]))
	default:
		return eliminate(a, n)
	}
}

// eliminate reduces a copy of a to upper-triangular form and returns the
// rounded product of its diagonal.
// Implementation:
//   - Stage 1: for each pivot column, scan rows col..n-1 and keep the first row
//     whose |value| is strictly larger than the best so far (starting from the
//     diagonal entry); swap it into place and count the swap.
//   - Stage 2: for every lower row with a non-zero entry in the pivot column,
//     subtract (entry/pivot) × pivot row over all n columns. Rows whose entry is
//     already exactly 0 are skipped.
//   - Stage 3: multiply the diagonal, negate on odd parity, round.
//
// Notes:
//   - A zero pivot can only be selected when the whole column below it is 0, in
//     which case every lower row is skipped and no division happens.
//   - Explicit float64 conversions keep multiply-then-subtract unfused.
func eliminate(a []float64, n int) float64 {
	u := make([]float64, len(a))
	copy(u, a)

	var (
		col, row, i    int
		pivotRow, swap int
		pivot, e, f    float64
		pivotBase      int
		rowBase        int
	)
	for col = 0; col < n; col++ {
		pivotRow = col
		pivot = u[col*n+col]
		for row = col; row < n; row++ {
			e = u[row*n+col]
			if math.Abs(e) > math.Abs(pivot) {
				pivot = e
				pivotRow = row
			}
		}
		if pivotRow != col {
			swapRows(u, n, col, pivotRow)
			swap++
		}

		pivotBase = col * n
		for row = col + 1; row < n; row++ {
			rowBase = row * n
			e = u[rowBase+col]
			if e == 0 {
				continue
			}
			f = e / u[pivotBase+col]
			for i = 0; i < n; i++ {
				u[rowBase+i] -= float64(f * u[pivotBase+i])
			}
		}
	}

	det := 1.0
	for i = 0; i < n; i++ {
		det *= u[i*n+i]
	}
	if swap%2 == 1 {
		det = -det
	}

	return Round(det)
}

// swapRows exchanges rows r1 and r2 of an n-column row-major buffer in place.
func swapRows(u []float64, n, r1, r2 int) {
	b1, b2 := r1*n, r2*n
	for j := 0; j < n; j++ {
		u[b1+j], u[b2+j] = u[b2+j], u[b1+j]
	}
}

// Minor returns the (n-1)×(n-1) sub-matrix of m with row and col deleted.
// The result is a fresh allocation carrying m's numeric policy.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrIndexOutOfBounds when row or col is outside [0, n).
//   - ErrZeroDimension for a 1×1 input (its minor would be empty).
//
// Complexity: O(n^2).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	n := m.r
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrZeroDimension)
	}

	res := newDenseLike(m, n-1, n-1)
	res.data = minorOf(m.data, n, row, col)

	return res, nil
}

// minorOf copies a without row skipRow and column skipCol into a new
// (n-1)×(n-1) row-major buffer.
func minorOf(a []float64, n, skipRow, skipCol int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	var i, j, base int
	for i = 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		base = i * n
		for j = 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			out = append(out, a[base+j])
		}
	}

	return out
}

// Adjoint returns the adjugate of m: the transpose of its cofactor matrix.
// MAIN DESCRIPTION:
//   - 1×1: [[1]] by convention, whatever the element.
//   - 2×2: [[d, -b], [-c, a]] (values copied, no rounding).
//   - n×n, n ≥ 3: cofactor(i,j) = (-1)^(i+j) · det(minor(i,j)), where each minor
//     determinant uses determinantOf recursively; result = cofactorsᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2 · (n-1)^3), Space O(n^2).
func Adjoint(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	n := m.r
	switch n {
	case 1:
		res := newDenseLike(m, 1, 1)
		res.data[0] = 1.0

		return res, nil
	case 2:
		a := m.data
		res := newDenseLike(m, 2, 2)
		res.data[0], res.data[1] = a[3], -a[1]
		res.data[2], res.data[3] = -a[2], a[0]

		return res, nil
	}

	cof := newDenseLike(m, n, n)
	var i, j int
	var minor float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minor = determinantOf(minorOf(m.data, n, i, j), n-1)
			if (i+j)%2 == 1 {
				minor = -minor
			}
			cof.data[i*n+j] = minor
		}
	}

	res, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return res, nil
}

// Inverse returns m⁻¹ = (1/det(m)) · adj(m), rounded per cell by Scale.
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: det := Determinant; exactly 0 → ErrSingular.
//   - Stage 3: Scale(Adjoint(m), 1/det).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Dominated by Adjoint.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := determinantOf(m.data, m.r)
	if det == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj, err := Adjoint(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1.0/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
