// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication — each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or rounding of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Errors: ErrZeroDimension.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
// Errors: ErrNilMatrix, ErrZeroDimension (for the 0×0 artifact).
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols(), WithValidateNaNInf(m.validateNaNInf))
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrNonSquare, ErrZeroDimension.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), WithValidateNaNInf(m.validateNaNInf))
}

// CloneMatrix returns a deep copy of m, or nil for nil.
func CloneMatrix(m *Dense) *Dense {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Dense) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Dense) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m *Dense, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Negate is an alias for Neg: −m.
func Negate(m *Dense) (*Dense, error) { return Neg(m) }

// ---------- Special-operation aliases ----------

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m *Dense) (float64, error) { return Determinant(m) }

// Adj is an alias for Adjoint.
func Adj(m *Dense) (*Dense, error) { return Adjoint(m) }

// InverseOf is an alias for Inverse: returns adj(m)/det(m).
func InverseOf(m *Dense) (*Dense, error) { return Inverse(m) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: O(r*c).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if math.IsNaN(rtol) || math.IsNaN(atol) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("tolerance: %w", ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var av, bv float64
	for idx := range a.data {
		av, bv = a.data[idx], b.data[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			if av != bv {
				return false, nil
			}
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
