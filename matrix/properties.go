// SPDX-License-Identifier: MIT

// Package matrix - structural predicates.
//
// All predicates are pure, never fail and compare exactly against the stored
// values: no tolerance is applied. Non-square inputs (and nil receivers)
// answer false rather than erroring.
package matrix

// IsSquare reports Rows == Cols.
func (m *Dense) IsSquare() bool {
	return m != nil && m.r == m.c
}

// IsSymmetric reports whether m is square and equal to its transpose.
func (m *Dense) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	t, err := Transpose(m)
	if err != nil {
		return false
	}

	return m.Equal(t)
}

// IsSkewSymmetric reports whether m is square and equal to -(mᵀ).
// The negation goes through Neg, so it sees the same rounding as any other
// computed matrix.
func (m *Dense) IsSkewSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	t, err := Transpose(m)
	if err != nil {
		return false
	}
	nt, err := Neg(t)
	if err != nil {
		return false
	}

	return m.Equal(nt)
}

// IsDiagonal reports whether m is square and every off-diagonal element is exactly 0.
func (m *Dense) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	ok := true
	m.Do(func(i, j int, v float64) bool {
		if i != j && v != 0 {
			ok = false
		}
		return ok
	})

	return ok
}

// IsScalar reports whether m is a non-empty square matrix whose diagonal
// repeats the top-left element and whose off-diagonal elements are all 0.
func (m *Dense) IsScalar() bool {
	if !m.IsSquare() || m.r == 0 {
		return false
	}
	first := m.data[0]
	ok := true
	m.Do(func(i, j int, v float64) bool {
		if i == j {
			ok = v == first
		} else {
			ok = v == 0
		}
		return ok
	})

	return ok
}

// IsIdentity reports IsScalar with the shared diagonal value exactly 1.
func (m *Dense) IsIdentity() bool {
	return m.IsScalar() && m.data[0] == 1.0
}

// IsZero reports whether every element is exactly 0 (any shape).
// An empty matrix is vacuously zero; a nil one is not.
func (m *Dense) IsZero() bool {
	if m == nil {
		return false
	}
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// IsSingular reports whether m is square and its determinant is exactly 0.
// Non-square matrices are not singular.
func (m *Dense) IsSingular() bool {
	det, err := Determinant(m)
	if err != nil {
		return false
	}

	return det == ZeroDeterminant
}
