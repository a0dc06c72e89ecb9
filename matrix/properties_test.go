// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestIsSquare(t *testing.T) {
	m2x3, _, _ := genericExamples(t)
	require.False(t, m2x3.IsSquare())

	m1, m2, m3, m5 := squareExamples(t)
	for _, m := range []*matrix.Dense{m1, m2, m3, m5} {
		require.True(t, m.IsSquare())
	}
}

func TestIsSymmetric(t *testing.T) {
	_, _, m3, _ := squareExamples(t)
	require.False(t, m3.IsSymmetric())

	m2x3, _, _ := genericExamples(t)
	require.False(t, m2x3.IsSymmetric())

	sym := MustFromRows(t, [][]float64{
		{9.5, 2.3, 3.5},
		{2.3, -1.0, -8.5},
		{3.5, -8.5, 0.0},
	})
	require.True(t, sym.IsSymmetric())
}

func TestIsSkewSymmetric(t *testing.T) {
	_, _, m3, _ := squareExamples(t)
	require.False(t, m3.IsSkewSymmetric())

	skew := MustFromRows(t, [][]float64{
		{0.0, 2.3, 3.5},
		{-2.3, 0.0, -8.5},
		{-3.5, 8.5, 0.0},
	})
	require.True(t, skew.IsSkewSymmetric())
	require.False(t, skew.IsSymmetric())
}

func TestIsDiagonalScalarIdentity(t *testing.T) {
	_, _, m3, _ := squareExamples(t)
	require.False(t, m3.IsDiagonal())

	diag := MustFromRows(t, [][]float64{
		{1.5, 0.0, 0.0, 0.0},
		{0.0, 3.2, 0.0, 0.0},
		{0.0, 0.0, 6.7, 0.0},
		{0.0, 0.0, 0.0, 9.1},
	})
	require.True(t, diag.IsDiagonal())
	require.False(t, diag.IsScalar())

	scalar := MustFromRows(t, [][]float64{
		{2.0, 0.0, 0.0},
		{0.0, 2.0, 0.0},
		{0.0, 0.0, 2.0},
	})
	require.True(t, scalar.IsDiagonal())
	require.True(t, scalar.IsScalar())
	require.False(t, scalar.IsIdentity())

	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())

	m2x3, _, _ := genericExamples(t)
	require.False(t, m2x3.IsDiagonal())
	require.False(t, m2x3.IsScalar())
	require.False(t, m2x3.IsIdentity())

	empty, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	require.False(t, empty.IsScalar())
	require.False(t, empty.IsIdentity())
}

func TestIsZero(t *testing.T) {
	m2x3, _, _ := genericExamples(t)
	require.False(t, m2x3.IsZero())
	require.True(t, MustFromRows(t, [][]float64{{0.0, 0.0}}).IsZero())
	require.True(t, MustDense(t, 3, 2).IsZero())
}

func TestIsSingular(t *testing.T) {
	m2x3, _, _ := genericExamples(t)
	require.False(t, m2x3.IsSingular())
	require.True(t, MustFromRows(t, [][]float64{{1, 2}, {2, 4}}).IsSingular())
	require.True(t, MustDense(t, 4, 4).IsSingular())
}

// TestIsSingular_MatchesDeterminant checks IsSingular ⇔ det == 0.
func TestIsSingular_MatchesDeterminant(t *testing.T) {
	m1, m2, m3, m5 := squareExamples(t)
	cases := []*matrix.Dense{
		m1, m2, m3, m5,
		MustFromRows(t, [][]float64{{1, 2}, {2, 4}}),
		MustFromRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}),
		MustFromRows(t, [][]float64{{0}}),
		MustDense(t, 3, 3),
	}
	for i, m := range cases {
		det, err := matrix.Determinant(m)
		require.NoError(t, err)
		require.Equal(t, det == 0, m.IsSingular(), "case %d det=%v", i, det)
	}
}

func TestPredicates_Nil(t *testing.T) {
	var m *matrix.Dense
	require.False(t, m.IsSquare())
	require.False(t, m.IsSymmetric())
	require.False(t, m.IsSkewSymmetric())
	require.False(t, m.IsDiagonal())
	require.False(t, m.IsScalar())
	require.False(t, m.IsIdentity())
	require.False(t, m.IsZero())
	require.False(t, m.IsSingular())
}
