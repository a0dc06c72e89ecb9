// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep fixture values on the five-decimal grid so exact comparisons hold.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// closeTol is the absolute tolerance for products involving rounded inverses.
const closeTol = 1e-3

// genericExamples returns two 2×3 matrices and one 4×2 matrix.
func genericExamples(t testing.TB) (m2x3, other2x3, m4x2 *matrix.Dense) {
	t.Helper()
	m2x3 = MustFromRows(t, [][]float64{
		{7.2, 13.8, 5.1},
		{9.3, 2.7, 6.4},
	})
	other2x3 = MustFromRows(t, [][]float64{
		{1.5, 8.9, 3.2},
		{6.7, 11.3, 4.8},
	})
	m4x2 = MustFromRows(t, [][]float64{
		{5.6, 9.8},
		{2.9, 7.4},
		{11.2, 3.1},
		{6.3, 8.7},
	})

	return m2x3, other2x3, m4x2
}

// squareExamples returns 1×1, 2×2, 3×3 and 5×5 fixtures with known
// traces, determinants, adjoints and inverses.
func squareExamples(t testing.TB) (m1, m2, m3, m5 *matrix.Dense) {
	t.Helper()
	m1 = MustFromRows(t, [][]float64{{2.5}})
	m2 = MustFromRows(t, [][]float64{
		{4.5, 2.8},
		{1.3, 6.7},
	})
	m3 = MustFromRows(t, [][]float64{
		{2.1, 9.7, 3.5},
		{8.4, 1.6, 7.2},
		{5.9, 12.3, 0.8},
	})
	m5 = MustFromRows(t, [][]float64{
		{0.0, 7.1, 0.5, 9.3, 2.8},
		{6.4, 1.9, 8.7, 4.2, 5.6},
		{0.3, 9.8, 2.1, 7.5, 3.9},
		{5.7, 3.6, 8.2, 1.4, 6.0},
		{9.1, 4.5, 2.6, 7.8, 0.7},
	})

	return m1, m2, m3, m5
}

// MustFromRows builds a matrix from rows or fails the test.
func MustFromRows(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(grid)
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m holds exactly want (shape and values).
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(want), m.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), m.Cols(), "cols")
	}
	require.Equal(t, want, m.Data())
}

// CompareClose asserts AllClose(a, b) with absolute tolerance atol.
func CompareClose(t testing.TB, a, b *matrix.Dense, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "not close within %g:\n%v\nvs\n%v", atol, a, b)
}

// RandGridDense returns an r×c matrix of seeded U(-10,10) values already
// snapped to the five-decimal grid.
func RandGridDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return matrix.Round(rng.Float64()*20 - 10)
	}))

	return m
}

// RandDominantDense returns an n×n strictly diagonally dominant matrix
// (hence invertible and well conditioned): off-diagonal U(-1,1), diagonal n+1+U(0,1).
func RandDominantDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	require.NoError(t, m.Apply(func(i, j int, _ float64) float64 {
		if i == j {
			return matrix.Round(float64(n+1) + rng.Float64())
		}
		return matrix.Round(rng.Float64()*2 - 1)
	}))

	return m
}

// mustDense allocates for benchmarks.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand fills d with seeded U(-1,1) values for benchmarks.
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	if err := d.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }); err != nil {
		b.Fatalf("fillDenseRand: %v", err)
	}
}
