// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 4, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 1, 1)), matrix.ErrNilMatrix)
}

func TestValidateRectangular(t *testing.T) {
	require.NoError(t, matrix.ValidateRectangular(nil))
	require.NoError(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}}))
	err := matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}, {5}})
	require.ErrorIs(t, err, matrix.ErrInconsistentColumnSize)
	require.Contains(t, err.Error(), "row 2")
}

// TestErrorMessages pins the wrapping shape callers may grep for.
func TestErrorMessages(t *testing.T) {
	_, err := matrix.Inverse(MustFromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.EqualError(t, err, "Inverse: matrix: singular matrix")

	_, err = MustDense(t, 2, 2).At(3, 1)
	require.EqualError(t, err, "Dense.At(3,1): matrix: index out of range")
}
