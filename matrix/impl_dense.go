// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the single matrix value type of the library: a rectangular,
//     row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors and mutators return
//     errors instead of panicking.
//   - Keep the shape immutable after construction; only cell contents, whole
//     rows, whole columns or the whole grid (same shape) may be replaced.
//   - Never alias caller memory: slices are copied in and out.
//
// Numeric policy:
//   - Raw writes (constructors, Set*, Apply) store values as given; they are
//     NOT rounded. Rounding belongs to the operations (impl_linear_algebra.go,
//     impl_special.go).
//   - WithValidateNaNInf(true) turns on finite-only writes for one matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row/Col/SetRow/SetCol: O(c)/O(r);
//     Data/SetData/Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxCol     = "Col"     // method tag used in error wrappers
	ctxSetRow  = "SetRow"  // method tag used in error wrappers
	ctxSetCol  = "SetCol"  // method tag used in error wrappers
	ctxSetData = "SetData" // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers

	ctxNewDense    = "NewDense"
	ctxNewFromRows = "NewFromRows"
	ctxNewDiagonal = "NewDiagonal"
	ctxNewScalar   = "NewScalar"
	ctxNewIdentity = "NewIdentity"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseLineErrorf is denseErrorf for single-index methods (Row/Col/SetRow/SetCol).
func denseLineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, idx, err)
}

// Dense is the concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection on writes (see options.go).
//
// A Dense is a plain value owned by one logical operation at a time; it has no
// internal locking.
type Dense struct {
	r, c           int       // row and column counts (>=1; 0×0 only via NewFromRows(nil))
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrZeroDimension.
//   - Stage 2: resolve options, allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrZeroDimension (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrZeroDimension)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used for the 0×0 artifact of NewFromRows and for operation results whose
// shape is already known to be legal.
// Complexity: O(rows*cols).
func newDenseZeroOK(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// newDenseLike allocates a zero rows×cols result carrying src's numeric policy.
func newDenseLike(src *Dense, rows, cols int) *Dense {
	return newDenseZeroOK(rows, cols, src.validateNaNInf)
}

// NewFromRows builds a matrix from a grid of rows (deep copy; the grid is not retained).
// MAIN DESCRIPTION:
//   - Validated constructor from explicit data.
//
// Implementation:
//   - Stage 1: zero rows → legal 0×0 matrix (constructor artifact).
//   - Stage 2: ValidateRectangular(grid); rows>0 with empty rows → ErrZeroDimension.
//   - Stage 3: numeric policy check, then copy row by row into the flat buffer.
//
// Errors:
//   - ErrInconsistentColumnSize (ragged grid), ErrZeroDimension (rows of length 0),
//     ErrNaNInf (non-finite value under strict policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(grid) == 0 {
		return newDenseZeroOK(0, 0, o.validateNaNInf), nil
	}
	if err := ValidateRectangular(grid); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFromRows, err)
	}
	rows, cols := len(grid), len(grid[0])
	if cols == 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewFromRows, rows, cols, ErrZeroDimension)
	}
	if o.validateNaNInf {
		if err := validateFiniteGrid(grid); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNewFromRows, err)
		}
	}

	m := newDenseZeroOK(rows, cols, o.validateNaNInf)
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// NewDiagonal returns a square len(values)×len(values) matrix with values on the
// main diagonal and zeros elsewhere.
// Errors: ErrZeroDimension if values is empty; ErrNaNInf under strict policy.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewDiagonal(values []float64, opts ...Option) (*Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewDiagonal, ErrZeroDimension)
	}
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewDiagonal, err)
	}
	for i := 0; i < n; i++ {
		if err = m.Set(i, i, values[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNewDiagonal, err)
		}
	}

	return m, nil
}

// NewScalar returns size×size with value on the diagonal (value·I).
// Errors: ErrZeroDimension if size <= 0.
func NewScalar(value float64, size int, opts ...Option) (*Dense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewScalar, size, ErrZeroDimension)
	}
	values := make([]float64, size)
	for i := range values {
		values[i] = value
	}

	return NewDiagonal(values, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrZeroDimension if n <= 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewIdentity, n, ErrZeroDimension)
	}

	return NewScalar(1.0, n, opts...)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Returns the bare sentinel; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkFinite enforces the per-instance numeric policy for a single value.
func (m *Dense) checkFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error wrapped with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Errors: ErrIndexOutOfBounds when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseLineErrorf(ctxRow, i, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrIndexOutOfBounds when j is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseLineErrorf(ctxCol, j, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a deep copy of the grid as rows.
// Complexity: O(r*c).
func (m *Dense) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Set stores v at (row, col) without rounding.
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrIndexOutOfBounds for bounds; ErrNaNInf for invalid numbers under strict policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// SetRow replaces row i with values (copied).
// Errors: ErrIndexOutOfBounds (checked first), ErrDimensionMismatch when
// len(values) != Cols(), ErrNaNInf under strict policy.
// Complexity: O(c).
func (m *Dense) SetRow(i int, values []float64) error {
	if i < 0 || i >= m.r {
		return denseLineErrorf(ctxSetRow, i, ErrIndexOutOfBounds)
	}
	if len(values) != m.c {
		return denseLineErrorf(ctxSetRow, i, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return denseLineErrorf(ctxSetRow, i, err)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)

	return nil
}

// SetCol replaces column j with values.
// Errors: ErrIndexOutOfBounds (checked first), ErrDimensionMismatch when
// len(values) != Rows(), ErrNaNInf under strict policy.
// Complexity: O(r).
func (m *Dense) SetCol(j int, values []float64) error {
	if j < 0 || j >= m.c {
		return denseLineErrorf(ctxSetCol, j, ErrIndexOutOfBounds)
	}
	if len(values) != m.r {
		return denseLineErrorf(ctxSetCol, j, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return denseLineErrorf(ctxSetCol, j, err)
		}
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = values[i]
	}

	return nil
}

// SetData replaces the whole grid in place; the shape never changes.
// MAIN DESCRIPTION:
//   - All-or-nothing grid replacement.
//
// Implementation:
//   - Stage 1: row count and first-row length must equal the fixed shape
//     (ErrDimensionMismatch).
//   - Stage 2: every row must match the first (ErrInconsistentColumnSize).
//   - Stage 3: numeric policy, then copy.
//
// Behavior highlights:
//   - Nothing is written unless every check passes.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) SetData(grid [][]float64) error {
	if len(grid) != m.r {
		return fmt.Errorf("Dense.%s: rows %d != %d: %w", ctxSetData, len(grid), m.r, ErrDimensionMismatch)
	}
	if m.r == 0 {
		return nil // 0×0 artifact: nothing to replace
	}
	if len(grid[0]) != m.c {
		return fmt.Errorf("Dense.%s: cols %d != %d: %w", ctxSetData, len(grid[0]), m.c, ErrDimensionMismatch)
	}
	if err := ValidateRectangular(grid); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetData, err)
	}
	if m.validateNaNInf {
		if err := validateFiniteGrid(grid); err != nil {
			return fmt.Errorf("Dense.%s: %w", ctxSetData, err)
		}
	}
	for i := 0; i < m.r; i++ {
		copy(m.data[i*m.c:(i+1)*m.c], grid[i])
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Equal reports whether m and other have the same shape and exactly equal
// elements (IEEE ==, so 0 == -0 and NaN != NaN). Two nil matrices are equal.
// The numeric policy flag does not take part in equality.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx, v := range m.data {
		if v != other.data[idx] {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Respects the numeric policy; the first rejected value aborts and the
// elements written before it remain updated.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if err := m.checkFinite(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
