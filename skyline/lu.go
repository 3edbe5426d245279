// SPDX-License-Identifier: MIT

// Package skyline - in-place LU elimination and substitution.
//
// Purpose:
//   - Factor A = L·U inside the stored profile, overwriting the matrix: L
//     (unit diagonal, implicit) lands in the lower segments, U in the upper
//     segments and the diagonal slice.
//   - Two eliminations, chosen by the layout so every inner loop walks
//     contiguous storage:
//     - ColMajor: right-looking. Per pivot: scale the lower column, then
//       update the trailing block in three passes (upper rows via paired
//       contiguous segments, lower columns via profile random access,
//       diagonal via the advanced pivot-row cursor).
//     - RowMajor: left-looking Doolittle. Per row: every stored lower,
//       upper and diagonal entry is a sparse dot product between a lower
//       row segment and an upper column segment, aligned to their common
//       start first.
//   - Substitution in the form the layout makes contiguous: dot-form where
//     the segments lie along the equation, saxpy-form where they lie
//     across it.
//
// Contract:
//   - No pivoting and no reordering; the profile never widens. A zero
//     diagonal pivot aborts with ErrZeroPivot; anything merely small sails
//     through, which is only safe for matrices that eliminate well in
//     place (diagonal dominance being the usual certificate).
//   - Compute consumes the stored coefficients; refill the matrix before
//     factoring again.

package skyline

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlalg/expr"
)

// LU factors a skyline matrix in place and substitutes through the packed
// factors. The wrapped matrix holds the factors after a successful
// Compute; it is not copied.
type LU struct {
	m        *Matrix
	computed bool
}

// NewLU wraps m for in-place factorization. Compute overwrites m's
// storage, so callers needing the original coefficients keep a Clone.
func NewLU(m *Matrix) *LU { return &LU{m: m} }

// Succeeded reports whether the last Compute finished without error.
func (lu *LU) Succeeded() bool { return lu.computed }

// Compute factors the wrapped matrix in place, dispatching on its layout.
//
// Errors:
//   - ErrZeroPivot when a diagonal entry is exactly zero at pivot time;
//     the storage is left partially eliminated and Succeeded reports
//     false.
func (lu *LU) Compute() error {
	lu.computed = false
	var err error
	if lu.m.order == expr.RowMajor {
		err = lu.computeRowMajor()
	} else {
		err = lu.computeColMajor()
	}
	if err != nil {
		return err
	}
	lu.computed = true

	return nil
}

// computeColMajor runs the right-looking elimination over column-oriented
// storage.
func (lu *LU) computeColMajor() error {
	m := lu.m
	if m.order != expr.ColMajor {
		panic(ErrWrongLayout)
	}
	var (
		n          = m.n
		row, i, j  int
		rrow, c    int
		pivot, cf  float64
		lseg, pseg []float64
	)
	for row = 0; row < n; row++ {
		pivot = m.diag[row]
		if pivot == 0 {
			return ErrZeroPivot
		}
		lseg, _ = m.lowerSeg(row) // L(row+1 .. row+len, row)
		pseg, _ = m.upperSeg(row) // U(row, row+1 .. row+plen)

		// Stage 1: finish the pivot column of L. Entry-wise division, not
		// multiplication by the reciprocal, so the quotients match the
		// left-looking kernel bit for bit.
		for i = range lseg {
			lseg[i] /= pivot
		}

		// Stage 2: trailing upper rows, paired contiguous segments. For
		// each stored L(rrow,row) the pivot row enters at column rrow+1,
		// offset rrow-row into its segment.
		for i = 0; i < len(lseg); i++ {
			rrow = row + 1 + i
			cf = lseg[i]
			if off := rrow - row; off < len(pseg) {
				useg, _ := m.upperSeg(rrow)
				k := min(len(useg), len(pseg)-off)
				floats.AddScaled(useg[:k], -cf, pseg[off:off+k])
			}
		}

		// Stage 3: trailing lower columns. The walk crosses column
		// segments, so access goes through the profile index.
		for i = 0; i < len(lseg); i++ {
			rrow = row + 1 + i
			cf = lseg[i]
			for j = 0; j < rrow-row-1 && j < len(pseg); j++ {
				c = row + 1 + j
				if idx := m.lowerIndex(rrow, c); idx >= 0 {
					m.lower[idx] -= pseg[j] * cf
				}
			}
		}

		// Stage 4: trailing diagonal, pivot-row cursor advanced straight
		// to column rrow.
		for i = 0; i < len(lseg); i++ {
			rrow = row + 1 + i
			if j = rrow - row - 1; j < len(pseg) {
				m.diag[rrow] -= pseg[j] * lseg[i]
			}
		}
	}

	return nil
}

// computeRowMajor runs the left-looking Doolittle elimination over
// row-oriented storage.
func (lu *LU) computeRowMajor() error {
	m := lu.m
	if m.order != expr.RowMajor {
		panic(ErrWrongLayout)
	}
	var (
		n    = m.n
		row  int
		i    int
		seg  []float64
		head int
	)
	for row = 0; row < n; row++ {
		// Stage 1: lower entries of the row, ascending column. The divisor
		// diag[col] was finalized (and checked) in iteration col.
		seg, head = m.lowerSeg(row)
		for i = range seg {
			col := head + i
			seg[i] = (seg[i] - lu.dotLU(row, col, col)) / m.diag[col]
		}

		// Stage 2: upper entries of column row, ascending row. No
		// division; the diagonal belongs to U.
		seg, head = m.upperSeg(row)
		for i = range seg {
			seg[i] -= lu.dotLU(head+i, row, head+i)
		}

		// Stage 3: the diagonal closes the row.
		m.diag[row] -= lu.dotLU(row, row, row)
		if m.diag[row] == 0 {
			return ErrZeroPivot
		}
	}

	return nil
}

// dotLU returns Σ L(row,k)·U(k,col) over k < bound, the aligned sparse dot
// product at the heart of the left-looking update: both cursors advance to
// their common start, the overlap length follows from the bound, and the
// product runs on the two contiguous tails.
func (lu *LU) dotLU(row, col, bound int) float64 {
	var (
		lseg, lfirst = lu.m.lowerSeg(row)
		useg, ufirst = lu.m.upperSeg(col)
		lIt          = newSegIter(lseg, lfirst)
		uIt          = newSegIter(useg, ufirst)
	)
	stop := alignOverlap(&lIt, &uIt, bound)
	if stop == 0 {
		return 0
	}

	return floats.Dot(lIt.tail(stop), uIt.tail(stop))
}

// Solve writes the solution of A·x = b into dst by forward substitution
// through unit L and back substitution through U. dst and b may be the
// same slice.
//
// Errors:
//   - ErrNotComputed before a successful Compute.
//
// Panics:
//   - expr.ErrSliceLength when dst or b is not n long.
//
// Notes:
//   - No singularity check happens here: Compute vetted the diagonal for
//     exact zeros, near-zero pivots still flow through as large quotients.
func (lu *LU) Solve(dst, b []float64) error {
	m := lu.m
	if !lu.computed {
		return ErrNotComputed
	}
	if len(dst) != m.n || len(b) != m.n {
		panic(expr.ErrSliceLength)
	}
	copy(dst, b)
	if m.order == expr.RowMajor {
		lu.forwardRowMajor(dst)
		lu.backwardRowMajor(dst)
	} else {
		lu.forwardColMajor(dst)
		lu.backwardColMajor(dst)
	}

	return nil
}

// SolveTranspose writes the solution of Aᵀ·x = b into dst using the same
// factors: Aᵀ = Uᵀ·Lᵀ, so the roles of the triangles swap — Uᵀ leads the
// forward pass (dividing by the diagonal), unit Lᵀ closes backward.
//
// Errors and panics match Solve.
func (lu *LU) SolveTranspose(dst, b []float64) error {
	m := lu.m
	if !lu.computed {
		return ErrNotComputed
	}
	if len(dst) != m.n || len(b) != m.n {
		panic(expr.ErrSliceLength)
	}
	copy(dst, b)
	if m.order == expr.RowMajor {
		lu.forwardTransposeRowMajor(dst)
		lu.backwardTransposeRowMajor(dst)
	} else {
		lu.forwardTransposeColMajor(dst)
		lu.backwardTransposeColMajor(dst)
	}

	return nil
}

// forwardRowMajor substitutes through unit L in dot-form: each lower row
// segment lies along its equation.
func (lu *LU) forwardRowMajor(x []float64) {
	for row := 0; row < lu.m.n; row++ {
		if seg, first := lu.m.lowerSeg(row); len(seg) > 0 {
			x[row] -= floats.Dot(seg, x[first:row])
		}
	}
}

// backwardRowMajor substitutes through U in saxpy-form: each upper column
// segment scatters its solved unknown upward.
func (lu *LU) backwardRowMajor(x []float64) {
	m := lu.m
	for col := m.n - 1; col > 0; col-- {
		x[col] /= m.diag[col]
		seg, first := m.upperSeg(col)
		floats.AddScaled(x[first:col], -x[col], seg)
	}
	x[0] /= m.diag[0]
}

// forwardColMajor substitutes through unit L in saxpy-form: each lower
// column segment scatters its solved unknown downward.
func (lu *LU) forwardColMajor(x []float64) {
	m := lu.m
	for col := 0; col < m.n; col++ {
		seg, first := m.lowerSeg(col)
		floats.AddScaled(x[first:first+len(seg)], -x[col], seg)
	}
}

// backwardColMajor substitutes through U in dot-form: each upper row
// segment lies along its equation.
func (lu *LU) backwardColMajor(x []float64) {
	m := lu.m
	for row := m.n - 1; row >= 0; row-- {
		if seg, first := m.upperSeg(row); len(seg) > 0 {
			x[row] -= floats.Dot(seg, x[first:first+len(seg)])
		}
		x[row] /= m.diag[row]
	}
}

// forwardTransposeRowMajor substitutes through Uᵀ, whose rows are the
// stored upper column segments (dot-form).
func (lu *LU) forwardTransposeRowMajor(x []float64) {
	m := lu.m
	for row := 0; row < m.n; row++ {
		if seg, first := m.upperSeg(row); len(seg) > 0 {
			x[row] -= floats.Dot(seg, x[first:row])
		}
		x[row] /= m.diag[row]
	}
}

// backwardTransposeRowMajor substitutes through unit Lᵀ, whose columns are
// the stored lower row segments (saxpy-form).
func (lu *LU) backwardTransposeRowMajor(x []float64) {
	m := lu.m
	for col := m.n - 1; col >= 0; col-- {
		seg, first := m.lowerSeg(col)
		floats.AddScaled(x[first:col], -x[col], seg)
	}
}

// forwardTransposeColMajor substitutes through Uᵀ, whose columns are the
// stored upper row segments (saxpy-form).
func (lu *LU) forwardTransposeColMajor(x []float64) {
	m := lu.m
	for row := 0; row < m.n; row++ {
		x[row] /= m.diag[row]
		seg, first := m.upperSeg(row)
		floats.AddScaled(x[first:first+len(seg)], -x[row], seg)
	}
}

// backwardTransposeColMajor substitutes through unit Lᵀ, whose rows are
// the stored lower column segments (dot-form).
func (lu *LU) backwardTransposeColMajor(x []float64) {
	m := lu.m
	for row := m.n - 1; row >= 0; row-- {
		if seg, first := m.lowerSeg(row); len(seg) > 0 {
			x[row] -= floats.Dot(seg, x[first:first+len(seg)])
		}
	}
}
