// SPDX-License-Identifier: MIT

// Package eigen - Cholesky reduction of the generalized problem.
//
// Purpose:
//   - Factor the right-hand matrix B = L·Lᵀ and fold it into the pencil:
//     A·x = λ·B·x becomes the standard problem C·y = λ·y with
//     C = L⁻¹·A·L⁻ᵀ and y = Lᵀ·x.
//   - Both triangular solves run through blas64.Trsm on full matrices, so
//     the reduction costs two O(n³) sweeps on top of the factorization.
//
// Failure mode:
//   - A non-positive pivot means B is not positive definite and the pencil
//     has no Cholesky reduction; compute reports ErrNotPositiveDefinite and
//     the solver stays in the not-computed state.

package eigen

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// llt holds a lower-triangular Cholesky factor in a row-major buffer of
// stride n. The strict upper triangle is dead storage and never referenced.
type llt struct {
	n int
	l []float64
}

// compute factors the symmetric positive definite matrix held row-major in
// src (stride n, lower triangle authoritative) into f. Returns
// ErrNotPositiveDefinite on the first non-positive pivot.
func (f *llt) compute(src []float64, n int) error {
	if cap(f.l) < n*n {
		f.l = make([]float64, n*n)
	}
	f.l = f.l[:n*n]
	f.n = n
	copy(f.l, src)

	var (
		i, j int
		d    float64 // squared pivot candidate
	)
	for j = 0; j < n; j++ {
		// Pivot: l[j,j] = sqrt(b[j,j] - l[j,:j]·l[j,:j]).
		rowJ := blas64.Vector{N: j, Inc: 1, Data: f.l[j*n:]}
		d = f.l[j*n+j] - blas64.Dot(rowJ, rowJ)
		if d <= 0 {
			return ErrNotPositiveDefinite
		}
		f.l[j*n+j] = math.Sqrt(d)

		// Column below the pivot: l[i,j] = (b[i,j] - l[i,:j]·l[j,:j]) / l[j,j].
		for i = j + 1; i < n; i++ {
			rowI := blas64.Vector{N: j, Inc: 1, Data: f.l[i*n:]}
			f.l[i*n+j] = (f.l[i*n+j] - blas64.Dot(rowI, rowJ)) / f.l[j*n+j]
		}
	}

	return nil
}

// factor exposes the triangle in blas64 form for the Trsm calls below.
func (f *llt) factor() blas64.Triangular {
	return blas64.Triangular{N: f.n, Stride: f.n, Data: f.l, Uplo: blas.Lower, Diag: blas.NonUnit}
}

// reducePencil overwrites the row-major matrix a (stride n) with
// L⁻¹·A·L⁻ᵀ, the standard-form matrix whose eigenvalues equal those of the
// pencil (A, B).
func (f *llt) reducePencil(a []float64) {
	g := blas64.General{Rows: f.n, Cols: f.n, Stride: f.n, Data: a}
	blas64.Trsm(blas.Left, blas.NoTrans, 1, f.factor(), g)  // A ← L⁻¹·A
	blas64.Trsm(blas.Right, blas.Trans, 1, f.factor(), g)   // A ← A·L⁻ᵀ
}

// backTransform maps standard-form eigenvectors back to pencil
// eigenvectors, V ← L⁻ᵀ·V, column by column in one triangular solve.
func (f *llt) backTransform(v []float64) {
	g := blas64.General{Rows: f.n, Cols: f.n, Stride: f.n, Data: v}
	blas64.Trsm(blas.Left, blas.Trans, 1, f.factor(), g)
}
