// SPDX-License-Identifier: MIT

// Package eigen - Householder reduction to tridiagonal form.
//
// Purpose:
//   - Reduce a symmetric matrix to T = Qᵀ·A·Q with T tridiagonal, using one
//     Householder reflector per column (the unblocked dsytd2 scheme).
//   - Keep every inner product and rank update inside gonum's blas64 kernels
//     (Nrm2, Symv, Dot, Axpy, Syr2, Gemv, Ger); the Go code only schedules.
//   - Accumulate the orthogonal factor Q on demand, right-to-left over the
//     identity, so the QR sweeps can rotate eigenvectors in place afterwards.
//
// Storage protocol:
//   - The working matrix lives in a flat row-major buffer of stride n. Only
//     the lower triangle is referenced, mirroring the symmetry.
//   - Reflector k zeroes column k below the first subdiagonal; its tail is
//     parked in that dead region (rows k+2..n-1 of column k) with the
//     implicit leading 1 at row k+1, and its scalar in tau[k].
//
// Complexity quicksheet:
//   - tridiagonalize: 4n³/3 flops; accumulateQ: another 4n³/3 when vectors
//     are requested; both O(n) extra space (one scratch vector).

package eigen

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// tridiagonalize reduces the symmetric matrix held row-major in w (stride n,
// lower triangle authoritative) to tridiagonal form, filling diag (length n)
// and subdiag (length n-1) and leaving the Householder tails below the first
// subdiagonal of w with their scalars in tau (length n-1). scratch must hold
// at least n entries.
func tridiagonalize(w []float64, n int, diag, subdiag, tau, scratch []float64) {
	var (
		k     int     // current column
		m     int     // active tail length below the diagonal
		alpha float64 // leading entry of the vector being reflected
		xnorm float64 // norm of the entries to annihilate
		beta  float64 // value the reflector maps the vector onto
		t     float64 // Householder scalar for this column
		g     float64 // correction factor reusing the Symv product
	)
	for k = 0; k < n-1; k++ {
		m = n - 1 - k
		alpha = w[(k+1)*n+k]

		// Stage 1: build the reflector H = I - tau·v·vᵀ that maps column k
		// below the diagonal onto beta·e₁ (the dlarfg recipe).
		xnorm = 0
		if m > 1 {
			xnorm = blas64.Nrm2(blas64.Vector{N: m - 1, Inc: n, Data: w[(k+2)*n+k:]})
		}
		if xnorm == 0 {
			// Nothing to annihilate: the column is already tridiagonal.
			tau[k] = 0
			subdiag[k] = alpha
			diag[k] = w[k*n+k]
			continue
		}
		beta = -math.Copysign(math.Hypot(alpha, xnorm), alpha)
		t = (beta - alpha) / beta
		blas64.Scal(1/(alpha-beta), blas64.Vector{N: m - 1, Inc: n, Data: w[(k+2)*n+k:]})
		tau[k] = t
		subdiag[k] = beta

		// Stage 2: two-sided update of the trailing block,
		// A₂₂ ← (I - tau·v·vᵀ)·A₂₂·(I - tau·v·vᵀ) = A₂₂ - v·uᵀ - u·vᵀ
		// with u = tau·A₂₂·v - (tau²·vᵀ·A₂₂·v/2)·v.
		w[(k+1)*n+k] = 1 // expose the implicit leading 1 of v
		var (
			v   = blas64.Vector{N: m, Inc: n, Data: w[(k+1)*n+k:]}
			a22 = blas64.Symmetric{N: m, Stride: n, Uplo: blas.Lower, Data: w[(k+1)*n+(k+1):]}
			u   = blas64.Vector{N: m, Inc: 1, Data: scratch[:m]}
		)
		blas64.Symv(t, a22, v, 0, u)      // u = tau·A₂₂·v
		g = -0.5 * t * blas64.Dot(u, v)   // g = -tau·(vᵀ·u)/2
		blas64.Axpy(g, v, u)              // u += g·v
		blas64.Syr2(-1, v, u, a22)        // A₂₂ -= v·uᵀ + u·vᵀ
		diag[k] = w[k*n+k]
	}
	diag[n-1] = w[(n-1)*n+(n-1)]
}

// accumulateQ overwrites q (row-major, stride n, preset to the identity)
// with the product H₀·H₁⋯H_{n-2} of the reflectors parked in w by
// tridiagonalize. Reflectors are applied right-to-left so that each one
// only touches the trailing block q[k+1:, k+1:], which is the only part
// the later reflectors have populated. scratch must hold at least n entries.
func accumulateQ(w []float64, n int, tau, q, scratch []float64) {
	var (
		k   int
		m   int
		v   blas64.Vector
		q22 blas64.General
		h   blas64.Vector
	)
	for k = n - 2; k >= 0; k-- {
		if tau[k] == 0 {
			continue // identity reflector
		}
		m = n - 1 - k
		v = blas64.Vector{N: m, Inc: n, Data: w[(k+1)*n+k:]}
		q22 = blas64.General{Rows: m, Cols: m, Stride: n, Data: q[(k+1)*n+(k+1):]}
		h = blas64.Vector{N: m, Inc: 1, Data: scratch[:m]}

		// q22 ← (I - tau·v·vᵀ)·q22, as a Gemv/Ger pair.
		blas64.Gemv(blas.Trans, 1, q22, v, 0, h) // h = q22ᵀ·v
		blas64.Ger(-tau[k], v, h, q22)           // q22 -= tau·v·hᵀ
	}
}

// setIdentity loads the n×n identity into the row-major buffer q.
func setIdentity(q []float64, n int) {
	var i int
	for i = range q {
		q[i] = 0
	}
	for i = 0; i < n; i++ {
		q[i*n+i] = 1
	}
}
