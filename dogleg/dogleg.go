// SPDX-License-Identifier: MIT

// Package dogleg - the Powell trust-region step over a packed factor.
//
// Purpose:
//   - Solve min ‖R·x + qtb‖² subject to ‖D∘x‖ ≤ delta approximately, by
//     walking the dogleg path: steepest descent to the Cauchy point, then
//     straight toward the Gauss-Newton minimizer.
//   - Keep the whole computation allocation-light and branch over the
//     three geometric cases with early returns instead of jump labels.
//
// Numerics:
//   - All norms go through the overflow-safe BLAS nrm2, so steps built
//     from huge Gauss-Newton components (singular R) stay finite.
//   - The boundary intersection never forms the naive quadratic
//     discriminant: it is assembled from the ratios bnorm/gnorm, bnorm/
//     qnorm, sgnorm/delta and delta/qnorm, whose squares are all bounded
//     by one in this branch, so the square root argument is a sum of
//     nonnegative terms and catastrophic cancellation cannot occur.
//   - A diagonal of R that is exactly zero back-substitutes against
//     ε·max|column| instead (then ε if the column is void), the classic
//     MINPACK guard.
//
// Complexity quicksheet:
//   - Back substitution and the two packed products are O(n²); the rest
//     is O(n). Two n-length scratch vectors are the only allocations.

package dogleg

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlalg/scalar"
)

// Step overwrites x with the dogleg step for the trust region ‖D∘x‖ ≤
// delta. r is the packed upper-triangular factor stored row-wise (row j
// starts at offset j·n − j·(j−1)/2) and is read-only; diag carries the
// positive scaling D; qtb is the factor-rotated residual.
//
// On return either x is the Gauss-Newton solution of R·x = qtb (when that
// already fits inside the region) or ‖D∘x‖ equals delta.
//
// Panics:
//   - ErrLengthMismatch when x or qtb disagrees with diag about n.
//   - ErrPackedLength when len(r) is not n·(n+1)/2.
//   - ErrNonPositiveDelta when delta ≤ 0.
func Step(x, r, diag, qtb []float64, delta float64) {
	n := len(diag)
	if len(x) != n || len(qtb) != n {
		panic(ErrLengthMismatch)
	}
	if len(r) != n*(n+1)/2 {
		panic(ErrPackedLength)
	}
	if delta <= 0 {
		panic(ErrNonPositiveDelta)
	}

	// Stage 1: the Gauss-Newton direction, accepted outright when its
	// scaled length already fits inside the region.
	gaussNewton(x, r, qtb, n)
	var (
		w  = make([]float64, n) // direction scratch
		sc = make([]float64, n) // scaled-step / product scratch
		j  int
	)
	for j = 0; j < n; j++ {
		sc[j] = diag[j] * x[j]
	}
	qnorm := nrm2(sc)
	if qnorm <= delta {
		return
	}

	// Stage 2: the scaled gradient g = D⁻¹·Rᵀ·qtb, accumulated row by row
	// over the packed triangle. Row j finishes its own component before
	// the division; later rows only touch components past j.
	l := 0
	for j = 0; j < n; j++ {
		floats.AddScaled(w[j:], qtb[j], r[l:l+n-j])
		w[j] /= diag[j]
		l += n - j
	}
	gnorm := nrm2(w)

	// A vanished gradient leaves one direction only: the Gauss-Newton
	// step pulled back to the boundary.
	if gnorm == 0 {
		blas64.Scal(delta/qnorm, blas64.Vector{N: n, Inc: 1, Data: x})

		return
	}

	// Stage 3: the Cauchy point. ŵ is the scaled gradient normalized in
	// the D-metric (so ‖D∘ŵ‖ = 1) and sgnorm the distance along it at
	// which the quadratic model bottoms out.
	for j = 0; j < n; j++ {
		w[j] = w[j] / gnorm / diag[j]
	}
	l = 0
	for j = 0; j < n; j++ {
		sc[j] = floats.Dot(r[l:l+n-j], w[j:])
		l += n - j
	}
	rw := nrm2(sc)
	sgnorm := gnorm / rw / rw
	if sgnorm >= delta {
		blas64.Scal(delta, blas64.Vector{N: n, Inc: 1, Data: w})
		copy(x, w)

		return
	}

	// Stage 4: both endpoints straddle the boundary, so intersect the
	// second dogleg segment with the sphere. The discriminant below is a
	// sum of nonnegative terms: sgnorm < delta < qnorm in this branch
	// keeps every squared ratio under one.
	var (
		bnorm = nrm2(qtb)
		sd    = sgnorm / delta
		dq    = delta / qnorm
	)
	t := bnorm / gnorm * (bnorm / qnorm) * sd
	t = t - dq*sd*sd + math.Sqrt((t-dq)*(t-dq)+(1-dq*dq)*(1-sd*sd))
	alpha := dq * (1 - sd*sd) / t

	beta := (1 - alpha) * min(sgnorm, delta)
	for j = 0; j < n; j++ {
		x[j] = beta*w[j] + alpha*x[j]
	}
}

// gaussNewton solves R·x = qtb in place by back substitution over the
// packed rows. An exactly zero diagonal entry is replaced by ε times the
// largest magnitude in its column (diagonal included), or by ε alone when
// the column is entirely zero, so the sweep always completes.
func gaussNewton(x, r, qtb []float64, n int) {
	var (
		eps = scalar.Epsilon[float64]()
		jj  = n * (n + 1) / 2
		j   int
	)
	for k := 0; k < n; k++ {
		j = n - k - 1
		jj -= k + 1 // row j starts at j·n − j·(j−1)/2
		sum := floats.Dot(r[jj+1:jj+1+k], x[j+1:])
		piv := r[jj]
		if piv == 0 {
			// Walk column j downward; consecutive rows sit n−i−1 apart in
			// the packed triangle.
			for i, l := 0, j; i <= j; i, l = i+1, l+n-i-1 {
				piv = max(piv, math.Abs(r[l]))
			}
			piv *= eps
			if piv == 0 {
				piv = eps
			}
		}
		x[j] = (qtb[j] - sum) / piv
	}
}

// nrm2 is the overflow-safe Euclidean norm of a contiguous vector.
func nrm2(v []float64) float64 {
	return blas64.Nrm2(blas64.Vector{N: len(v), Inc: 1, Data: v})
}
