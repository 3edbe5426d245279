// SPDX-License-Identifier: MIT

// Package eigen - implicit-shift QR iteration on a tridiagonal matrix.
//
// Purpose:
//   - Drive the tridiagonal (diag, subdiag) pair produced by tridiagonalize
//     to diagonal form with Wilkinson-shifted implicit QR sweeps, deflating
//     converged eigenvalues off the active window as couplings vanish.
//   - Chase the bulge with explicitly formed Givens rotations; when
//     eigenvectors are wanted, the same rotations fold into the columns of Q
//     so the spectral factorization stays consistent at every step.
//
// Numerics:
//   - A subdiagonal entry deflates when it is negligible relative to its two
//     diagonal neighbours under the squared-comparison predicate shared with
//     the rest of the library (scalar.IsMuchSmallerThan).
//   - The Wilkinson shift picks the eigenvalue of the trailing 2×2 closest
//     to the last diagonal entry; the quotient form below never subtracts
//     nearby quantities, and the hypot keeps the discriminant from
//     overflowing.
//   - makeGivens divides by the larger of the two inputs, so neither
//     component is squared beyond its scale.
//
// Complexity quicksheet:
//   - One sweep is O(window) on the tridiagonal pair plus O(n·window) for
//     the eigenvector columns; the whole iteration is O(n²) / O(n³)
//     respectively, with convergence typically in two to three sweeps per
//     eigenvalue.

package eigen

import (
	"math"

	"github.com/katalvlaran/lvlalg/scalar"
)

// qrIterate diagonalizes the tridiagonal pair in place. diag holds the n
// diagonal entries, subdiag the n-1 couplings; q is the row-major n×n
// eigenvector accumulator rotated alongside when withVectors is set (pass
// nil otherwise). maxSweeps bounds the total number of implicit QR sweeps;
// exhausting it returns ErrNoConvergence with the state partially reduced.
func qrIterate(diag, subdiag []float64, q []float64, n int, withVectors bool, maxSweeps int) error {
	var (
		start = 0                           // first row of the active window
		end   = n - 1                       // past-the-end coupling index
		sweep = 0                           // sweeps consumed so far
		prec  = scalar.Precision[float64]() // deflation tolerance
		i     int
	)
	for end > 0 {
		// Stage 1: zero every coupling that is negligible next to its
		// diagonal neighbours, then shrink the window past the converged
		// tail and over any already-decoupled head.
		for i = start; i < end; i++ {
			if scalar.IsMuchSmallerThan(math.Abs(subdiag[i]), math.Abs(diag[i])+math.Abs(diag[i+1]), prec) {
				subdiag[i] = 0
			}
		}
		for end > 0 && subdiag[end-1] == 0 {
			end--
		}
		if end == 0 {
			break
		}
		start = end - 1
		for start > 0 && subdiag[start-1] != 0 {
			start--
		}

		// Stage 2: one shifted sweep across the active window.
		sweep++
		if sweep > maxSweeps {
			return ErrNoConvergence
		}
		qrStep(diag, subdiag, start, end, q, n, withVectors)
	}

	return nil
}

// qrStep runs a single implicit-shift QR sweep on the window [start, end],
// chasing the bulge introduced at the top of the window down and off the
// bottom with a chain of Givens rotations.
func qrStep(diag, subdiag []float64, start, end int, q []float64, n int, withVectors bool) {
	// Wilkinson shift: the eigenvalue of [[d_{end-1}, e], [e, d_end]]
	// closest to d_end, evaluated in quotient form to dodge cancellation.
	var (
		td = (diag[end-1] - diag[end]) * 0.5
		e  = subdiag[end-1]
		mu = diag[end]
	)
	if td == 0 {
		mu -= math.Abs(e)
	} else {
		e2 := e * e
		h := math.Hypot(td, e)
		if e2 == 0 {
			mu -= e / ((td + math.Copysign(h, td)) / e)
		} else {
			mu -= e2 / (td + math.Copysign(h, td))
		}
	}

	var (
		x = diag[start] - mu // leading entry of the shifted column
		z = subdiag[start]   // bulge element being chased
		k int
	)
	for k = start; k < end; k++ {
		c, s := makeGivens(x, z)

		// Rotate rows/columns k and k+1 of the tridiagonal pair:
		// G·[[d_k, e_k], [e_k, d_{k+1}]]·Gᵀ expanded into scalars.
		var (
			sdk  = s*diag[k] + c*subdiag[k]
			dkp1 = s*subdiag[k] + c*diag[k+1]
		)
		diag[k] = c*(c*diag[k]-s*subdiag[k]) - s*(c*subdiag[k]-s*diag[k+1])
		diag[k+1] = s*sdk + c*dkp1
		subdiag[k] = c*sdk - s*dkp1
		if k > start {
			subdiag[k-1] = c*subdiag[k-1] - s*z
		}

		// Advance the bulge one row down.
		x = subdiag[k]
		if k < end-1 {
			z = -s * subdiag[k+1]
			subdiag[k+1] *= c
		}

		// Fold the rotation into eigenvector columns k and k+1.
		if withVectors {
			var row int
			for row = 0; row < n; row++ {
				qk := q[row*n+k]
				qk1 := q[row*n+k+1]
				q[row*n+k] = c*qk - s*qk1
				q[row*n+k+1] = s*qk + c*qk1
			}
		}
	}
}

// makeGivens returns the rotation (c, s) with
//
//	[ c  s ]ᵀ   [ p ]   [ r ]
//	[ -s c ]  · [ q ] = [ 0 ]
//
// forming the quotient with the larger-magnitude component so the squared
// term never overflows first.
func makeGivens(p, q float64) (c, s float64) {
	switch {
	case q == 0:
		c, s = 1, 0
		if p < 0 {
			c = -1
		}
	case p == 0:
		c, s = 0, -1
		if q < 0 {
			s = 1
		}
	case math.Abs(p) > math.Abs(q):
		t := q / p
		u := math.Sqrt(1 + t*t)
		if p < 0 {
			u = -u
		}
		c = 1 / u
		s = -t * c
	default:
		t := p / q
		u := math.Sqrt(1 + t*t)
		if q < 0 {
			u = -u
		}
		s = -1 / u
		c = -t * s
	}

	return c, s
}
