// SPDX-License-Identifier: MIT
package eigen

// Test-Bridge (White-Box) for the Reduction Kernels
//
// Purpose:
//   - Expose the unexported reduction stages to eigen_test ONLY, so the
//     per-stage invariants (orthogonality of Q, tridiagonal reconstruction,
//     rotation annihilation, pivot failure) can be pinned without widening
//     the production API.
//
// Provided Surface:
//   - Tridiagonalize_TestOnly: one Householder reduction with Q accumulated.
//   - MakeGivens_TestOnly: the stable rotation constructor.
//   - CholeskyFactor_TestOnly: the internal lower-triangular factorization.

// Tridiagonalize_TestOnly reduces the row-major symmetric matrix w (stride
// n, lower triangle authoritative) in place, returning the tridiagonal pair
// and the accumulated orthogonal factor Q as a fresh row-major buffer.
func Tridiagonalize_TestOnly(w []float64, n int) (diag, subdiag, q []float64) {
	var (
		tau     = make([]float64, n-1)
		scratch = make([]float64, n)
	)
	diag = make([]float64, n)
	subdiag = make([]float64, n-1)
	q = make([]float64, n*n)
	tridiagonalize(w, n, diag, subdiag, tau, scratch)
	setIdentity(q, n)
	accumulateQ(w, n, tau, q, scratch)

	return diag, subdiag, q
}

// MakeGivens_TestOnly forwards to the private rotation constructor.
func MakeGivens_TestOnly(p, q float64) (c, s float64) { return makeGivens(p, q) }

// CholeskyFactor_TestOnly factors the row-major matrix src and returns the
// lower factor (row-major, strict upper zeroed) or the pivot error.
func CholeskyFactor_TestOnly(src []float64, n int) ([]float64, error) {
	var f llt
	if err := f.compute(src, n); err != nil {
		return nil, err
	}
	out := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c <= r; c++ {
			out[r*n+c] = f.l[r*n+c]
		}
	}

	return out, nil
}
