// SPDX-License-Identifier: MIT
package eigen

import "errors"

// Numerical failures are returned; structural misuse panics. Both kinds
// carry a sentinel so callers can branch with errors.Is.
var (
	// ErrNoConvergence is returned when the QR iteration exhausts its sweep
	// budget before every subdiagonal entry deflates.
	ErrNoConvergence = errors.New("eigen: qr iteration did not converge")

	// ErrNotPositiveDefinite is returned by the generalized problem when
	// the right-hand matrix B admits no Cholesky factorization.
	ErrNotPositiveDefinite = errors.New("eigen: matrix is not positive definite")

	// ErrNotComputed is raised when results are read before a successful
	// Compute.
	ErrNotComputed = errors.New("eigen: decomposition has not been computed")

	// ErrVectorsNotComputed is raised when eigenvectors are requested from
	// a solver configured with WithoutVectors.
	ErrVectorsNotComputed = errors.New("eigen: eigenvectors were not computed")
)
