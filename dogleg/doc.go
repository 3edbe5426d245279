// Package dogleg computes the Powell dogleg trust-region step used by
// nonlinear least-squares solvers.
//
// What:
//
//	■ Step - given the packed upper-triangular factor R of a linearized
//	         problem, a diagonal scaling D, the rotated residual qtb and a
//	         trust-region radius delta, overwrites x with the step
//	         minimizing the local quadratic model subject to ‖D∘x‖ ≤ delta.
//
// Why:
//
// A trust-region iteration needs a cheap approximation to the constrained
// quadratic minimizer. The dogleg path follows the scaled steepest-descent
// direction to the Cauchy point and then bends toward the Gauss-Newton
// solution; intersecting that path with the trust-region sphere costs one
// back substitution and a handful of norms, no extra factorization.
//
// The three cases, in order:
//
//	■ The Gauss-Newton step fits inside the region - returned unchanged.
//	■ The Cauchy point already lies outside - the steepest-descent
//	  direction scaled to the boundary.
//	■ Otherwise - the convex combination of the two directions landing
//	  exactly on the boundary, with the discriminant assembled from norm
//	  ratios so near-degenerate geometries do not cancel catastrophically.
//
// A diagonal of R that is exactly zero is replaced by a small multiple of
// the largest magnitude in its column, so the back substitution always
// completes; the caller sees the usual huge-component Gauss-Newton step
// instead of an error.
//
// Errors: argument shape violations panic (ErrPackedLength,
// ErrLengthMismatch, ErrNonPositiveDelta); the computation itself cannot
// fail.
//
// Complexity: O(n²) over the packed triangle, O(n) extra storage.
//
// See also: package eigen and package skyline for the factorizations
// typically feeding R.
package dogleg
