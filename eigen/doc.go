// Package eigen computes spectral decompositions of real symmetric
// matrices.
//
// What:
//
//	■ SelfAdjoint          - solver object holding eigenvalues (ascending)
//	                         and, unless disabled, orthonormal eigenvectors.
//	■ Compute              - standard problem A·v = λ·v via Householder
//	                         tridiagonalization followed by implicit-shift
//	                         symmetric QR with Wilkinson shifts.
//	■ ComputeGeneralized   - generalized problem A·v = λ·B·v, reduced to the
//	                         standard one through the Cholesky factor of B.
//	■ OperatorSqrt /       - rebuild V·f(Λ)·Vᵀ for f = √ and 1/√, valid when
//	  OperatorInverseSqrt    the spectrum is non-negative (resp. positive).
//
// Why:
//
// Symmetric spectral problems are the workhorse behind modal analysis,
// quadratic-form diagnostics and matrix functions. The symmetric QR sweep
// converges cubically per eigenvalue and the whole pipeline is O(n³) with
// O(n²) storage, so it stays practical well past the sizes where naive
// characteristic-polynomial approaches fail.
//
// Numerics:
//
//	■ Deflation zeroes a subdiagonal entry once it is negligible against its
//	  two diagonal neighbours under the library-wide relative-tolerance
//	  predicate (scalar.IsMuchSmallerThan).
//	■ Each QR window takes a Wilkinson shift from its trailing 2×2 block,
//	  the cancellation-free form.
//	■ Givens rotations use the stable large-component quotient, never
//	  squaring the larger magnitude.
//	■ Eigenvalues are selection-sorted ascending; eigenvector columns move
//	  with their values.
//
// Errors:
//
// Structural misuse (non-square input, reading results before Compute)
// panics with a package sentinel. Numerical failure is an error return:
// ErrNoConvergence when the sweep budget is exhausted, ErrNotPositiveDefinite
// when the generalized reduction meets a B that has no Cholesky factor.
//
// Complexity: O(n³) time, O(n²) extra space.
//
// See also: package expr for the matrix types consumed and produced, and
// gonum.org/v1/gonum/blas/blas64 for the kernels the reductions sit on.
package eigen
