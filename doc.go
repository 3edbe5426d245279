// Package lvlalg is your in-memory playground for dense linear algebra —
// from lazily fused coefficient-wise expressions to spectral and
// trust-region decompositions.
//
// 🚀 What is lvlalg?
//
//	A generic, allocation-conscious library that brings together:
//		• Expression core: +, −, ∘, scalar ops and views compose into lazy
//		  trees that evaluate in one fused pass at assignment time
//		• Storage: row- and column-major Dense over any real/complex scalar
//		• Dot & norms: conjugate-correct inner products, stable norms,
//		  fuzzy predicates (IsApprox, IsOrthogonal, IsUnitary)
//		• Spectral solver: symmetric/generalized eigenproblems via
//		  Householder tridiagonalization + implicit-shift QR, plus
//		  operator square roots
//		• Skyline: variable-band storage with in-place LU and solves
//		• Dogleg: the MINPACK trust-region step over packed factors
//
// ✨ Why choose lvlalg?
//
//   - Expression fusion – no hidden temporaries; aliasing handled for you
//   - Numerically careful – Wilkinson shifts, stable norms,
//     cancellation-free boundary formulas
//   - BLAS-backed – gonum kernels under every hot loop
//   - Extensible – expressions are a small interface; anything
//     implementing it composes with the rest
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/  — numeric traits: epsilon, precision, costs, fuzzy compares
//	expr/    — expression nodes, functors, Dense storage, assignment,
//	           dot/norm layer, views, gonum interop
//	eigen/   — self-adjoint eigensolver, generalized pencils, OperatorSqrt
//	skyline/ — skyline matrix + in-place LU factorization and solves
//	dogleg/  — Powell dogleg trust-region step
//
// Quick taste:
//
//	sum := expr.Add[float64](a, b)          // nothing computed yet
//	expr.Assign(dst, sum)                   // one fused sweep
//	s := eigen.New(n)
//	_ = s.Compute(dst)                      // λ ascending, Q orthonormal
//
// Dive into examples/ for runnable demos: spectral mode shapes, fused
// expression pipelines, a skyline heat solver and the dogleg path.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
