// SPDX-License-Identifier: MIT
// This file implements the relative-tolerance comparison predicates. They are
// the single arbiter of "numerically equal" across the library, including the
// eigensolver's deflation test and every approximate test assertion.
package scalar

// IsApprox reports whether a and b are approximately equal relative to the
// smaller of their magnitudes: |a−b|² ≤ min(|a|², |b|²)·prec².
// Panics with ErrNonPositivePrecision when prec ≤ 0.
func IsApprox[T Scalar](a, b T, prec float64) bool {
	checkPrecision(prec)

	d := Abs2(a - b)
	m := Abs2(a)
	if n := Abs2(b); n < m {
		m = n
	}

	return d <= m*prec*prec
}

// IsMuchSmallerThan reports whether a is negligible with respect to b:
// |a|² ≤ |b|²·prec². This is the predicate that decides when an off-diagonal
// entry may be treated as zero.
// Panics with ErrNonPositivePrecision when prec ≤ 0.
func IsMuchSmallerThan[T Scalar](a, b T, prec float64) bool {
	checkPrecision(prec)

	return Abs2(a) <= Abs2(b)*prec*prec
}

// IsApproxOrLessThan reports a ≤ b or a ≈ b, for ordered scalars.
// Panics with ErrNonPositivePrecision when prec ≤ 0.
func IsApproxOrLessThan[T Real](a, b T, prec float64) bool {
	return a <= b || IsApprox(a, b, prec)
}

func checkPrecision(prec float64) {
	if prec <= 0 {
		panic(ErrNonPositivePrecision)
	}
}
