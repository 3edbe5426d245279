// SPDX-License-Identifier: MIT
package expr

import (
	"math"

	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlalg/scalar"
)

// Sum returns the sum of every coefficient of e. Packed float64 storage is
// reduced by one slice pass.
func Sum[T scalar.Scalar](e Expr[T]) T {
	if d, ok := any(e).(*Dense[float64]); ok {
		return any(floats.Sum(d.data)).(T)
	}

	var (
		acc  T
		r, c int
	)
	for r = 0; r < e.Rows(); r++ {
		for c = 0; c < e.Cols(); c++ {
			acc += e.At(r, c)
		}
	}
	return acc
}

// Dot returns the scalar product conj(a)ᵀ·b of two vector expressions,
// conjugate-linear in the first argument. Row and column orientations mix
// freely; only the lengths must agree. It panics with ErrNotVector on
// non-vectors and ErrShapeMismatch on length disagreement.
func Dot[T scalar.Scalar](a, b Expr[T]) T {
	n := VecLen[T](a)
	if VecLen[T](b) != n {
		panic(ErrShapeMismatch)
	}

	// Packed storage goes through the BLAS-level kernels; a vector's buffer
	// is contiguous in either storage order.
	if ad, ok := any(a).(*Dense[float64]); ok {
		if bd, ok := any(b).(*Dense[float64]); ok {
			return any(floats.Dot(ad.data, bd.data)).(T)
		}
	}
	if ad, ok := any(a).(*Dense[complex128]); ok {
		if bd, ok := any(b).(*Dense[complex128]); ok {
			return any(cblas128.Dotc(
				cblas128.Vector{N: n, Inc: 1, Data: ad.data},
				cblas128.Vector{N: n, Inc: 1, Data: bd.data},
			)).(T)
		}
	}

	var acc T
	for i := 0; i < n; i++ {
		acc += scalar.Conj(AtVec[T](a, i)) * AtVec[T](b, i)
	}
	return acc
}

// SquaredNorm returns the sum of squared moduli of every coefficient of e:
// for a vector this is Dot(e, e); for a matrix the squared Frobenius norm.
// The result is real regardless of T.
func SquaredNorm[T scalar.Scalar](e Expr[T]) float64 {
	if d, ok := any(e).(*Dense[float64]); ok {
		return floats.Dot(d.data, d.data)
	}

	var (
		acc  float64
		r, c int
	)
	for r = 0; r < e.Rows(); r++ {
		for c = 0; c < e.Cols(); c++ {
			acc += scalar.Abs2(e.At(r, c))
		}
	}
	return acc
}

// Norm returns the Euclidean (Frobenius) norm of e.
func Norm[T scalar.Scalar](e Expr[T]) float64 {
	return math.Sqrt(SquaredNorm[T](e))
}

// Normalized returns v scaled to unit norm as a lazy expression. Following
// the one-division rule for floating point, the coefficients are multiplied
// by the reciprocal of the norm. A zero vector yields non-finite
// coefficients.
func Normalized[T scalar.Scalar](v Expr[T]) Expr[T] {
	if !IsVector[T](v) {
		panic(ErrNotVector)
	}
	return ScalarMul[T](v, scalar.FromFloat[T](1/Norm[T](v)))
}

// Normalize scales v to unit norm in place.
func Normalize[T scalar.Scalar](v Mutable[T]) {
	if !IsVector[T](v) {
		panic(ErrNotVector)
	}
	ScaleAssign[T](v, scalar.FromFloat[T](1/Norm[T](v)))
}

// Trace returns the sum of diagonal coefficients of a square expression. It
// panics with ErrNotSquare on rectangular shapes.
func Trace[T scalar.Scalar](e Expr[T]) T {
	if e.Rows() != e.Cols() {
		panic(ErrNotSquare)
	}
	var acc T
	for i := 0; i < e.Rows(); i++ {
		acc += e.At(i, i)
	}
	return acc
}

// IsApprox reports whether a and b coincide up to relative precision prec:
// ‖a−b‖² ≤ prec²·min(‖a‖², ‖b‖²). It panics with ErrShapeMismatch when the
// shapes differ and with scalar.ErrNonPositivePrecision when prec ≤ 0.
func IsApprox[T scalar.Scalar](a, b Expr[T], prec float64) bool {
	sameShape[T](a, b)
	if prec <= 0 {
		panic(scalar.ErrNonPositivePrecision)
	}

	diff := SquaredNorm[T](Sub[T](a, b))
	return diff <= prec*prec*math.Min(SquaredNorm[T](a), SquaredNorm[T](b))
}

// IsOrthogonal reports whether the vectors a and b are perpendicular up to
// relative precision prec: |dot(a,b)|² ≤ prec²·‖a‖²·‖b‖².
func IsOrthogonal[T scalar.Scalar](a, b Expr[T], prec float64) bool {
	if prec <= 0 {
		panic(scalar.ErrNonPositivePrecision)
	}
	d := Dot[T](a, b)
	return scalar.Abs2(d) <= prec*prec*SquaredNorm[T](a)*SquaredNorm[T](b)
}

// IsUnitary reports whether the columns of m form an orthonormal family: m
// must be square, every column must have unit norm and every pair of
// distinct columns must be orthogonal, all up to relative precision prec.
func IsUnitary[T scalar.Scalar](m Expr[T], prec float64) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	if prec <= 0 {
		panic(scalar.ErrNonPositivePrecision)
	}

	one := scalar.FromFloat[T](1)
	for i := 0; i < m.Cols(); i++ {
		ci := Col[T](m, i)
		if !scalar.IsApprox(scalar.FromFloat[T](SquaredNorm[T](ci)), one, prec) {
			return false
		}
		for j := 0; j < i; j++ {
			if !scalar.IsMuchSmallerThan(Dot[T](ci, Col[T](m, j)), one, prec) {
				return false
			}
		}
	}
	return true
}
