// SPDX-License-Identifier: MIT
// This file declares the Scalar and Real type sets together with the
// per-type precision and operation-cost constants consumed by the functor
// descriptors in package expr.
package scalar

import "errors"

// Scalar is the closed set of element types the library operates on.
// The set is deliberately exact (no ~): trait dispatch relies on type
// switches over these four types.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the subset of Scalar with a total order.
type Real interface {
	float32 | float64
}

// Complex is the subset of Scalar with a nonzero imaginary part available.
type Complex interface {
	complex64 | complex128
}

// ErrNonPositivePrecision reports a comparison predicate invoked with a
// tolerance that cannot define a neighbourhood.
var ErrNonPositivePrecision = errors.New("scalar: precision must be positive")

// Machine epsilons of the two underlying real types.
const (
	epsilonFloat32 = 1.1920928955078125e-07 // 2^-23
	epsilonFloat64 = 2.220446049250313e-16  // 2^-52
)

// Default comparison precisions, far looser than epsilon so that chains of
// rounding errors do not break approximate equality.
const (
	precisionFloat32 = 1e-5
	precisionFloat64 = 1e-12
)

// Epsilon returns the machine epsilon of T's underlying real type.
func Epsilon[T Scalar]() float64 {
	var z T
	switch any(z).(type) {
	case float32, complex64:
		return epsilonFloat32
	default:
		return epsilonFloat64
	}
}

// Precision returns the default tolerance used by the comparison predicates
// when callers have no better-informed value.
func Precision[T Scalar]() float64 {
	var z T
	switch any(z).(type) {
	case float32, complex64:
		return precisionFloat32
	default:
		return precisionFloat64
	}
}

// AddCost estimates the cost of one addition in T, in units of one real add.
func AddCost[T Scalar]() int {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return 2
	default:
		return 1
	}
}

// MulCost estimates the cost of one multiplication in T, in units of one
// real multiply. A complex multiply is four real multiplies and two adds.
func MulCost[T Scalar]() int {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return 6
	default:
		return 1
	}
}

// ReadCost estimates the cost of loading one T from memory, in units of one
// real load.
func ReadCost[T Scalar]() int {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return 2
	default:
		return 1
	}
}

// IsComplex reports whether T carries an imaginary component.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}
