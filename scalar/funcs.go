// SPDX-License-Identifier: MIT
// This file implements the elementary functions of the trait layer: value
// construction, conjugation, magnitude, and the transcendental family, each
// dispatched over the four Scalar types.
package scalar

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrComplexToRealCast reports a Cast that would silently discard an
// imaginary component.
var ErrComplexToRealCast = errors.New("scalar: cannot cast complex scalar to real scalar")

// FromFloat builds a T from a real value. For complex T the imaginary part
// is zero.
func FromFloat[T Scalar](f float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(f)).(T)
	case float64:
		return any(f).(T)
	case complex64:
		return any(complex(float32(f), 0)).(T)
	default:
		return any(complex(f, 0)).(T)
	}
}

// FromComplex builds a T from a complex value. For real T the imaginary part
// is discarded; callers on the real path must pass purely real input.
func FromComplex[T Scalar](c complex128) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(real(c))).(T)
	case float64:
		return any(real(c)).(T)
	case complex64:
		return any(complex64(c)).(T)
	default:
		return any(c).(T)
	}
}

// Cast converts between scalar types: real→real, real→complex and
// complex→complex are value-preserving; complex→real panics with
// ErrComplexToRealCast (take RealPart first to make the loss explicit).
func Cast[F, T Scalar](x F) T {
	switch v := any(x).(type) {
	case float32:
		return FromFloat[T](float64(v))
	case float64:
		return FromFloat[T](v)
	case complex64:
		return castComplex[T](complex128(v))
	default:
		return castComplex[T](any(x).(complex128))
	}
}

func castComplex[T Scalar](c complex128) T {
	var z T
	switch any(z).(type) {
	case float32, float64:
		panic(ErrComplexToRealCast)
	}

	return FromComplex[T](c)
}

// Conj returns the complex conjugate; for real T it is the identity.
func Conj[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		return x
	}
}

// RealPart returns the real part of x as a T (imaginary part zeroed).
func RealPart[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex64:
		return any(complex(real(v), 0)).(T)
	case complex128:
		return any(complex(real(v), 0)).(T)
	default:
		return x
	}
}

// ImagPart returns the imaginary part of x as a T (zero for real T).
func ImagPart[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex64:
		return any(complex(imag(v), 0)).(T)
	case complex128:
		return any(complex(imag(v), 0)).(T)
	default:
		var z T

		return z
	}
}

// ToFloat extracts the real part of x as a float64.
func ToFloat[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case complex64:
		return float64(real(v))
	default:
		return real(any(x).(complex128))
	}
}

// Abs returns |x| as a float64 (the modulus for complex x).
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	default:
		return cmplx.Abs(any(x).(complex128))
	}
}

// Abs2 returns |x|² as a float64 without the square root.
func Abs2[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v) * float64(v)
	case float64:
		return v * v
	case complex64:
		return float64(real(v))*float64(real(v)) + float64(imag(v))*float64(imag(v))
	default:
		c := any(x).(complex128)

		return real(c)*real(c) + imag(c)*imag(c)
	}
}

// AbsT returns |x| as a T: for complex T the modulus with zero imaginary part.
func AbsT[T Scalar](x T) T {
	return FromFloat[T](Abs(x))
}

// Abs2T returns |x|² as a T: for complex T the squared modulus with zero
// imaginary part. This is the cwiseAbs2 building block of squaredNorm.
func Abs2T[T Scalar](x T) T {
	return FromFloat[T](Abs2(x))
}

// Sqrt returns √x, staying within T (complex branch via cmplx).
func Sqrt[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(v)))).(T)
	case float64:
		return any(math.Sqrt(v)).(T)
	case complex64:
		return any(complex64(cmplx.Sqrt(complex128(v)))).(T)
	default:
		return any(cmplx.Sqrt(any(x).(complex128))).(T)
	}
}

// Exp returns eˣ within T.
func Exp[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Exp(float64(v)))).(T)
	case float64:
		return any(math.Exp(v)).(T)
	case complex64:
		return any(complex64(cmplx.Exp(complex128(v)))).(T)
	default:
		return any(cmplx.Exp(any(x).(complex128))).(T)
	}
}

// Log returns the natural logarithm within T.
func Log[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Log(float64(v)))).(T)
	case float64:
		return any(math.Log(v)).(T)
	case complex64:
		return any(complex64(cmplx.Log(complex128(v)))).(T)
	default:
		return any(cmplx.Log(any(x).(complex128))).(T)
	}
}

// Sin returns sin(x) within T.
func Sin[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Sin(float64(v)))).(T)
	case float64:
		return any(math.Sin(v)).(T)
	case complex64:
		return any(complex64(cmplx.Sin(complex128(v)))).(T)
	default:
		return any(cmplx.Sin(any(x).(complex128))).(T)
	}
}

// Cos returns cos(x) within T.
func Cos[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Cos(float64(v)))).(T)
	case float64:
		return any(math.Cos(v)).(T)
	case complex64:
		return any(complex64(cmplx.Cos(complex128(v)))).(T)
	default:
		return any(cmplx.Cos(any(x).(complex128))).(T)
	}
}

// Pow returns x raised to p within T.
func Pow[T Scalar](x, p T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Pow(float64(v), float64(any(p).(float32))))).(T)
	case float64:
		return any(math.Pow(v, any(p).(float64))).(T)
	case complex64:
		return any(complex64(cmplx.Pow(complex128(v), complex128(any(p).(complex64))))).(T)
	default:
		return any(cmplx.Pow(any(x).(complex128), any(p).(complex128))).(T)
	}
}
