// SPDX-License-Identifier: MIT
// Package scalar_test locks in the trait-layer contracts every other package
// leans on: precision constants, comparison predicates, complex dispatch,
// and the operation-cost table behind the functor descriptors.
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/scalar"
)

func TestEpsilonAndPrecision(t *testing.T) {
	require.Equal(t, math.Nextafter(1, 2)-1, scalar.Epsilon[float64]())
	require.Equal(t, float64(math.Nextafter32(1, 2)-1), scalar.Epsilon[float32]())
	require.Equal(t, scalar.Epsilon[float64](), scalar.Epsilon[complex128]())
	require.Equal(t, scalar.Epsilon[float32](), scalar.Epsilon[complex64]())

	require.Equal(t, 1e-12, scalar.Precision[float64]())
	require.Equal(t, 1e-5, scalar.Precision[float32]())
	require.Equal(t, scalar.Precision[float32](), scalar.Precision[complex64]())
}

func TestCostTable(t *testing.T) {
	require.Equal(t, 1, scalar.AddCost[float64]())
	require.Equal(t, 1, scalar.MulCost[float32]())
	require.Equal(t, 2, scalar.AddCost[complex128]())
	require.Equal(t, 6, scalar.MulCost[complex64]())
}

func TestIsApprox(t *testing.T) {
	require.True(t, scalar.IsApprox(1.0, 1.0+1e-14, 1e-12))
	require.False(t, scalar.IsApprox(1.0, 1.0+1e-6, 1e-12))
	require.True(t, scalar.IsApprox(0.0, 0.0, 1e-12))
	// Relative comparison: values far from zero tolerate proportional drift.
	require.True(t, scalar.IsApprox(1e10, 1e10+1e-3, 1e-12))

	require.True(t, scalar.IsApprox(complex(1, 2), complex(1, 2+1e-14), 1e-12))
	require.False(t, scalar.IsApprox(complex(1, 2), complex(1, 2.1), 1e-12))
}

func TestIsMuchSmallerThan(t *testing.T) {
	require.True(t, scalar.IsMuchSmallerThan(1e-15, 1.0, 1e-12))
	require.False(t, scalar.IsMuchSmallerThan(1e-10, 1.0, 1e-12))
	// Nothing but zero is negligible next to zero.
	require.False(t, scalar.IsMuchSmallerThan(1e-300, 0.0, 1e-12))
	require.True(t, scalar.IsMuchSmallerThan(0.0, 0.0, 1e-12))
}

func TestIsApproxOrLessThan(t *testing.T) {
	require.True(t, scalar.IsApproxOrLessThan(1.0, 2.0, 1e-12))
	require.True(t, scalar.IsApproxOrLessThan(2.0, 2.0+1e-14, 1e-12))
	require.False(t, scalar.IsApproxOrLessThan(2.1, 2.0, 1e-12))
}

func TestPredicatesRejectBadPrecision(t *testing.T) {
	require.PanicsWithValue(t, scalar.ErrNonPositivePrecision, func() {
		scalar.IsApprox(1.0, 1.0, 0)
	})
	require.PanicsWithValue(t, scalar.ErrNonPositivePrecision, func() {
		scalar.IsMuchSmallerThan(1.0, 1.0, -1e-3)
	})
}

func TestConjAndParts(t *testing.T) {
	require.Equal(t, 3.5, scalar.Conj(3.5))
	require.Equal(t, complex(1, -2), scalar.Conj(complex(1, 2)))
	require.Equal(t, complex64(complex(1, -2)), scalar.Conj(complex64(complex(1, 2))))

	require.Equal(t, complex(1, 0), scalar.RealPart(complex(1, 2)))
	require.Equal(t, complex(2, 0), scalar.ImagPart(complex(1, 2)))
	require.Equal(t, 0.0, scalar.ImagPart(4.0))
	require.Equal(t, 4.0, scalar.RealPart(4.0))
}

func TestAbsFamily(t *testing.T) {
	require.Equal(t, 2.0, scalar.Abs(-2.0))
	require.Equal(t, 5.0, scalar.Abs(complex(3, 4)))
	require.Equal(t, 25.0, scalar.Abs2(complex(3, 4)))
	require.Equal(t, 4.0, scalar.Abs2(-2.0))
	require.Equal(t, complex(25, 0), scalar.Abs2T(complex(3, 4)))
	require.Equal(t, float32(2), scalar.AbsT(float32(-2)))
}

func TestTranscendentals(t *testing.T) {
	require.InDelta(t, math.Sqrt(2), scalar.Sqrt(2.0), 1e-15)
	require.InDelta(t, math.Exp(1), scalar.Exp(1.0), 1e-15)
	require.InDelta(t, math.Log(2), scalar.Log(2.0), 1e-15)
	require.InDelta(t, math.Sin(1), scalar.Sin(1.0), 1e-15)
	require.InDelta(t, math.Cos(1), scalar.Cos(1.0), 1e-15)
	require.InDelta(t, 8.0, scalar.Pow(2.0, 3.0), 1e-15)

	// Complex branch: √(-1) = i.
	s := scalar.Sqrt(complex(-1, 0))
	require.InDelta(t, 0, real(s), 1e-15)
	require.InDelta(t, 1, imag(s), 1e-15)
}

func TestFromFloatAndCast(t *testing.T) {
	require.Equal(t, float32(1.5), scalar.FromFloat[float32](1.5))
	require.Equal(t, complex(1.5, 0), scalar.FromFloat[complex128](1.5))

	require.Equal(t, 2.5, scalar.Cast[float32, float64](float32(2.5)))
	require.Equal(t, complex(2.5, 0), scalar.Cast[float64, complex128](2.5))
	require.Equal(t, complex64(complex(1, 2)), scalar.Cast[complex128, complex64](complex(1, 2)))

	require.PanicsWithValue(t, scalar.ErrComplexToRealCast, func() {
		scalar.Cast[complex128, float64](complex(1, 2))
	})
}

func TestToFloat(t *testing.T) {
	require.Equal(t, 1.5, scalar.ToFloat(1.5))
	require.Equal(t, 1.0, scalar.ToFloat(complex(1, 7)))
	require.Equal(t, 2.0, scalar.ToFloat(float32(2)))
}
