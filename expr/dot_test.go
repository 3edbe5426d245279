// Package expr_test: scalar products, norms and the fuzzy matrix
// predicates.
package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/scalar"
)

// TestDotReal verifies the real scalar product across vector orientations.
func TestDotReal(t *testing.T) {
	col := expr.FromSlice(3, 1, expr.RowMajor, []float64{1, 2, 3})
	row := expr.FromSlice(1, 3, expr.RowMajor, []float64{4, 5, 6})

	require.Equal(t, 32.0, expr.Dot[float64](col, row)) // orientations mix freely
	require.Equal(t, 32.0, expr.Dot[float64](row, col))
	require.Equal(t, 14.0, expr.Dot[float64](col, col))

	// Lazy operands flow through the generic accumulation.
	require.Equal(t, 64.0, expr.Dot[float64](col, expr.ScalarMul[float64](row, 2)))
}

// TestDotConjugatesFirstArgument pins the convention on complex vectors:
// the first argument is conjugated, so Dot(x, x) is real and non-negative
// and swapping arguments conjugates the result.
func TestDotConjugatesFirstArgument(t *testing.T) {
	x := expr.FromSlice(2, 1, expr.RowMajor, []complex128{1 + 2i, 3 - 1i})
	y := expr.FromSlice(2, 1, expr.RowMajor, []complex128{2 - 1i, 1 + 1i})

	// conj(1+2i)·(2-1i) + conj(3-1i)·(1+1i) = (1-2i)(2-1i) + (3+1i)(1+1i)
	//                                       = (0-5i) + (2+4i) = 2 - 1i.
	require.Equal(t, complex128(2-1i), expr.Dot[complex128](x, y))

	// Swapping the arguments conjugates the product.
	require.Equal(t, complex128(2+1i), expr.Dot[complex128](y, x))

	// Dot(x, x) is the squared norm: real, positive.
	self := expr.Dot[complex128](x, x)
	require.Equal(t, complex128(15), self) // |1+2i|² + |3-1i|² = 5 + 10
	require.Equal(t, 15.0, expr.SquaredNorm[complex128](x))
}

// TestDotShapePreconditions ensures non-vectors and length mismatches are
// rejected.
func TestDotShapePreconditions(t *testing.T) {
	m := expr.NewDense[float64](2, 2)
	v := expr.NewVector[float64](2)
	w := expr.NewVector[float64](3)

	require.PanicsWithValue(t, expr.ErrNotVector, func() { expr.Dot[float64](m, v) })
	require.PanicsWithValue(t, expr.ErrShapeMismatch, func() { expr.Dot[float64](v, w) })
}

// TestSumAndTrace verifies the plain reductions on storage and on lazy
// trees.
func TestSumAndTrace(t *testing.T) {
	m := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})

	require.Equal(t, 10.0, expr.Sum[float64](m))
	require.Equal(t, 20.0, expr.Sum[float64](expr.ScalarMul[float64](m, 2)))
	require.Equal(t, 5.0, expr.Trace[float64](m))
	require.Equal(t, 3.0, expr.Trace[float64](expr.Identity[float64](3)))

	require.PanicsWithValue(t, expr.ErrNotSquare, func() {
		expr.Trace[float64](expr.NewDense[float64](2, 3))
	})
}

// TestNormFamily verifies SquaredNorm, Norm and the one-division
// normalization, including the Frobenius reading on matrices.
func TestNormFamily(t *testing.T) {
	v := expr.FromSlice(2, 1, expr.RowMajor, []float64{3, 4})
	require.Equal(t, 25.0, expr.SquaredNorm[float64](v))
	require.Equal(t, 5.0, expr.Norm[float64](v))

	// On matrices the same reduction is the squared Frobenius norm.
	m := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})
	require.Equal(t, 30.0, expr.SquaredNorm[float64](m))

	unit := expr.Materialize[float64](expr.Normalized[float64](v))
	require.InDelta(t, 0.6, unit.At(0, 0), 1e-15)
	require.InDelta(t, 0.8, unit.At(1, 0), 1e-15)
	require.InDelta(t, 1.0, expr.Norm[float64](unit), 1e-15)

	expr.Normalize[float64](v) // in place
	require.InDelta(t, 1.0, expr.Norm[float64](v), 1e-15)

	require.PanicsWithValue(t, expr.ErrNotVector, func() {
		expr.Normalized[float64](m)
	})
}

// TestIsApproxMatrices verifies the relative matrix comparison: tolerance
// scales with the operand norms.
func TestIsApproxMatrices(t *testing.T) {
	a := expr.FromSlice(2, 2, expr.RowMajor, []float64{1e8, 2e8, 3e8, 4e8})
	b := expr.FromSlice(2, 2, expr.RowMajor, []float64{1e8 + 1e-5, 2e8, 3e8, 4e8})

	prec := scalar.Precision[float64]()
	require.True(t, expr.IsApprox[float64](a, b, prec)) // an absolute drift of 1e-5 vanishes at 1e8
	require.True(t, expr.IsApprox[float64](a, a, prec))

	c := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})
	d := expr.FromSlice(2, 2, expr.RowMajor, []float64{1 + 1e-5, 2, 3, 4})
	require.False(t, expr.IsApprox[float64](c, d, prec)) // the same drift at unit scale does not

	require.PanicsWithValue(t, expr.ErrShapeMismatch, func() {
		expr.IsApprox[float64](a, expr.NewDense[float64](1, 4), prec)
	})
	require.PanicsWithValue(t, scalar.ErrNonPositivePrecision, func() {
		expr.IsApprox[float64](a, b, 0)
	})
}

// TestIsOrthogonal verifies the perpendicularity predicate on exact and
// near-exact pairs.
func TestIsOrthogonal(t *testing.T) {
	prec := scalar.Precision[float64]()
	e1 := expr.FromSlice(2, 1, expr.RowMajor, []float64{1, 0})
	e2 := expr.FromSlice(2, 1, expr.RowMajor, []float64{0, 1})
	diag := expr.FromSlice(2, 1, expr.RowMajor, []float64{1, 1})

	require.True(t, expr.IsOrthogonal[float64](e1, e2, prec))
	require.False(t, expr.IsOrthogonal[float64](e1, diag, prec))

	// Scaling either argument must not change the verdict.
	require.True(t, expr.IsOrthogonal[float64](expr.ScalarMul[float64](e1, 1e9), e2, prec))
}

// TestIsUnitary verifies the orthonormal-columns predicate on a rotation,
// the identity, and deliberate failures.
func TestIsUnitary(t *testing.T) {
	prec := scalar.Precision[float64]()

	require.True(t, expr.IsUnitary[float64](expr.Identity[float64](4), prec))

	th := 0.3
	rot := expr.FromSlice(2, 2, expr.RowMajor, []float64{
		math.Cos(th), -math.Sin(th),
		math.Sin(th), math.Cos(th),
	})
	require.True(t, expr.IsUnitary[float64](rot, prec))

	scaled := expr.Materialize[float64](expr.ScalarMul[float64](rot, 2))
	require.False(t, expr.IsUnitary[float64](scaled, prec)) // columns no longer unit

	shear := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 1, 0, 1})
	require.False(t, expr.IsUnitary[float64](shear, prec)) // columns not orthogonal

	require.False(t, expr.IsUnitary[float64](expr.NewDense[float64](2, 3), prec)) // not square
}
