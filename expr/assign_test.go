// Package expr_test: evaluation engine behavior - shape resolution, aliasing
// analysis, kernel dispatch and the compound assignment family.
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/expr"
)

// TestAssignCopiesAcrossOrders verifies a plain copy lands correctly when
// source and destination disagree on storage order.
func TestAssignCopiesAcrossOrders(t *testing.T) {
	src := expr.FromSlice(2, 3, expr.RowMajor, []float64{1, 2, 3, 4, 5, 6})
	dst := expr.NewDenseOrdered[float64](2, 3, expr.ColMajor)

	expr.Assign[float64](dst, src)
	require.True(t, dst.Equal(src))
	// The buffers hold different permutations of the same coefficients.
	require.NotEqual(t, src.RawData(), dst.RawData())
}

// TestAssignResizesDense verifies a Dense destination adopts the source
// shape while a view destination panics on disagreement.
func TestAssignResizesDense(t *testing.T) {
	dst := expr.NewDense[float64](1, 1)
	src := expr.Ones[float64](3, 4)

	expr.Assign[float64](dst, src)
	require.Equal(t, 3, dst.Rows())
	require.Equal(t, 4, dst.Cols())
	require.Equal(t, 1.0, dst.At(2, 3))

	m := expr.NewDense[float64](4, 4)
	row := expr.Row[float64](m, 0) // views cannot resize
	require.PanicsWithValue(t, expr.ErrShapeMismatch, func() {
		expr.Assign[float64](row, expr.Ones[float64](2, 2))
	})
}

// TestAssignEvaluatesTree verifies a lazy tree collapses into the
// destination in one pass with correct values.
func TestAssignEvaluatesTree(t *testing.T) {
	a := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})
	b := expr.FromSlice(2, 2, expr.RowMajor, []float64{10, 20, 30, 40})
	dst := expr.NewDense[float64](2, 2)

	// dst = (a + b) ∘ a - evaluated coefficient-wise, no intermediate
	// matrices.
	expr.Assign[float64](dst, expr.CwiseProduct[float64](expr.Add[float64](a, b), a))
	require.Equal(t, []float64{11, 44, 99, 176}, dst.RawData())
}

// TestFastPathDispatch verifies which trees take the whole-buffer kernels
// and which fall back to the scalar loop.
func TestFastPathDispatch(t *testing.T) {
	a := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})
	b := expr.FromSlice(2, 2, expr.RowMajor, []float64{5, 6, 7, 8})
	cm := expr.NewDenseOrdered[float64](2, 2, expr.ColMajor)
	dst := expr.NewDense[float64](2, 2)

	// Same-order leaf arithmetic takes the kernels.
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, a))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.Add[float64](a, b)))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.Sub[float64](a, b)))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.CwiseProduct[float64](a, b)))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.CwiseQuotient[float64](a, b)))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.ScalarMul[float64](a, 3)))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.Neg[float64](a)))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.ScalarAdd[float64](a, 1)))

	// a + α·b collapses into one axpy-style pass.
	axpy := expr.Add[float64](a, expr.ScalarMul[float64](b, 0.5))
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, axpy))
	require.Equal(t, []float64{3.5, 5, 6.5, 8}, dst.RawData())

	// Transcendentals, deeper trees and mixed orders stay on the scalar
	// loop.
	require.False(t, expr.FastAssignFloat64_TestOnly(dst, expr.CwiseSqrt[float64](a)))
	require.False(t, expr.FastAssignFloat64_TestOnly(dst, expr.Add[float64](a, cm)))
	require.False(t, expr.FastAssignFloat64_TestOnly(dst, expr.Add[float64](a, expr.Add[float64](a, b))))
}

// TestFastAndGenericAgree drives the same tree through both strategies and
// requires identical results.
func TestFastAndGenericAgree(t *testing.T) {
	a := expr.FromSlice(3, 3, expr.RowMajor, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	b := expr.FromSlice(3, 3, expr.RowMajor, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1})

	tree := expr.Sub[float64](expr.CwiseProduct[float64](a, b), b)

	fast := expr.NewDense[float64](3, 3)
	require.True(t, expr.FastAssignFloat64_TestOnly(fast, expr.CwiseProduct[float64](a, b)))

	// Column-major destination forces the generic loop for the same tree.
	slow := expr.NewDenseOrdered[float64](3, 3, expr.ColMajor)
	expr.Assign[float64](slow, expr.CwiseProduct[float64](a, b))
	require.True(t, fast.Equal(slow))

	// And the full tree agrees between a fresh dense and a column-major one.
	d1 := expr.Materialize[float64](tree)
	d2 := expr.NewDenseOrdered[float64](3, 3, expr.ColMajor)
	expr.Assign[float64](d2, tree)
	require.True(t, d1.Equal(d2))
}

// TestAliasSameIndexIsFused verifies m = m + m runs in place: the scan finds
// the overlap, classifies it as same-index, and no temporary is needed.
func TestAliasSameIndexIsFused(t *testing.T) {
	m := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})

	tree := expr.Add[float64](m, m)
	found, remapped := expr.AliasScanFloat64_TestOnly(tree, m)
	require.True(t, found)
	require.False(t, remapped) // plain operands read at the written index only

	expr.Assign[float64](m, tree)
	require.Equal(t, []float64{2, 4, 6, 8}, m.RawData())
}

// TestAliasThroughTransposeMaterializes verifies m = mᵀ is detected as
// remapped overlap and still computes the correct result.
func TestAliasThroughTransposeMaterializes(t *testing.T) {
	m := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})

	tree := expr.Transpose[float64](m)
	found, remapped := expr.AliasScanFloat64_TestOnly(tree, m)
	require.True(t, found)
	require.True(t, remapped) // the transpose reads at swapped indices

	expr.Assign[float64](m, tree)
	require.Equal(t, []float64{1, 3, 2, 4}, m.RawData()) // a clean transpose, not garbage
}

// TestAliasShiftedSegments verifies the classic overlapping-shift: copying a
// vector onto itself one position over must not read already-written
// coefficients.
func TestAliasShiftedSegments(t *testing.T) {
	v := expr.FromSlice(4, 1, expr.RowMajor, []float64{0, 1, 2, 3})

	// v[0..2] = v[1..3] - overlap with offset one.
	expr.Assign[float64](expr.Segment[float64](v, 0, 3), expr.Segment[float64](v, 1, 3))
	require.Equal(t, []float64{1, 2, 3, 3}, v.RawData())
}

// TestAliasViewDestination verifies a view destination aliased by the source
// is evaluated through a temporary.
func TestAliasViewDestination(t *testing.T) {
	m := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})

	// row 0 = row 0 + row 1: the destination is a window of the same
	// storage the source reads.
	expr.Assign[float64](
		expr.Row[float64](m, 0),
		expr.Add[float64](expr.Row[float64](m, 0), expr.Row[float64](m, 1)),
	)
	require.Equal(t, []float64{4, 6, 3, 4}, m.RawData())
}

// TestCompoundAssignFamily verifies the in-place arithmetic helpers.
func TestCompoundAssignFamily(t *testing.T) {
	m := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})
	x := expr.FromSlice(2, 2, expr.RowMajor, []float64{10, 10, 10, 10})

	expr.AddAssign[float64](m, x)
	require.Equal(t, []float64{11, 12, 13, 14}, m.RawData())

	expr.SubAssign[float64](m, x)
	require.Equal(t, []float64{1, 2, 3, 4}, m.RawData())

	expr.MulAssign[float64](m, x)
	require.Equal(t, []float64{10, 20, 30, 40}, m.RawData())

	expr.DivAssign[float64](m, x)
	require.Equal(t, []float64{1, 2, 3, 4}, m.RawData())

	expr.ScaleAssign[float64](m, -2)
	require.Equal(t, []float64{-2, -4, -6, -8}, m.RawData())

	// Compound ops work through views too.
	expr.AddAssign[float64](expr.Row[float64](m, 1), expr.Row[float64](m, 0))
	require.Equal(t, []float64{-2, -4, -8, -12}, m.RawData())
}

// TestConstantFill verifies generator sources fill the destination through
// the dedicated path.
func TestConstantFill(t *testing.T) {
	dst := expr.NewDense[float64](2, 3)
	require.True(t, expr.FastAssignFloat64_TestOnly(dst, expr.Constant(2, 3, 7.5)))
	require.Equal(t, []float64{7.5, 7.5, 7.5, 7.5, 7.5, 7.5}, dst.RawData())

	expr.Assign[float64](dst, expr.Identity[float64](3)) // resize + generic loop
	require.Equal(t, 1.0, dst.At(1, 1))
	require.Equal(t, 0.0, dst.At(2, 1))
}

// TestMaterializePreservesOrder verifies Materialize lays the temporary out
// in the tree's natural order.
func TestMaterializePreservesOrder(t *testing.T) {
	cm := expr.NewDenseOrdered[float64](2, 3, expr.ColMajor)
	cm.Fill(2)

	d := expr.Materialize[float64](expr.ScalarMul[float64](cm, 3))
	require.Equal(t, expr.ColMajor, d.Order()) // column-major tree, column-major temp
	require.Equal(t, 6.0, d.At(1, 2))

	tr := expr.Materialize[float64](expr.Transpose[float64](testMatrix()))
	require.Equal(t, expr.ColMajor, tr.Order()) // transposed row-major reads column-major
	require.Equal(t, 12.0, tr.At(2, 1))
}

// TestFusedIterationMatchesManualLoop runs the classic fused update
// m = ones + k·(m∘m + m/4) for several rounds and checks every coefficient
// against a hand-written scalar loop.
func TestFusedIterationMatchesManualLoop(t *testing.T) {
	const k = 0.00005
	m := expr.NewDense[float64](8, 8)
	m.Fill(0.5)
	ref := make([]float64, 64)
	for i := range ref {
		ref[i] = 0.5
	}

	ones := expr.Ones[float64](8, 8)
	for iter := 0; iter < 10; iter++ {
		// The whole right-hand side reads m only at the written index, so
		// the engine fuses it without a temporary.
		expr.Assign[float64](m, expr.Add[float64](
			ones,
			expr.ScalarMul[float64](
				expr.Add[float64](
					expr.CwiseProduct[float64](m, m),
					expr.ScalarDiv[float64](m, 4),
				),
				k,
			),
		))
		for i, v := range ref {
			ref[i] = 1 + k*(v*v+v/4)
		}
		require.Equal(t, ref, m.RawData(), "iteration %d", iter)
	}
}

// TestComplexAssign verifies the engine handles complex scalars through the
// generic path.
func TestComplexAssign(t *testing.T) {
	a := expr.FromSlice(2, 2, expr.RowMajor, []complex128{1 + 1i, 2, 3i, 4})
	dst := expr.NewDense[complex128](2, 2)

	expr.Assign[complex128](dst, expr.CwiseConj[complex128](expr.ScalarMul[complex128](a, 2)))
	require.Equal(t, complex128(2-2i), dst.At(0, 0))
	require.Equal(t, complex128(-6i), dst.At(1, 0))
}
