package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/expr"
)

// ExampleAssign builds a lazy sum and collapses it into a destination in a
// single fused pass.
func ExampleAssign() {
	a := expr.FromSlice(2, 2, expr.RowMajor, []float64{1, 2, 3, 4})
	b := expr.FromSlice(2, 2, expr.RowMajor, []float64{10, 20, 30, 40})

	sum := expr.NewDense[float64](2, 2)
	expr.Assign[float64](sum, expr.Add[float64](a, b))

	fmt.Println(sum)
	// Output:
	// Dense[2x2 RowMajor]
	//   11 22
	//   33 44
}

// ExampleAddAssign updates a matrix in place; the destination appearing on
// the right-hand side is same-index overlap, so no temporary is allocated.
func ExampleAddAssign() {
	m := expr.FromSlice(1, 3, expr.RowMajor, []float64{1, 2, 3})
	expr.AddAssign[float64](m, expr.ScalarMul[float64](m, 2)) // m += 2·m

	fmt.Println(m.RawData())
	// Output:
	// [3 6 9]
}

// ExampleDot computes the scalar product of two vectors regardless of their
// row or column orientation.
func ExampleDot() {
	col := expr.FromSlice(3, 1, expr.RowMajor, []float64{1, 2, 3})
	row := expr.FromSlice(1, 3, expr.RowMajor, []float64{4, 5, 6})

	fmt.Println(expr.Dot[float64](col, row))
	// Output:
	// 32
}

// ExampleNormalized scales a vector to unit length lazily.
func ExampleNormalized() {
	v := expr.FromSlice(2, 1, expr.RowMajor, []float64{3, 4})
	unit := expr.Materialize[float64](expr.Normalized[float64](v))

	fmt.Printf("%.1f %.1f\n", unit.At(0, 0), unit.At(1, 0))
	// Output:
	// 0.6 0.8
}

// ExampleBlock writes through a window view straight into the base matrix.
func ExampleBlock() {
	m := expr.NewDense[float64](3, 3)
	expr.Assign[float64](expr.Block[float64](m, 1, 1, 2, 2), expr.Ones[float64](2, 2))

	fmt.Println(m)
	// Output:
	// Dense[3x3 RowMajor]
	//   0 0 0
	//   0 1 1
	//   0 1 1
}
